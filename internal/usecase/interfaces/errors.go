package interfaces

import "errors"

// ErrRecordNotFound is returned by repositories when an update or delete
// targets an id that does not exist.
var ErrRecordNotFound = errors.New("record not found")
