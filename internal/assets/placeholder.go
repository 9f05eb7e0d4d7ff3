package assets

import "strings"

// Placeholder is the blank PNG substituted for any image that cannot be made
// embeddable.
const Placeholder = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAASwAAACoCAMAAABt9SM9AAAAA1BMVEX///+nxBvIAAAASElEQVR4nO3BMQEAAADCoPVPbQ0PoAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAADeDcYqAAE0iG3fAAAAAElFTkSuQmCC"

const embeddablePrefix = "data:image"

// IsEmbeddable reports whether ref is already a self-contained image.
func IsEmbeddable(ref string) bool {
	return strings.HasPrefix(ref, embeddablePrefix)
}
