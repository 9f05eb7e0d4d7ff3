package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"planpaineis_propostas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	formFieldData = "data"
	formFieldFile = "file"
)

func noop() {}

// bindWithUpload binds dst from a JSON body, or from the "data" field of a
// multipart form whose optional "file" part becomes the returned upload.
// The returned func closes the file and must always be called.
func bindWithUpload(c *gin.Context, dst any) (*usecase.Upload, func(), error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, noop, c.ShouldBindJSON(dst)
	}

	if err := json.Unmarshal([]byte(c.PostForm(formFieldData)), dst); err != nil {
		return nil, noop, err
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return nil, noop, err
	}

	fh, err := c.FormFile(formFieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	up := &usecase.Upload{FileName: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Body: f}
	return up, func() { _ = f.Close() }, nil
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWith(c, errInvalidID)
		return 0, false
	}
	return id, true
}
