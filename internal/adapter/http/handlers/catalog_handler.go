package handlers

import (
	"log"
	"net/http"

	request "planpaineis_propostas/internal/adapter/http/dto/request"
	response "planpaineis_propostas/internal/adapter/http/dto/response"
	"planpaineis_propostas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the sales profile, product and cover image collections.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// FetchAll godoc
// @Summary      Joined catalog
// @Description  Reads profiles, products and covers in one call. Fails as a whole.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) FetchAll(c *gin.Context) {
	catalog, err := h.usecase.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] fetch failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

// ListProfiles godoc
// @Summary  List sales profiles
// @Tags     profiles
// @Produce  json
// @Success  200  {array}   response.SalesProfileResponse
// @Failure  502  {object}  pkg.HTTPError
// @Router   /profiles [get]
func (h *CatalogHandler) ListProfiles(c *gin.Context) {
	out, err := h.usecase.ListProfiles(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSalesProfiles(out))
}

// CreateProfile godoc
// @Summary      Create a sales profile
// @Description  Accepts JSON, or multipart with a "data" JSON field and an optional "file" logo.
// @Tags         profiles
// @Accept       json,mpfd
// @Produce      json
// @Param        profile  body      request.SalesProfileRequest  true  "Profile"
// @Success      201      {object}  response.SalesProfileResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /profiles [post]
func (h *CatalogHandler) CreateProfile(c *gin.Context) {
	var payload request.SalesProfileRequest
	logo, closeFile, err := bindWithUpload(c, &payload)
	defer closeFile()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.AddProfile(c.Request.Context(), payload.ToEntity(0), logo)
	if err != nil {
		log.Printf("[catalog][handler] create profile failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSalesProfile(created))
}

// UpdateProfile godoc
// @Summary  Update a sales profile
// @Tags     profiles
// @Accept   json,mpfd
// @Produce  json
// @Param    id       path      int                          true  "Profile id"
// @Param    profile  body      request.SalesProfileRequest  true  "Profile"
// @Success  200      {object}  response.SalesProfileResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /profiles/{id} [put]
func (h *CatalogHandler) UpdateProfile(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload request.SalesProfileRequest
	logo, closeFile, err := bindWithUpload(c, &payload)
	defer closeFile()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.UpdateProfile(c.Request.Context(), payload.ToEntity(id), logo)
	if err != nil {
		log.Printf("[catalog][handler] update profile failed id=%d err=%v", id, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSalesProfile(updated))
}

// DeleteProfile godoc
// @Summary  Delete a sales profile
// @Tags     profiles
// @Param    id  path  int  true  "Profile id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /profiles/{id} [delete]
func (h *CatalogHandler) DeleteProfile(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteProfile(c.Request.Context(), id); err != nil {
		log.Printf("[catalog][handler] delete profile failed id=%d err=%v", id, err)
		abortWith(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts godoc
// @Summary  List products
// @Tags     products
// @Produce  json
// @Success  200  {array}  response.ProductResponse
// @Router   /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	out, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(out))
}

// CreateProduct godoc
// @Summary  Create a product
// @Tags     products
// @Accept   json,mpfd
// @Produce  json
// @Param    product  body      request.ProductRequest  true  "Product"
// @Success  201      {object}  response.ProductResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	image, closeFile, err := bindWithUpload(c, &payload)
	defer closeFile()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.AddProduct(c.Request.Context(), payload.ToEntity(0), image)
	if err != nil {
		log.Printf("[catalog][handler] create product failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(created))
}

// UpdateProduct godoc
// @Summary  Update a product
// @Tags     products
// @Accept   json,mpfd
// @Produce  json
// @Param    id       path      int                     true  "Product id"
// @Param    product  body      request.ProductRequest  true  "Product"
// @Success  200      {object}  response.ProductResponse
// @Router   /products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload request.ProductRequest
	image, closeFile, err := bindWithUpload(c, &payload)
	defer closeFile()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.UpdateProduct(c.Request.Context(), payload.ToEntity(id), image)
	if err != nil {
		log.Printf("[catalog][handler] update product failed id=%d err=%v", id, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(updated))
}

// DeleteProduct godoc
// @Summary  Delete a product
// @Tags     products
// @Param    id  path  int  true  "Product id"
// @Success  204
// @Router   /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteProduct(c.Request.Context(), id); err != nil {
		log.Printf("[catalog][handler] delete product failed id=%d err=%v", id, err)
		abortWith(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCovers godoc
// @Summary  List cover images
// @Tags     covers
// @Produce  json
// @Success  200  {array}  response.CoverImageResponse
// @Router   /covers [get]
func (h *CatalogHandler) ListCovers(c *gin.Context) {
	out, err := h.usecase.ListCovers(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCoverImages(out))
}

// CreateCover godoc
// @Summary  Create a cover image
// @Tags     covers
// @Accept   json,mpfd
// @Produce  json
// @Param    cover  body      request.CoverImageRequest  true  "Cover"
// @Success  201    {object}  response.CoverImageResponse
// @Router   /covers [post]
func (h *CatalogHandler) CreateCover(c *gin.Context) {
	var payload request.CoverImageRequest
	file, closeFile, err := bindWithUpload(c, &payload)
	defer closeFile()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.AddCover(c.Request.Context(), payload.ToEntity(0), file)
	if err != nil {
		log.Printf("[catalog][handler] create cover failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCoverImage(created))
}

// UpdateCover godoc
// @Summary  Update a cover image
// @Tags     covers
// @Accept   json,mpfd
// @Produce  json
// @Param    id     path      int                        true  "Cover id"
// @Param    cover  body      request.CoverImageRequest  true  "Cover"
// @Success  200    {object}  response.CoverImageResponse
// @Router   /covers/{id} [put]
func (h *CatalogHandler) UpdateCover(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload request.CoverImageRequest
	file, closeFile, err := bindWithUpload(c, &payload)
	defer closeFile()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.UpdateCover(c.Request.Context(), payload.ToEntity(id), file)
	if err != nil {
		log.Printf("[catalog][handler] update cover failed id=%d err=%v", id, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCoverImage(updated))
}

// DeleteCover godoc
// @Summary  Delete a cover image
// @Tags     covers
// @Param    id  path  int  true  "Cover id"
// @Success  204
// @Router   /covers/{id} [delete]
func (h *CatalogHandler) DeleteCover(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteCover(c.Request.Context(), id); err != nil {
		log.Printf("[catalog][handler] delete cover failed id=%d err=%v", id, err)
		abortWith(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadAsset godoc
// @Summary      Upload an image
// @Description  Stores the "file" part and returns its public URL.
// @Tags         assets
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Image"
// @Success      201   {object}  response.UploadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /assets [post]
func (h *CatalogHandler) UploadAsset(c *gin.Context) {
	fh, err := c.FormFile(formFieldFile)
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	f, err := fh.Open()
	if err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	defer f.Close()

	url, err := h.usecase.UploadAsset(c.Request.Context(), usecase.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	})
	if err != nil {
		log.Printf("[catalog][handler] upload failed file=%s err=%v", fh.Filename, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}
