package routes

import (
	"planpaineis_propostas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathProfiles  = "/profiles"
	PathProducts  = "/products"
	PathCovers    = "/covers"
	PathAssets    = "/assets"
	PathProposals = "/proposals"
	PathMigration = "/migration"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathCatalog, h.FetchAll)
	rg.POST(PathAssets, h.UploadAsset)

	profiles := rg.Group(PathProfiles)
	{
		profiles.GET("", h.ListProfiles)
		profiles.POST("", h.CreateProfile)
		profiles.PUT("/:id", h.UpdateProfile)
		profiles.DELETE("/:id", h.DeleteProfile)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	covers := rg.Group(PathCovers)
	{
		covers.GET("", h.ListCovers)
		covers.POST("", h.CreateCover)
		covers.PUT("/:id", h.UpdateCover)
		covers.DELETE("/:id", h.DeleteCover)
	}
}

func addProposalRoutes(rg *gin.RouterGroup, h *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("/preview", h.Preview)
		proposals.POST("/export", h.Export)
	}
}

func addMigrationRoutes(rg *gin.RouterGroup, h *handlers.MigrationHandler) {
	migration := rg.Group(PathMigration)
	{
		migration.GET("", h.Status)
		migration.POST("/run", h.Run)
	}
}
