package routes

import (
	"log"
	"net/http"

	_ "planpaineis_propostas/docs"
	"planpaineis_propostas/internal/adapter/http/handlers"
	"planpaineis_propostas/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(a *app.App) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, a)

	err := router.Run(a.Config.Addr())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(r *gin.Engine, a *app.App) {
	catalogHandler := handlers.NewCatalogHandler(a.Catalog)
	migrationHandler := handlers.NewMigrationHandler(a.Migration)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addMigrationRoutes(v1, migrationHandler)
	if a.Proposal != nil {
		addProposalRoutes(v1, handlers.NewProposalHandler(a.Proposal))
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
