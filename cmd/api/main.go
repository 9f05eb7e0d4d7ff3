package main

import (
	"context"
	"errors"
	"log"

	"planpaineis_propostas/internal/adapter/http/routes"
	"planpaineis_propostas/internal/app"
	"planpaineis_propostas/internal/infrastructure/config"
	"planpaineis_propostas/pkg"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Proposal Document Service API
// @version         1.0
// @description     Catalog, budget composition and PDF/HTML export of commercial proposals.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *pkg.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Printf("[api][main] invalid configuration err=%v", err)
			routes.RunConfigError(":"+fallbackPort(), cfgErr.Missing)
			return
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	a, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}
	defer a.Close()

	// The catalog is only served after local records were copied once.
	report, err := a.Migration.Run(ctx)
	if err != nil {
		log.Printf("[api][main] migration failed, will retry on next start or via POST /v1/migration/run err=%v", err)
	} else {
		log.Printf("[api][main] migration state=%s inserted=%v skipped=%v", report.State, report.Inserted, report.Skipped)
	}

	routes.Run(a)
}
