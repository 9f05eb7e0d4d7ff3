package main

import (
	"os"

	"planpaineis_propostas/cmd/propctl/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
