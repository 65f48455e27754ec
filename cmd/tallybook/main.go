package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tallybook-dev/tallybook/internal/commands"
)

func main() {
	// A .env next to the binary may set TALLYBOOK_DIR; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
