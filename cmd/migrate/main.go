// Command migrate runs schema operations for the backend. In production the
// server never auto-migrates, so this is the explicit path to apply schema.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <auto|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "auto":
		if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Println("auto-migration applied")
	case "status":
		for _, model := range database.PersistentModels() {
			state := "missing"
			if db.Migrator().HasTable(model) {
				state = "present"
			}
			log.Printf("%-30T %s", model, state)
		}
	default:
		return usage()
	}
	return nil
}
