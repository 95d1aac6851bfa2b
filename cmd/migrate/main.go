package main

import (
	"flag"
	"log"

	"github.com/bluespark/hospital-hr-backend-go/internal/config"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/migration"
)

func main() {
	migrationsDir := flag.String("dir", "", "directory containing migration files (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	action := migration.ActionUp
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dir := cfg.Database.MigrationsDir
	if *migrationsDir != "" {
		dir = *migrationsDir
	}

	if err := migration.Run(action, dir, cfg.DatabaseURL()); err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}

	log.Printf("migration %s completed", action)
}
