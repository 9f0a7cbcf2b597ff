// Command seedcatalog loads a YAML exercise catalog into the sqlite catalog database.
//
//	seedcatalog -file catalog/exercises.yaml [-db catalog.db]
//
// The database path defaults to catalog.path from config.yaml / CATALOG_PATH.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"alcyxob/fitplan/internal/catalogfile"
	"alcyxob/fitplan/internal/config"
	"alcyxob/fitplan/internal/logger"
	"alcyxob/fitplan/internal/repository/sqlite"
)

func main() {
	file := flag.String("file", "catalog/exercises.yaml", "YAML catalog to load")
	dbPath := flag.String("db", "", "sqlite catalog path (default: catalog.path from config)")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("could not load config: " + err.Error())
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic("could not build logger: " + err.Error())
	}
	defer log.Sync()

	path := *dbPath
	if path == "" {
		path = cfg.Catalog.Path
	}

	entries, err := catalogfile.LoadFile(*file)
	if err != nil {
		log.Error("Could not read catalog file", "file", *file, "error", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(path, false)
	if err != nil {
		log.Error("Could not open catalog database", "path", path, "error", err)
		os.Exit(1)
	}
	defer func() { _ = sqlite.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := sqlite.NewCatalogStore(db).Upsert(ctx, entries); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("Catalog seeded", "file", *file, "db", path, "exercises", len(entries))
}
