package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"geetafreight/config"
	"geetafreight/db"
	"geetafreight/db/mongo"
	"geetafreight/db/postgres"
	"geetafreight/ewaybill"
	"geetafreight/handlers"
	"geetafreight/repository"
	"geetafreight/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	// GSTIN table: default unless an override file is configured
	gstin := ewaybill.DefaultGSTINTable()
	if cfg.GSTINTablePath != "" {
		loaded, err := ewaybill.LoadGSTINTable(cfg.GSTINTablePath)
		if err != nil {
			log.Fatalf("failed to load GSTIN table %s: %v", cfg.GSTINTablePath, err)
		}
		gstin = loaded
	}

	var logRepo repository.LogRepository

	switch db.StoreType(cfg.StoreType) {
	case db.CSV:
		logRepo = repository.NewCSVLogRepo(cfg.LogFile)

	case db.Postgres:
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		logRepo = repository.NewPostgresLogRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, 10*time.Second)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		logRepo = repository.NewMongoLogRepo(mg.Client)

	default:
		panic("STORE_TYPE not supported")
	}

	sessions := handlers.NewSessionStore(12 * time.Hour)

	// Handlers
	userHandler := &handlers.UserHandler{
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: cfg.AdminPasswordHash,
		Sessions:          sessions,
	}
	ewayHandler := &handlers.EwayHandler{
		Transformer: ewaybill.NewTransformer(gstin),
		LogRepo:     logRepo,
		OutputDir:   cfg.OutputDir,
	}
	logHandler := &handlers.LogHandler{Repo: logRepo}
	pdfHandler := &handlers.PDFHandler{
		Repo:     repository.NewPDFRepository(cfg.OutputDir),
		SavePath: cfg.OutputDir,
	}

	// Setup routes including PDF
	routes.SetupRoutes(userHandler, ewayHandler, logHandler, pdfHandler, sessions)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
