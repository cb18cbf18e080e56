package main

import (
	"fmt"
	"net/http"

	"sskcargo/config"
	"sskcargo/db"
	"sskcargo/db/mongo"
	"sskcargo/db/postgres"
	"sskcargo/handlers"
	"sskcargo/repository"
	"sskcargo/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var lrRepo repository.LRRepository
	var userRepo repository.UserRepository
	var companyRepo repository.CompanyRepository

	switch cfg.DBType {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		lrRepo = repository.NewPostgresLRRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		lrRepo = repository.NewMongoLRRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)
		companyRepo = repository.NewMongoCompanyRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	lrHandler := &handlers.LRHandler{Repo: lrRepo, Prefix: cfg.LRPrefix}
	podHandler := &handlers.PODHandler{Repo: lrRepo}
	companyHandler := &handlers.CompanyHandler{Repo: companyRepo}

	// Document handlers with combined repository
	pdfRepo := repository.NewPDFRepository(lrRepo, companyRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo}
	invoiceHandler := &handlers.InvoiceHandler{Repo: pdfRepo, Policy: cfg.TaxPolicy()}

	routes.SetupRoutes(userHandler, lrHandler, podHandler, invoiceHandler, companyHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
