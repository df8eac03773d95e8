package main

import (
	"context"
	"fmt"
	"os"

	"hatbazar/cmd"
	httpin "hatbazar/internal/adapters/in/http"
	"hatbazar/internal/adapters/out/demandapi"
	"hatbazar/internal/adapters/out/memkv"
	"hatbazar/internal/adapters/out/postgres/kvstore"
	"hatbazar/internal/adapters/out/sound"
	"hatbazar/internal/adapters/out/vendorapi"
	"hatbazar/internal/core/ports"

	_ "hatbazar/docs" // swagger spec registration

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := cmd.NewLogger()

	app, err := cmd.NewCompositionRoot(
		context.Background(),
		configs,
		createKeyValueStore(configs),
		sound.NewBellAlerter(os.Stdout),
		createDemandSource(configs),
		createVendorBackend(configs),
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}
	defer app.Close()

	if jobManager := app.CreateJobManager(); jobManager != nil {
		if startErr := jobManager.StartAll(); startErr != nil {
			log.Fatalf("Failed to start jobs: %v", startErr)
		}
		defer jobManager.StopAll()
	}

	startWebServer(app.CreateHTTPServer(), configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A .env file is a development convenience; in production the variables
	// come from the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		DemandAPIURL:      os.Getenv("DEMAND_API_URL"),
		VendorAPIURL:      os.Getenv("VENDOR_API_URL"),
		DemandRefreshSpec: os.Getenv("DEMAND_REFRESH_SPEC"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func createKeyValueStore(configs cmd.Config) ports.KeyValueStore {
	if !configs.UsesPostgres() {
		log.Info("DB_HOST not set, using in-memory key-value store")
		return memkv.NewStore()
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&kvstore.EntryDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return kvstore.NewGormKeyValueStore(db)
}

func createDemandSource(configs cmd.Config) ports.DemandSource {
	if configs.DemandAPIURL == "" {
		return nil
	}
	client, err := demandapi.NewClient(configs.DemandAPIURL)
	if err != nil {
		log.Fatalf("Failed to create demand api client: %v", err)
	}
	return client
}

func createVendorBackend(configs cmd.Config) ports.VendorBackend {
	if configs.VendorAPIURL == "" {
		return nil
	}
	client, err := vendorapi.NewClient(configs.VendorAPIURL)
	if err != nil {
		log.Fatalf("Failed to create vendor api client: %v", err)
	}
	return client
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
