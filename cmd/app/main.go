package main

import (
	"fmt"
	"log/slog"
	"os"

	"tracker/cmd"
	tracker_http "tracker/internal/adapters/in/http"
	"tracker/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaShipmentTopic: goDotEnvVariable("KAFKA_SHIPMENT_TOPIC"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		JWTTokenTTL:        goDotEnvVariable("JWT_TOKEN_TTL"),
		AdminUsername:      goDotEnvVariable("ADMIN_USERNAME"),
		AdminPasswordHash:  goDotEnvVariable("ADMIN_PASSWORD_HASH"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDatabase connects to PostgreSQL and migrates the shipment schema.
// TranslateError is required so the repository can map unique constraint
// violations to domain errors.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := tracker_http.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetShipmentByTrackingNumberQueryHandler(),
		app.CreateGetShipmentsByStatusQueryHandler(),
		app.CreateGetOverdueShipmentsQueryHandler(),
		app.CreateGetAllShipmentsQueryHandler(),
		app.TokenProvider(),
		app.Logger(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
