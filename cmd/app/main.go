package main

import (
	"fmt"
	"os"
	"strconv"

	"ordertrack/cmd"
	httpadapter "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(configs.AppEnv)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gormDB := mustOpenDB(configs, zapLogger)

	if err = postgres.Migrate(gormDB); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, gormDB, zapLogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		AppEnv:                 goDotEnvVariable("APP_ENV"),
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		LowStockThreshold:      5,
	}

	if raw := goDotEnvVariable("LOW_STOCK_THRESHOLD"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid LOW_STOCK_THRESHOLD: %v", err)
		}
		config.LowStockThreshold = threshold
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config, zapLogger *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("failed to connect database", zap.Error(err))
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(app.CreateHTTPHandlers(), configs.LowStockThreshold)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
