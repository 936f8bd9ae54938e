package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"agrodog/cmd/internal/config"
	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/database/repository"
	"agrodog/cmd/internal/http/handler"
	mw "agrodog/cmd/internal/http/middleware"
	"agrodog/cmd/internal/infrastructure/aws/parameters"
	"agrodog/cmd/internal/infrastructure/metrics"
	"agrodog/cmd/internal/infrastructure/viacep"
	"agrodog/cmd/internal/service"
	"agrodog/cmd/internal/utils/validators"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("unable to load .env file, %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration, %v", err)
	}
	log.SetLevel(logLevel(cfg.Log.Level))

	db, err := database.Init(cfg.Database, cfg.Log.Level)
	if err != nil {
		log.Fatalf("unable to connect to the database, %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("unable to access the connection pool, %v", err)
	}
	defer sqlDB.Close()

	validate := validators.New()
	collector := metrics.NewPrometheusCollector(prometheus.DefaultRegisterer)
	postalCodes := viacep.NewClient(cfg.ViaCEP.BaseURL, cfg.ViaCEP.Timeout)
	transactor := database.NewTransactor(db)

	// Repos
	producerRepo := repository.NewProducerRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	cultureRepo := repository.NewCultureRepository(db)
	harvestRepo := repository.NewHarvestRepository(db)

	// Services
	addressService := service.NewAddressService(postalCodes, collector)
	producerService := service.NewProducerService(producerRepo, validate)
	farmService := service.NewFarmService(farmRepo, addressRepo, producerRepo, addressService, transactor, validate)
	cultureService := service.NewCultureService(cultureRepo, farmRepo, validate)
	harvestService := service.NewHarvestService(harvestRepo, farmRepo, cultureRepo, transactor, validate)

	// Handlers
	producerRoutes := handler.NewProducerRoute(producerService)
	farmRoutes := handler.NewFarmRoute(farmService)
	harvestRoutes := handler.NewHarvestRoute(cultureService, harvestService)
	utilRoutes := handler.NewUtilRoute(addressService, sqlDB)

	e := echo.New()
	e.HideBanner = true
	e.Debug = !cfg.IsProduction()
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(mw.NewRequestIDMiddleware())
	e.Use(mw.NewRequestLogger())
	e.Use(mw.NewMetricsMiddleware(collector))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORS.AllowOrigins}))
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(mw.NewRateLimiter(cfg.Server.RateLimit))

	// Docker Compose healthcheck and scraping
	e.GET("/health", utilRoutes.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("")
	if cfg.AuthEnabled() {
		api.Use(mw.NewAuthMiddleware(&mw.AuthMiddlewareConfig{
			Secret:  []byte(cfg.Auth.JWTSecret),
			Skipper: mw.InfraSkipper,
		}))
	} else {
		log.Warn("AUTH_JWT_SECRET is not set, the API is open")
	}

	// Producers
	api.POST("/producer", producerRoutes.CreateProducer)
	api.GET("/producer", producerRoutes.GetProducers)
	api.GET("/producer/top", producerRoutes.GetTopProducers)
	api.GET("/producer/:id", producerRoutes.GetProducer)
	api.PATCH("/producer/:id", producerRoutes.UpdateProducer)
	api.DELETE("/producer/:id", producerRoutes.DeleteProducer)

	// Farms
	api.POST("/farm", farmRoutes.CreateFarm)
	api.GET("/farm", farmRoutes.GetFarms)
	api.GET("/farm/top", farmRoutes.GetTopFarms)

	// Cultures and harvests
	api.POST("/culture", harvestRoutes.CreateCulture)
	api.POST("/harvest", harvestRoutes.CreateHarvest)
	api.GET("/harvest/top", harvestRoutes.GetTopHarvests)

	// Postal codes
	api.GET("/address/:cep", utilRoutes.GetAddress)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped, %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed, %v", err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	loader, err := parameters.NewLoader(ctx, os.Getenv("AWS_REGION"), os.Getenv("SSM_PARAMETERS_PATH"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	if _, err = loader.Load(ctx); err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}
}

func logLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
