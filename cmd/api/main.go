package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ugobe007/merlin2-sub009/internal/api/handlers"
	"github.com/ugobe007/merlin2-sub009/internal/api/middleware"
	"github.com/ugobe007/merlin2-sub009/internal/config"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	quoteHandler := handlers.NewQuoteHandler()
	catalogHandler := handlers.NewCatalogHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "constants_version": config.ConstantsVersion})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/quote", quoteHandler.RunQuote)
		api.POST("/quote/compare", quoteHandler.CompareQuotes)

		api.GET("/industries", catalogHandler.ListIndustries)
		api.GET("/chemistries", catalogHandler.ListChemistries)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
