package main

import (
	"context"
	"net/http"

	"locations-api/internal/config"
	"locations-api/internal/handler"
	"locations-api/internal/repository"
	"locations-api/internal/service"

	_ "locations-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		Locations API
//	@version	1.0
//	@BasePath	/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	matchService := service.NewMatchService(repo)
	searchService := service.NewSearchService(repo)

	matchHandler := handler.NewMatchHandler(matchService)
	searchHandler := handler.NewSearchHandler(searchService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.POST("/locations/match", matchHandler.Match)
	r.GET("/locations/search", searchHandler.Search)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
