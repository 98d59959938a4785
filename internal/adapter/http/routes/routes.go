package routes

import (
	"log"

	_ "bidworks/docs" // This will be auto-generated
	"bidworks/internal/adapter/http/handlers"
	"bidworks/internal/adapter/persistence/repository"
	"bidworks/internal/config"
	"bidworks/internal/infrastructure/catalog"
	"bidworks/internal/infrastructure/database"
	"bidworks/internal/usecase"
	"bidworks/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.Must(logger.New())
	defer func() { _ = zlog.Sync() }()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, zlog)

	zlog.Info("starting bid estimating service", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, zlog *zap.Logger) {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	bidRepo := repository.NewBidDynamoRepositoryWithTable(ddb, cfg.DynamoDB.BidsTable)
	catalogClient := catalog.NewClient(cfg.Catalog, logger.Named(zlog, "catalog"))

	bidUseCase := usecase.NewBidUseCase(bidRepo, catalogClient)

	bidHandler := handlers.NewBidHandler(bidUseCase)
	catalogHandler := handlers.NewCatalogHandler(bidUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBidRoutes(v1, bidHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
