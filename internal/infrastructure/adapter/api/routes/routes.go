package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	dashboardHandler *handler.DashboardHandler,
	logger coreport.Logger,
) {
	api := router.Group("/api")
	api.Use(middleware.Auth(logger))
	{
		transactions := api.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.POST("/transfer", transactionHandler.CreateTransfer)
			transactions.GET("", transactionHandler.List)
			transactions.GET("/account/:accountId", transactionHandler.ListByAccount)
			transactions.GET("/:id", transactionHandler.GetByID)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		api.GET("/dashboard", dashboardHandler.GetDashboard)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
