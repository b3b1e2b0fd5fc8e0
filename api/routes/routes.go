package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/config"
	"github.com/relationtrack/relationtrack-backend/internal/handlers"
	"github.com/relationtrack/relationtrack-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	TaskHandler       *handlers.TaskHandler
	GameHandler       *handlers.GameHandler
	PointHandler      *handlers.PointHandler
	BucketlistHandler *handlers.BucketlistHandler
	CouponHandler     *handlers.CouponHandler
	AttractionHandler *handlers.AttractionHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		tasks := api.Group("/tasks")
		{
			tasks.GET("", deps.TaskHandler.GetTasks)
			tasks.POST("", deps.TaskHandler.CreateTask)
			tasks.POST("/:id/complete", deps.TaskHandler.CompleteTask)
			tasks.DELETE("/:id", deps.TaskHandler.DeleteTask)
		}

		game := api.Group("/game")
		{
			game.GET("/truths", deps.GameHandler.GetTruths)
			game.POST("/truths", deps.GameHandler.CreateTruth)
			game.GET("/dares", deps.GameHandler.GetDares)
			game.POST("/dares", deps.GameHandler.CreateDare)
			game.POST("/draw", deps.GameHandler.Draw)
		}

		points := api.Group("/points")
		{
			points.GET("", deps.PointHandler.GetPoints)
			points.GET("/total", deps.PointHandler.GetTotalPoints)
			points.POST("", deps.PointHandler.AddPoints)
		}

		bucketlist := api.Group("/bucketlist")
		{
			bucketlist.GET("", deps.BucketlistHandler.GetBucketlist)
			bucketlist.POST("", deps.BucketlistHandler.CreateItem)
			bucketlist.POST("/:id/complete", deps.BucketlistHandler.CompleteItem)
		}

		coupons := api.Group("/coupons")
		{
			coupons.GET("", deps.CouponHandler.GetCoupons)
			coupons.POST("", deps.CouponHandler.CreateCoupon)
			coupons.POST("/:id/redeem", deps.CouponHandler.RedeemCoupon)
			coupons.DELETE("/:id", deps.CouponHandler.DeleteCoupon)
		}

		attractions := api.Group("/attractions")
		{
			attractions.GET("", deps.AttractionHandler.GetAttractions)
			attractions.POST("", deps.AttractionHandler.CreateAttraction)
		}
	}

	return router
}
