package router

import (
	"travelbuddy/controllers"
	"travelbuddy/global"
	"travelbuddy/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/", controllers.Root)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)
		api.GET("/test", controllers.TestEndpoint)

		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		api.POST("/chat", controllers.Chat)
		api.POST("/activities", controllers.GetActivities)
		api.POST("/recommend-countries", controllers.RecommendCountries)
		api.POST("/translate", controllers.Translate)

		users := api.Group("/users")
		{
			users.GET("/:user_id", controllers.GetUserProfile)
			users.POST("/:user_id/visited", controllers.AddVisitedCountry)
			users.POST("/:user_id/visited/bulk", controllers.AddVisitedBulk)
			users.DELETE("/:user_id/visited/:country", controllers.RemoveVisitedCountry)

			// 修改档案需要登录（数据库没配时注册不可用，保持开放）
			if global.Db != nil {
				users.PUT("/:user_id", middlewares.AuthMiddleware(), controllers.UpdateUserProfile)
			} else {
				users.PUT("/:user_id", controllers.UpdateUserProfile)
			}
		}

		api.POST("/documents", controllers.UploadDocument)
		api.GET("/documents", controllers.ListDocuments)
		api.GET("/destinations/top", controllers.GetTopDestinations)
	}

	return r
}
