package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamconnect/cmd/fx/account_fx"
	"roamconnect/cmd/fx/db_fx"
	"roamconnect/cmd/fx/emergency_fx"
	"roamconnect/cmd/fx/itinerary_fx"
	"roamconnect/cmd/fx/mail_fx"
	"roamconnect/cmd/fx/memcache_fx"
	"roamconnect/cmd/fx/planner_fx"
	"roamconnect/cmd/fx/post_fx"
	"roamconnect/internal/api/controllers"
	"roamconnect/internal/infra"
	"roamconnect/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,
		post_fx.Module,
		emergency_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	postController *controllers.PostController,
	emergencyController *controllers.EmergencyController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, accountController, postController, emergencyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	postController *controllers.PostController,
	emergencyController *controllers.EmergencyController) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("", itineraryController.CreateItinerary)
	itineraryGroup.GET("", itineraryController.ListItineraries)
	itineraryGroup.GET("/:id", itineraryController.GetItinerary)
	itineraryGroup.DELETE("/:id", itineraryController.DeleteItinerary)
	itineraryGroup.GET("/:id/view", itineraryController.GetItineraryView)
	itineraryGroup.GET("/:id/similar", itineraryController.GetSimilarItineraries)

	touristGroup := r.Group("/tourists")
	touristGroup.POST("/register", accountController.Register)
	touristGroup.POST("/login", accountController.Login)
	touristGroup.POST("/forgot-password", accountController.ForgotPassword)
	touristGroup.POST("/reset-password", accountController.ResetPassword)
	touristGroup.GET("", accountController.ListTourists)
	touristGroup.GET("/:id", accountController.GetTourist)
	touristGroup.PUT("/me", middleware.JWTAuthMiddleware(), accountController.UpdateTourist)
	touristGroup.DELETE("/me", middleware.JWTAuthMiddleware(), accountController.DeleteTourist)

	postGroup := r.Group("/posts")
	postGroup.GET("", postController.ListPosts)
	postGroup.GET("/:id", postController.GetPost)
	postGroup.POST("", middleware.JWTAuthMiddleware(), postController.CreatePost)
	postGroup.PUT("/:id", middleware.JWTAuthMiddleware(), postController.UpdatePost)
	postGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), postController.DeletePost)

	erGroup := r.Group("/er-cont")
	erGroup.GET("", emergencyController.ListContacts)
	erGroup.GET("/:id", emergencyController.GetContact)
	erGroup.POST("", middleware.JWTAuthMiddleware(), emergencyController.CreateContact)
	erGroup.PUT("/:id", middleware.JWTAuthMiddleware(), emergencyController.UpdateContact)
	erGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), emergencyController.DeleteContact)
}
