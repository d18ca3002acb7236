package routes

import (
	"fastbites-api/handlers"
	"fastbites-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── User routes ────────────────────────────────────────────────
	user := r.Group("/api/v1/user")
	{
		user.POST("/signup", handlers.Signup)
		user.POST("/login", handlers.Login)
		user.POST("/logout", handlers.Logout)
		user.POST("/verify-email", handlers.VerifyEmail)
		user.POST("/forgot-password", handlers.ForgotPassword)
		user.POST("/reset-password/:token", handlers.ResetPassword)

		user.GET("/check-auth", middleware.IsAuthenticated(), handlers.CheckAuth)
		user.PUT("/profile/update", middleware.IsAuthenticated(), handlers.UpdateProfile)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api/v1/restaurant")
	{
		restaurant.POST("/", middleware.IsAuthenticated(), handlers.CreateRestaurant)
		restaurant.GET("/", middleware.IsAuthenticated(), handlers.GetRestaurant)
		restaurant.PUT("/", middleware.IsAuthenticated(), handlers.UpdateRestaurant)
		restaurant.GET("/order", middleware.IsAuthenticated(), handlers.GetRestaurantOrder)
		restaurant.PUT("/order/:orderId/status", middleware.IsAuthenticated(), handlers.UpdateOrderStatus)

		restaurant.GET("/search/:searchText", handlers.SearchRestaurant)
		restaurant.GET("/:id", handlers.GetSingleRestaurant)
	}

	// ── Menu routes ────────────────────────────────────────────────
	menu := r.Group("/api/v1/menu")
	menu.Use(middleware.IsAuthenticated())
	{
		menu.POST("/", handlers.AddMenu)
		menu.PUT("/:id", handlers.EditMenu)
		menu.DELETE("/:id", handlers.DeleteMenu)
	}

	// ── Order routes ───────────────────────────────────────────────
	order := r.Group("/api/v1/order")
	{
		order.GET("/", middleware.IsAuthenticated(), handlers.GetOrders)
		order.POST("/checkout/create-checkout-session", middleware.IsAuthenticated(), handlers.CreateCheckoutSession)
		// Stripe calls this; signature verification is the auth
		order.POST("/webhook", handlers.StripeWebhook)
	}
}
