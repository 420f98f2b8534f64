package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/config"
	"github.com/yeremiapane/restaurant-reservation-api/controllers"
	"github.com/yeremiapane/restaurant-reservation-api/middlewares"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORS.AllowOrigin))

	tokens := utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	requireAuth := middlewares.RequireAuth(services.NewAuthService(db, tokens))
	requireAdmin := middlewares.RequireRole(models.RoleAdmin)

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(db, tokens)
	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	reservationCtrl := controllers.NewReservationController(db)
	orderCtrl := controllers.NewOrderController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant Reservation API"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	limiter := middlewares.NewRateLimiter(cfg.Auth.RatePerMin, cfg.Auth.RateBurst)
	auth := r.Group("/auth")
	auth.Use(limiter.RateLimit())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:id", restaurantCtrl.GetRestaurantByID)
	r.GET("/menus/:id", menuCtrl.GetMenuByID)
	r.GET("/menus/restaurant/:restaurant_id", menuCtrl.GetMenusByRestaurant)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	users := r.Group("/users", requireAuth)
	{
		users.GET("/me", userCtrl.GetProfile)
		users.PUT("/:id", userCtrl.UpdateUser)
		users.DELETE("/:id", userCtrl.DeleteUser)
	}

	restaurants := r.Group("/restaurants", requireAuth)
	{
		restaurants.POST("", requireAdmin, restaurantCtrl.CreateRestaurant)
		restaurants.PUT("/:id", restaurantCtrl.UpdateRestaurant)
		restaurants.DELETE("/:id", restaurantCtrl.DeleteRestaurant)
	}

	menus := r.Group("/menus", requireAuth)
	{
		menus.POST("", menuCtrl.CreateMenu)
		menus.PUT("/:id", menuCtrl.UpdateMenu)
		menus.DELETE("/:id", menuCtrl.DeleteMenu)
	}

	reservations := r.Group("/reservations", requireAuth)
	{
		reservations.POST("", reservationCtrl.CreateReservation)
		reservations.GET("/user", reservationCtrl.GetUserReservations)
		reservations.GET("/restaurant/:restaurant_id", reservationCtrl.GetRestaurantReservations)
		reservations.GET("/:id", reservationCtrl.GetReservationByID)
		reservations.DELETE("/:id", reservationCtrl.CancelReservation)
	}

	orders := r.Group("/orders", requireAuth)
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/user", orderCtrl.GetUserOrders)
		orders.GET("/restaurant/:restaurant_id", orderCtrl.GetRestaurantOrders)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.PUT("/:id/status", orderCtrl.UpdateOrderStatus)
		orders.DELETE("/:id", orderCtrl.DeleteOrder)
	}

	return r
}
