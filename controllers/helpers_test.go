package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-reservation-api/config"
	"github.com/yeremiapane/restaurant-reservation-api/controllers"
	"github.com/yeremiapane/restaurant-reservation-api/database"
	"github.com/yeremiapane/restaurant-reservation-api/middlewares"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

// setupTestDB menggunakan SQLite in-memory untuk testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// setupRouterForTest mounts every controller the way the production router
// does, without rate limiting.
func setupRouterForTest(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tokens := utils.NewTokenManager("test-secret", time.Hour)
	requireAuth := middlewares.RequireAuth(services.NewAuthService(db, tokens))

	authCtrl := controllers.NewAuthController(db, tokens)
	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	reservationCtrl := controllers.NewReservationController(db)
	orderCtrl := controllers.NewOrderController(db)

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/users/me", requireAuth, userCtrl.GetProfile)
	router.PUT("/users/:id", requireAuth, userCtrl.UpdateUser)
	router.DELETE("/users/:id", requireAuth, userCtrl.DeleteUser)

	router.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantCtrl.GetRestaurantByID)
	router.POST("/restaurants", requireAuth, middlewares.RequireRole(models.RoleAdmin), restaurantCtrl.CreateRestaurant)
	router.PUT("/restaurants/:id", requireAuth, restaurantCtrl.UpdateRestaurant)
	router.DELETE("/restaurants/:id", requireAuth, restaurantCtrl.DeleteRestaurant)

	router.GET("/menus/:id", menuCtrl.GetMenuByID)
	router.GET("/menus/restaurant/:restaurant_id", menuCtrl.GetMenusByRestaurant)
	router.POST("/menus", requireAuth, menuCtrl.CreateMenu)
	router.PUT("/menus/:id", requireAuth, menuCtrl.UpdateMenu)
	router.DELETE("/menus/:id", requireAuth, menuCtrl.DeleteMenu)

	router.POST("/reservations", requireAuth, reservationCtrl.CreateReservation)
	router.GET("/reservations/user", requireAuth, reservationCtrl.GetUserReservations)
	router.GET("/reservations/restaurant/:restaurant_id", requireAuth, reservationCtrl.GetRestaurantReservations)
	router.GET("/reservations/:id", requireAuth, reservationCtrl.GetReservationByID)
	router.DELETE("/reservations/:id", requireAuth, reservationCtrl.CancelReservation)

	router.POST("/orders", requireAuth, orderCtrl.CreateOrder)
	router.GET("/orders/user", requireAuth, orderCtrl.GetUserOrders)
	router.GET("/orders/restaurant/:restaurant_id", requireAuth, orderCtrl.GetRestaurantOrders)
	router.GET("/orders/:id", requireAuth, orderCtrl.GetOrderByID)
	router.PUT("/orders/:id/status", requireAuth, orderCtrl.UpdateOrderStatus)
	router.DELETE("/orders/:id", requireAuth, orderCtrl.DeleteOrder)

	return router
}

type testClient struct {
	t      *testing.T
	router *gin.Engine
}

func newTestClient(t *testing.T) *testClient {
	return &testClient{t: t, router: setupRouterForTest(setupTestDB(t))}
}

// do sends payload as JSON (when non-nil) and decodes the response into a
// generic value.
func (tc *testClient) do(method, path, token string, payload interface{}) (int, interface{}) {
	tc.t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(tc.t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := http.NewRequest(method, path, &body)
	require.NoError(tc.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	var decoded interface{}
	if w.Body.Len() > 0 {
		require.NoError(tc.t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	}
	return w.Code, decoded
}

func (tc *testClient) object(method, path, token string, payload interface{}) (int, map[string]interface{}) {
	tc.t.Helper()
	code, decoded := tc.do(method, path, token, payload)
	obj, _ := decoded.(map[string]interface{})
	return code, obj
}

func (tc *testClient) list(path, token string) (int, []interface{}) {
	tc.t.Helper()
	code, decoded := tc.do(http.MethodGet, path, token, nil)
	arr, _ := decoded.([]interface{})
	return code, arr
}

// signUp registers and logs in a user, returning the access token and id.
func (tc *testClient) signUp(username, role string) (string, uint) {
	tc.t.Helper()
	code, resp := tc.object(http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret",
		"role":     role,
	})
	require.Equal(tc.t, http.StatusCreated, code, resp)

	code, resp = tc.object(http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": "secret",
	})
	require.Equal(tc.t, http.StatusOK, code, resp)
	return resp["access_token"].(string), uint(resp["user_id"].(float64))
}

func (tc *testClient) createRestaurant(token string) uint {
	tc.t.Helper()
	code, resp := tc.object(http.MethodPost, "/restaurants", token, gin.H{
		"name":       "Trattoria",
		"address":    "1 Main St",
		"phone":      "555-0100",
		"open_time":  "09:00",
		"close_time": "21:00",
	})
	require.Equal(tc.t, http.StatusCreated, code, resp)
	return uint(resp["id"].(float64))
}

func (tc *testClient) createMenu(token string, restaurantID uint, price float64) uint {
	tc.t.Helper()
	code, resp := tc.object(http.MethodPost, "/menus", token, gin.H{
		"name":          "Pasta",
		"price":         price,
		"category":      "main",
		"restaurant_id": restaurantID,
	})
	require.Equal(tc.t, http.StatusCreated, code, resp)
	return uint(resp["id"].(float64))
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
