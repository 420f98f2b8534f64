package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-reservation-api/config"
	"github.com/yeremiapane/restaurant-reservation-api/database"
	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

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

func ptr[T any](v T) *T {
	return &v
}

// payload encodes v as the raw body an update handler would pass on.
func payload(t *testing.T, v interface{}) utils.Payload {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return utils.Payload(raw)
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.Identity {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, dbhelper.CreateUser(db, user))
	return models.Identity{UserID: user.ID, Role: user.Role}
}

func seedRestaurant(t *testing.T, db *gorm.DB, admin models.Identity) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		Name:      "Trattoria",
		Address:   "1 Main St",
		Phone:     "555-0100",
		OpenTime:  "09:00",
		CloseTime: "21:00",
		AdminID:   admin.UserID,
	}
	require.NoError(t, dbhelper.CreateRestaurant(db, restaurant))
	return restaurant
}

func seedMenu(t *testing.T, db *gorm.DB, restaurant *models.Restaurant, name string, price float64) *models.Menu {
	t.Helper()
	menu := &models.Menu{
		Name:         name,
		Price:        price,
		Category:     "main",
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, dbhelper.CreateMenu(db, menu))
	return menu
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func requireAppError(t *testing.T, err error, kind utils.ErrorKind, message string) {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind, "kind")
	assert.Equal(t, message, appErr.Message)
}
