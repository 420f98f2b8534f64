package services

import (
	"errors"
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

// A unique index failure that slipped past the checks inside the
// transaction must still name the field that is taken.
func TestUserStoreErrNamesTakenField(t *testing.T) {
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

	alice := &models.User{Username: "alice", Email: "alice@example.com", Password: "x", Role: models.RoleClient}
	require.NoError(t, dbhelper.CreateUser(db, alice))

	tests := []struct {
		name    string
		user    models.User
		selfID  uint
		cause   error
		kind    utils.ErrorKind
		message string
	}{
		{"username raced", models.User{Username: "alice", Email: "new@example.com"}, 0, gorm.ErrDuplicatedKey, utils.KindConflict, "Username already exists"},
		{"email raced", models.User{Username: "bob", Email: "alice@example.com"}, 0, gorm.ErrDuplicatedKey, utils.KindConflict, "Email already exists"},
		{"both raced", models.User{Username: "alice", Email: "alice@example.com"}, 0, gorm.ErrDuplicatedKey, utils.KindConflict, "Username already exists"},
		{"own row on update", models.User{Username: "alice", Email: "alice@example.com"}, alice.ID, gorm.ErrDuplicatedKey, utils.KindConflict, "Resource already exists"},
		{"unrelated failure", models.User{Username: "carol", Email: "carol@example.com"}, 0, errors.New("disk full"), utils.KindInternal, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.user
			err := userStoreErr(db, tt.cause, &user, tt.selfID)

			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.kind, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}
