package services

import (
	"context"

	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := dbhelper.GetUserByID(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	return user, nil
}

// UpdateUser applies the supplied fields. Only the user themself or an admin
// may do so, and the body is decoded only after that check.
func (s *UserService) UpdateUser(ctx context.Context, caller models.Identity, id uint, body utils.Payload) (*models.User, error) {
	var (
		user     *models.User
		writeErr error
	)
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		user, err = dbhelper.GetUserByID(tx, id)
		if err != nil {
			return lookupErr(err, "User not found")
		}
		if !IsSelfOrAdmin(caller, user.ID) {
			return utils.PermissionDenied()
		}

		var in UpdateUserInput
		if err := body.Decode(&in); err != nil {
			return err
		}
		if in.Email != nil {
			if err := ensureEmailFree(tx, *in.Email, user.ID); err != nil {
				return err
			}
			user.Email = *in.Email
		}
		if in.Username != nil {
			if err := ensureUsernameFree(tx, *in.Username, user.ID); err != nil {
				return err
			}
			user.Username = *in.Username
		}

		if err := dbhelper.SaveUser(tx, user); err != nil {
			writeErr = err
			return err
		}
		return nil
	})
	if writeErr != nil {
		return nil, userStoreErr(s.db.WithContext(ctx), writeErr, user, user.ID)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account along with its reservations and orders. A
// user who still administers restaurants cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, caller models.Identity, id uint) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		user, err := dbhelper.GetUserByID(tx, id)
		if err != nil {
			return lookupErr(err, "User not found")
		}
		if !IsSelfOrAdmin(caller, user.ID) {
			return utils.PermissionDenied()
		}

		owned, err := dbhelper.CountRestaurantsByAdmin(tx, user.ID)
		if err != nil {
			return utils.Internal(err)
		}
		if owned > 0 {
			return utils.Conflict("User still administers restaurants")
		}

		if err := dbhelper.DeleteUser(tx, user.ID); err != nil {
			return utils.Internal(err)
		}
		return nil
	})
}
