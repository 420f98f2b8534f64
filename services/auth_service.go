package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username *string `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
	Role     *string `json:"role"`
}

type LoginInput struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a client or admin account. Username is checked before
// email so a request duplicating both reports the username.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	role := models.RoleClient
	if in.Role != nil {
		role = models.Role(*in.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.Internal(err)
	}

	user := &models.User{
		Username: *in.Username,
		Email:    *in.Email,
		Password: string(hashed),
		Role:     role,
	}

	var writeErr error
	err = inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := ensureUsernameFree(tx, user.Username, 0); err != nil {
			return err
		}
		if err := ensureEmailFree(tx, user.Email, 0); err != nil {
			return err
		}
		if !role.Valid() {
			return utils.Invalid("role", "Invalid role")
		}
		if err := dbhelper.CreateUser(tx, user); err != nil {
			writeErr = err
			return err
		}
		return nil
	})
	if writeErr != nil {
		return nil, userStoreErr(s.db.WithContext(ctx), writeErr, user, 0)
	}
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	return user, nil
}

// Login checks credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	user, err := dbhelper.GetUserByUsername(s.db.WithContext(ctx), *in.Username)
	if err != nil {
		return "", nil, lookupErr(err, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*in.Password)); err != nil {
		return "", nil, utils.Unauthenticated("Invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", nil, utils.Internal(err)
	}
	return token, user, nil
}

// ResolveIdentity maps a bearer token to the caller's id and current role.
// The role is read from the store on every call.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (models.Identity, error) {
	userID, err := s.tokens.ParseToken(token)
	if err != nil {
		return models.Identity{}, utils.Unauthenticated("Invalid or expired token")
	}

	user, err := dbhelper.GetUserByID(s.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, dbhelper.ErrNotFound) {
			return models.Identity{}, utils.Unauthenticated("Invalid or expired token")
		}
		return models.Identity{}, utils.Internal(err)
	}
	return models.Identity{UserID: user.ID, Role: user.Role}, nil
}

// ensureUsernameFree fails with a conflict when username belongs to a user
// other than selfID.
func ensureUsernameFree(tx *gorm.DB, username string, selfID uint) error {
	existing, err := dbhelper.GetUserByUsername(tx, username)
	switch {
	case errors.Is(err, dbhelper.ErrNotFound):
		return nil
	case err != nil:
		return utils.Internal(err)
	case existing.ID != selfID:
		return utils.Conflict("Username already exists")
	}
	return nil
}

func ensureEmailFree(tx *gorm.DB, email string, selfID uint) error {
	existing, err := dbhelper.GetUserByEmail(tx, email)
	switch {
	case errors.Is(err, dbhelper.ErrNotFound):
		return nil
	case err != nil:
		return utils.Internal(err)
	case existing.ID != selfID:
		return utils.Conflict("Email already exists")
	}
	return nil
}

// userStoreErr re-runs the uniqueness checks after a failed user write so a
// concurrent insert that won the race reports which field is taken.
func userStoreErr(db *gorm.DB, err error, user *models.User, selfID uint) error {
	if checkErr := ensureUsernameFree(db, user.Username, selfID); checkErr != nil {
		return checkErr
	}
	if checkErr := ensureEmailFree(db, user.Email, selfID); checkErr != nil {
		return checkErr
	}
	return storeErr(err)
}
