package services

import (
	"context"

	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type CreateRestaurantInput struct {
	Name        *string `json:"name" binding:"required"`
	Address     *string `json:"address" binding:"required"`
	Phone       *string `json:"phone" binding:"required"`
	OpenTime    *string `json:"open_time" binding:"required"`
	CloseTime   *string `json:"close_time" binding:"required"`
	Description *string `json:"description"`
}

type UpdateRestaurantInput struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	OpenTime    *string `json:"open_time"`
	CloseTime   *string `json:"close_time"`
}

type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// CreateRestaurant stores a restaurant administered by the caller. The admin
// role itself is enforced by the router.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, caller models.Identity, in CreateRestaurantInput) (*models.Restaurant, error) {
	openTime, err := utils.ParseClock("open_time", *in.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := utils.ParseClock("close_time", *in.CloseTime)
	if err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:      *in.Name,
		Address:   *in.Address,
		Phone:     *in.Phone,
		OpenTime:  openTime,
		CloseTime: closeTime,
		AdminID:   caller.UserID,
	}
	if in.Description != nil {
		restaurant.Description = *in.Description
	}

	err = inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := dbhelper.CreateRestaurant(tx, restaurant); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := dbhelper.ListRestaurants(s.db.WithContext(ctx))
	if err != nil {
		return nil, utils.Internal(err)
	}
	return restaurants, nil
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := dbhelper.GetRestaurantByID(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	return restaurant, nil
}

// UpdateRestaurant overwrites only the supplied fields.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, caller models.Identity, id uint, body utils.Payload) (*models.Restaurant, error) {
	var restaurant *models.Restaurant
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		restaurant, err = dbhelper.GetRestaurantByID(tx, id)
		if err != nil {
			return lookupErr(err, "Restaurant not found")
		}
		if !CanManageRestaurant(caller, restaurant) {
			return utils.PermissionDenied()
		}

		var in UpdateRestaurantInput
		if err := body.Decode(&in); err != nil {
			return err
		}
		if err := applyRestaurantUpdate(restaurant, in); err != nil {
			return err
		}
		if err := dbhelper.SaveRestaurant(tx, restaurant); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// DeleteRestaurant removes the restaurant with its menus, reservations and
// orders.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, caller models.Identity, id uint) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		restaurant, err := dbhelper.GetRestaurantByID(tx, id)
		if err != nil {
			return lookupErr(err, "Restaurant not found")
		}
		if !CanManageRestaurant(caller, restaurant) {
			return utils.PermissionDenied()
		}
		if err := dbhelper.DeleteRestaurant(tx, restaurant.ID); err != nil {
			return utils.Internal(err)
		}
		utils.InfoLogger.Printf("Restaurant %d deleted by user %d", restaurant.ID, caller.UserID)
		return nil
	})
}

func applyRestaurantUpdate(r *models.Restaurant, in UpdateRestaurantInput) error {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Address != nil {
		r.Address = *in.Address
	}
	if in.Phone != nil {
		r.Phone = *in.Phone
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.OpenTime != nil {
		openTime, err := utils.ParseClock("open_time", *in.OpenTime)
		if err != nil {
			return err
		}
		r.OpenTime = openTime
	}
	if in.CloseTime != nil {
		closeTime, err := utils.ParseClock("close_time", *in.CloseTime)
		if err != nil {
			return err
		}
		r.CloseTime = closeTime
	}
	return nil
}
