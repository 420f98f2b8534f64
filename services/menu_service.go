package services

import (
	"context"

	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type CreateMenuInput struct {
	Name         *string  `json:"name" binding:"required"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Category     *string  `json:"category" binding:"required"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required"`
	Description  *string  `json:"description"`
}

type UpdateMenuInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
}

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) CreateMenu(ctx context.Context, caller models.Identity, in CreateMenuInput) (*models.Menu, error) {
	menu := &models.Menu{
		Name:         *in.Name,
		Price:        *in.Price,
		Category:     *in.Category,
		RestaurantID: *in.RestaurantID,
	}
	if in.Description != nil {
		menu.Description = *in.Description
	}

	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		restaurant, err := dbhelper.GetRestaurantByID(tx, menu.RestaurantID)
		if err != nil {
			return lookupErr(err, "Restaurant not found")
		}
		if !CanManageRestaurant(caller, restaurant) {
			return utils.PermissionDenied()
		}
		if err := dbhelper.CreateMenu(tx, menu); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) GetMenu(ctx context.Context, id uint) (*models.Menu, error) {
	menu, err := dbhelper.GetMenuByID(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, lookupErr(err, "Menu item not found")
	}
	return menu, nil
}

func (s *MenuService) ListMenusByRestaurant(ctx context.Context, restaurantID uint) ([]models.Menu, error) {
	db := s.db.WithContext(ctx)
	if _, err := dbhelper.GetRestaurantByID(db, restaurantID); err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	menus, err := dbhelper.ListMenusByRestaurant(db, restaurantID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return menus, nil
}

// UpdateMenu changes the menu entry only. Order items keep the price they
// were created with. The body is decoded only after existence and permission.
func (s *MenuService) UpdateMenu(ctx context.Context, caller models.Identity, id uint, body utils.Payload) (*models.Menu, error) {
	var menu *models.Menu
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		menu, err = s.loadManagedMenu(tx, caller, id)
		if err != nil {
			return err
		}

		var in UpdateMenuInput
		if err := body.Decode(&in); err != nil {
			return err
		}
		if in.Name != nil {
			menu.Name = *in.Name
		}
		if in.Description != nil {
			menu.Description = *in.Description
		}
		if in.Price != nil {
			menu.Price = *in.Price
		}
		if in.Category != nil {
			menu.Category = *in.Category
		}

		if err := dbhelper.SaveMenu(tx, menu); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// DeleteMenu refuses to remove an entry that existing order items point at.
func (s *MenuService) DeleteMenu(ctx context.Context, caller models.Identity, id uint) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		menu, err := s.loadManagedMenu(tx, caller, id)
		if err != nil {
			return err
		}

		referenced, err := dbhelper.CountOrderItemsByMenu(tx, menu.ID)
		if err != nil {
			return utils.Internal(err)
		}
		if referenced > 0 {
			return utils.Conflict("Menu item is referenced by existing orders")
		}

		if err := dbhelper.DeleteMenu(tx, menu.ID); err != nil {
			return utils.Internal(err)
		}
		return nil
	})
}

func (s *MenuService) loadManagedMenu(tx *gorm.DB, caller models.Identity, id uint) (*models.Menu, error) {
	menu, err := dbhelper.GetMenuByID(tx, id)
	if err != nil {
		return nil, lookupErr(err, "Menu item not found")
	}
	restaurant, err := dbhelper.GetRestaurantByID(tx, menu.RestaurantID)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	if !CanManageRestaurant(caller, restaurant) {
		return nil, utils.PermissionDenied()
	}
	return menu, nil
}
