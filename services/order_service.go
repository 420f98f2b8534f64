package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type CreateOrderInput struct {
	PickupTime   *string `json:"pickup_time" binding:"required"`
	RestaurantID *uint   `json:"restaurant_id" binding:"required"`
	// Items is validated per element after the restaurant lookup, so it
	// carries no dive tag.
	Items []OrderItemInput `json:"items" binding:"required"`
	Notes        *string          `json:"notes"`
}

type OrderItemInput struct {
	MenuID   *uint `json:"menu_id" binding:"required"`
	Quantity *int  `json:"quantity" binding:"required,min=1"`
}

type UpdateOrderStatusInput struct {
	Status *string `json:"status"`
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder validates every item against the restaurant's menu, snapshots
// the current prices and stores header and items in one transaction. Nothing
// is written unless every item is valid.
func (s *OrderService) CreateOrder(ctx context.Context, caller models.Identity, in CreateOrderInput) (*models.Order, error) {
	var order *models.Order
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		restaurant, err := dbhelper.GetRestaurantByID(tx, *in.RestaurantID)
		if err != nil {
			return lookupErr(err, "Restaurant not found")
		}

		items, total, err := priceItems(tx, restaurant.ID, in.Items)
		if err != nil {
			return err
		}

		pickup, err := utils.ParsePickupTime("pickup_time", *in.PickupTime)
		if err != nil {
			return err
		}

		order = &models.Order{
			Status:       models.OrderPending,
			PickupTime:   pickup,
			Total:        total.InexactFloat64(),
			UserID:       caller.UserID,
			RestaurantID: restaurant.ID,
			Items:        items,
		}
		if in.Notes != nil {
			order.Notes = *in.Notes
		}

		if err := dbhelper.CreateOrder(tx, order); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d created for restaurant %d, total %.2f", order.ID, order.RestaurantID, order.Total)
	return order, nil
}

// priceItems resolves each requested item to a menu entry of restaurantID and
// returns the items with their price snapshot and the exact order total.
func priceItems(tx *gorm.DB, restaurantID uint, inputs []OrderItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, utils.InvalidItem("Order must include at least one item")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		if err := utils.Validate(&in); err != nil {
			if appErr := utils.AsAppError(err); appErr.Kind == utils.KindMissingField {
				return nil, decimal.Zero, utils.InvalidItem("Each item must have menu_id and quantity")
			}
			return nil, decimal.Zero, err
		}

		menu, err := dbhelper.GetMenuByID(tx, *in.MenuID)
		if err != nil {
			return nil, decimal.Zero, lookupErr(err, fmt.Sprintf("Menu item %d not found", *in.MenuID))
		}
		if menu.RestaurantID != restaurantID {
			return nil, decimal.Zero, utils.InvalidItem(fmt.Sprintf("Menu item %d does not belong to this restaurant", menu.ID))
		}

		total = total.Add(models.LineTotal(menu.Price, *in.Quantity))
		items = append(items, models.OrderItem{
			MenuID:   menu.ID,
			Quantity: *in.Quantity,
			Price:    menu.Price,
		})
	}
	return items, total, nil
}

// GetOrder returns the order with its items and their menus.
func (s *OrderService) GetOrder(ctx context.Context, caller models.Identity, id uint) (*models.Order, error) {
	db := s.db.WithContext(ctx)
	order, err := dbhelper.GetOrderByID(db, id)
	if err != nil {
		return nil, lookupErr(err, "Order not found")
	}
	restaurant, err := dbhelper.GetRestaurantByID(db, order.RestaurantID)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	if !CanViewBooking(caller, order.UserID, restaurant) {
		return nil, utils.PermissionDenied()
	}
	return order, nil
}

// UpdateOrderStatus is reserved to the restaurant's admin and global admins.
// The body is decoded only after existence and permission.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, caller models.Identity, id uint, body utils.Payload) (*models.Order, error) {
	var order *models.Order
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		order, err = loadManagedOrder(tx, caller, id)
		if err != nil {
			return err
		}

		var in UpdateOrderStatusInput
		if err := body.Decode(&in); err != nil {
			return err
		}
		if in.Status == nil {
			return &utils.AppError{Kind: utils.KindMissingField, Field: "status", Message: "Status field is required"}
		}
		status := models.OrderStatus(*in.Status)
		if !status.Valid() {
			return utils.Invalid("status", "Invalid status. Must be one of: "+joinStatuses())
		}

		if err := dbhelper.UpdateOrderStatus(tx, order, status); err != nil {
			return utils.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, caller models.Identity, id uint) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		order, err := loadManagedOrder(tx, caller, id)
		if err != nil {
			return err
		}
		if err := dbhelper.DeleteOrder(tx, order.ID); err != nil {
			return utils.Internal(err)
		}
		return nil
	})
}

func (s *OrderService) ListUserOrders(ctx context.Context, caller models.Identity) ([]models.Order, error) {
	orders, err := dbhelper.ListOrdersByUser(s.db.WithContext(ctx), caller.UserID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return orders, nil
}

func (s *OrderService) ListRestaurantOrders(ctx context.Context, caller models.Identity, restaurantID uint) ([]models.Order, error) {
	db := s.db.WithContext(ctx)
	restaurant, err := dbhelper.GetRestaurantByID(db, restaurantID)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	if !CanManageRestaurant(caller, restaurant) {
		return nil, utils.PermissionDenied()
	}

	orders, err := dbhelper.ListOrdersByRestaurant(db, restaurant.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return orders, nil
}

func loadManagedOrder(tx *gorm.DB, caller models.Identity, id uint) (*models.Order, error) {
	order, err := dbhelper.GetOrderByID(tx, id)
	if err != nil {
		return nil, lookupErr(err, "Order not found")
	}
	restaurant, err := dbhelper.GetRestaurantByID(tx, order.RestaurantID)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	if !CanManageRestaurant(caller, restaurant) {
		return nil, utils.PermissionDenied()
	}
	return order, nil
}

func joinStatuses() string {
	names := make([]string, len(models.OrderStatuses))
	for i, status := range models.OrderStatuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
