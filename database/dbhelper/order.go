package dbhelper

import (
	"errors"

	"github.com/yeremiapane/restaurant-reservation-api/models"
	"gorm.io/gorm"
)

// CreateOrder inserts the order header and then each of its items. Items get
// their OrderID from the inserted header.
func CreateOrder(db *gorm.DB, order *models.Order) error {
	items := order.Items
	if err := db.Omit("Items").Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}
	order.Items = items
	return nil
}

func GetOrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id")
	}).Preload("Items.Menu").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func ListOrdersByUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).Order("id").Find(&orders).Error
	return orders, err
}

func ListOrdersByRestaurant(db *gorm.DB, restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus writes only the status column; preloaded items are left
// untouched.
func UpdateOrderStatus(db *gorm.DB, order *models.Order, status models.OrderStatus) error {
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", status).Error; err != nil {
		return err
	}
	order.Status = status
	return nil
}

// DeleteOrder removes an order and its items.
func DeleteOrder(db *gorm.DB, id uint) error {
	if err := db.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Order{}, id).Error
}
