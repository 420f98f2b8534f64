package dbhelper

import (
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"gorm.io/gorm"
)

func GetRestaurantByID(db *gorm.DB, id uint) (*models.Restaurant, error) {
	return first[models.Restaurant](db, id)
}

func ListRestaurants(db *gorm.DB) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := db.Order("id").Find(&restaurants).Error
	return restaurants, err
}

func CreateRestaurant(db *gorm.DB, restaurant *models.Restaurant) error {
	return db.Create(restaurant).Error
}

func SaveRestaurant(db *gorm.DB, restaurant *models.Restaurant) error {
	return db.Save(restaurant).Error
}

// DeleteRestaurant removes a restaurant and everything it owns: order items,
// orders, reservations and menus, in foreign key order.
func DeleteRestaurant(db *gorm.DB, id uint) error {
	restaurantOrders := db.Model(&models.Order{}).Select("id").Where("restaurant_id = ?", id)
	if err := db.Where("order_id IN (?)", restaurantOrders).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("restaurant_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return err
	}
	if err := db.Where("restaurant_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
		return err
	}
	if err := db.Where("restaurant_id = ?", id).Delete(&models.Menu{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Restaurant{}, id).Error
}
