package dbhelper

import (
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"gorm.io/gorm"
)

func GetMenuByID(db *gorm.DB, id uint) (*models.Menu, error) {
	return first[models.Menu](db, id)
}

func ListMenusByRestaurant(db *gorm.DB, restaurantID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&menus).Error
	return menus, err
}

func CreateMenu(db *gorm.DB, menu *models.Menu) error {
	return db.Create(menu).Error
}

func SaveMenu(db *gorm.DB, menu *models.Menu) error {
	return db.Save(menu).Error
}

func CountOrderItemsByMenu(db *gorm.DB, menuID uint) (int64, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).Where("menu_id = ?", menuID).Count(&count).Error
	return count, err
}

func DeleteMenu(db *gorm.DB, id uint) error {
	return db.Delete(&models.Menu{}, id).Error
}
