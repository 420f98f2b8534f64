package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
)

func userView(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

func orderSummary(o *models.Order) gin.H {
	return gin.H{
		"id":            o.ID,
		"status":        o.Status,
		"pickup_time":   o.PickupTime.Format(utils.PickupLayout),
		"total":         o.Total,
		"notes":         o.Notes,
		"user_id":       o.UserID,
		"restaurant_id": o.RestaurantID,
		"created_at":    o.CreatedAt,
	}
}

func orderDetail(o *models.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, gin.H{
			"id":       item.ID,
			"menu_id":  item.MenuID,
			"name":     item.Menu.Name,
			"quantity": item.Quantity,
			"price":    item.Price,
			"subtotal": item.Subtotal(),
		})
	}

	view := orderSummary(o)
	view["items"] = items
	return view
}

func orderList(orders []models.Order) []gin.H {
	views := make([]gin.H, 0, len(orders))
	for i := range orders {
		views = append(views, orderSummary(&orders[i]))
	}
	return views
}
