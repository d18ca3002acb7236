package models

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "outfordelivery"
	StatusDelivered      OrderStatus = "delivered"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPending:        true,
	StatusConfirmed:      true,
	StatusPreparing:      true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
}

// ParseOrderStatus validates a status string. Any known status may
// replace any other; transition ordering is not enforced.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !orderStatuses[status] {
		return "", errors.New("invalid order status: " + s)
	}
	return status, nil
}

// DeliveryDetails is captured at checkout and embedded in the order
type DeliveryDetails struct {
	Name    string `json:"name" gorm:"column:delivery_name;not null"`
	Email   string `json:"email" gorm:"column:delivery_email;not null"`
	Address string `json:"address" gorm:"column:delivery_address;not null"`
	City    string `json:"city" gorm:"column:delivery_city;not null"`
	Contact string `json:"contact" gorm:"column:delivery_contact"`
}

// CartItem is a line item: a price/name snapshot of a menu item at
// order time, paired with a quantity.
type CartItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	MenuID   uint    `json:"menuId" gorm:"not null"`
	Name     string  `json:"name" gorm:"not null"`
	Image    string  `json:"image"`
	Price    float64 `json:"price" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
}

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"not null"`
	User            User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant      `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails" gorm:"embedded"`
	CartItems       []CartItem      `json:"cartItems" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"totalAmount" gorm:"not null"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
