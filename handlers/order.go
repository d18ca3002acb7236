package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"fastbites-api/config"
	"fastbites-api/middleware"
	"fastbites-api/models"
	"fastbites-api/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

type CheckoutSessionRequest struct {
	CartItems []struct {
		MenuID   uint    `json:"menuId" binding:"required"`
		Name     string  `json:"name"`
		Image    string  `json:"image"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
	} `json:"cartItems" binding:"required,min=1"`
	DeliveryDetails struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Address string `json:"address" binding:"required"`
		City    string `json:"city" binding:"required"`
		Contact string `json:"contact"`
	} `json:"deliveryDetails" binding:"required"`
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

// GetOrders returns the caller's orders with restaurant data
func GetOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("CartItems").Preload("Restaurant").Preload("User").
		Where("user_id = ?", userID).
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// buildOrderItems resolves each cart entry against the restaurant's
// menu, snapshotting the SERVER-side price. Client-supplied prices are
// ignored. A cart menu id absent from the menu is an error.
func buildOrderItems(req *CheckoutSessionRequest, menus []models.Menu) ([]models.CartItem, float64, error) {
	byID := make(map[uint]*models.Menu, len(menus))
	for i := range menus {
		byID[menus[i].ID] = &menus[i]
	}

	var items []models.CartItem
	var total float64
	for _, cartItem := range req.CartItems {
		menu, ok := byID[cartItem.MenuID]
		if !ok {
			return nil, 0, errors.New("menu item id not found")
		}
		total += menu.Price * float64(cartItem.Quantity)
		items = append(items, models.CartItem{
			MenuID:   menu.ID,
			Name:     menu.Name,
			Image:    menu.Image,
			Price:    menu.Price,
			Quantity: cartItem.Quantity,
		})
	}
	return items, total, nil
}

// CreateCheckoutSession persists a pending order and returns the URL
// of a hosted payment page whose line items mirror the cart.
func CreateCheckoutSession(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Preload("Menus").First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant not found."})
		return
	}

	orderItems, total, err := buildOrderItems(&req, restaurant.Menus)
	if err != nil {
		log.Println("Checkout error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	order := models.Order{
		UserID:       userID,
		RestaurantID: restaurant.ID,
		DeliveryDetails: models.DeliveryDetails{
			Name:    req.DeliveryDetails.Name,
			Email:   req.DeliveryDetails.Email,
			Address: req.DeliveryDetails.Address,
			City:    req.DeliveryDetails.City,
			Contact: req.DeliveryDetails.Contact,
		},
		CartItems:   orderItems,
		TotalAmount: total,
		Status:      models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	var lineItems []payments.LineItem
	var images []string
	for _, item := range orderItems {
		lineItems = append(lineItems, payments.LineItem{
			Name:       item.Name,
			Image:      item.Image,
			// rounded, not truncated: 1.15*100 is 114.999… in float64
			UnitAmount: int64(math.Round(item.Price * 100)),
			Quantity:   int64(item.Quantity),
		})
		images = append(images, item.Image)
	}
	imagesJSON, _ := json.Marshal(images)

	session, err := Payments.CreateCheckoutSession(payments.CheckoutParams{
		LineItems:  lineItems,
		SuccessURL: config.FrontendURL + "/order/status",
		CancelURL:  config.FrontendURL + "/cart",
		Metadata: map[string]string{
			"orderId": strconv.FormatUint(uint64(order.ID), 10),
			"images":  string(imagesJSON),
		},
	})
	if err != nil {
		log.Println("Checkout error:", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error while creating session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": gin.H{"id": session.ID, "url": session.URL},
	})
}

// StripeWebhook verifies the provider signature and confirms the order
// referenced by the session metadata. Re-delivery of the same event
// re-applies the same update.
func StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook error: unreadable payload"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		config.StripeWebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Println("Webhook error:", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook error: " + err.Error()})
		return
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
			return
		}

		var order models.Order
		if err := config.DB.First(&order, session.Metadata["orderId"]).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		if session.AmountTotal > 0 {
			order.TotalAmount = float64(session.AmountTotal)
		}
		order.Status = models.StatusConfirmed
		if err := config.DB.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
			return
		}
	}

	c.Status(http.StatusOK)
}
