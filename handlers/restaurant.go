package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fastbites-api/config"
	"fastbites-api/middleware"
	"fastbites-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseCuisines accepts the JSON-array string the multipart form carries
func parseCuisines(raw string) (models.StringList, error) {
	if raw == "" {
		return nil, nil
	}
	var cuisines models.StringList
	if err := json.Unmarshal([]byte(raw), &cuisines); err != nil {
		return nil, err
	}
	return cuisines, nil
}

// uploadFormImage uploads the "image" part of a multipart request
func uploadFormImage(c *gin.Context) (string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return "", err
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return Images.Upload(c.Request.Context(), file)
}

// CreateRestaurant creates the caller's restaurant (multipart, image required)
func CreateRestaurant(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var existing models.Restaurant
	if result := config.DB.Where("user_id = ?", userID).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Restaurant already exists for this user"})
		return
	}

	if _, err := c.FormFile("image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image is required"})
		return
	}

	cuisines, err := parseCuisines(c.PostForm("cuisines"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cuisines format"})
		return
	}
	deliveryTime, _ := strconv.Atoi(c.PostForm("deliveryTime"))

	imageURL, err := uploadFormImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Create Restaurant Internal Server Error"})
		return
	}

	restaurant := models.Restaurant{
		UserID:         userID,
		RestaurantName: c.PostForm("restaurantName"),
		City:           c.PostForm("city"),
		State:          c.PostForm("state"),
		DeliveryTime:   deliveryTime,
		Cuisines:       cuisines,
		ImageURL:       imageURL,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Create Restaurant Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Restaurant Added Successfully"})
}

// GetRestaurant fetches the caller's restaurant with its menu
func GetRestaurant(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Preload("Menus").Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

// UpdateRestaurant updates the caller's restaurant; image is optional
func UpdateRestaurant(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant Not Found"})
		return
	}

	cuisines, err := parseCuisines(c.PostForm("cuisines"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cuisines format"})
		return
	}

	restaurant.RestaurantName = c.PostForm("restaurantName")
	restaurant.City = c.PostForm("city")
	restaurant.State = c.PostForm("state")
	restaurant.DeliveryTime, _ = strconv.Atoi(c.PostForm("deliveryTime"))
	restaurant.Cuisines = cuisines

	if _, err := c.FormFile("image"); err == nil {
		imageURL, err := uploadFormImage(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update Restaurant Internal Server Error"})
			return
		}
		restaurant.ImageURL = imageURL
	}

	if err := config.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update Restaurant Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Restaurant Updated Successfully", "restaurant": restaurant})
}

// GetRestaurantOrder lists orders placed against the caller's restaurant
func GetRestaurantOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	var orders []models.Order
	config.DB.Preload("CartItems").Preload("Restaurant").Preload("User").
		Where("restaurant_id = ?", restaurant.ID).
		Find(&orders)

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus overwrites an order's status. Any known status may
// replace any other; ordering of the lifecycle is not enforced.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order Not Found"})
		return
	}

	config.DB.Model(&order).Update("status", status)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  status,
		"message": "Order Status Updated Successfully",
	})
}

// SearchRestaurant performs free-text search over name/city/state with
// an optional any-of cuisine filter. Results are unranked and
// unpaginated.
func SearchRestaurant(c *gin.Context) {
	searchText := c.Param("searchText")
	searchQuery := c.Query("searchQuery")

	var selectedCuisines []string
	for _, cuisine := range strings.Split(c.Query("selectedCuisines"), ",") {
		if cuisine != "" {
			selectedCuisines = append(selectedCuisines, cuisine)
		}
	}

	query := config.DB.Model(&models.Restaurant{})
	if searchText != "" {
		like := "%" + strings.ToLower(searchText) + "%"
		query = query.Where(
			"LOWER(restaurant_name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?",
			like, like, like,
		)
	}
	if searchQuery != "" {
		like := "%" + strings.ToLower(searchQuery) + "%"
		query = query.Where(
			"LOWER(restaurant_name) LIKE ? OR LOWER(cuisines) LIKE ?",
			like, like,
		)
	}

	var restaurants []models.Restaurant
	query.Find(&restaurants)

	// cuisines live in a JSON column, so the any-of filter runs here
	if len(selectedCuisines) > 0 {
		filtered := restaurants[:0]
		for _, r := range restaurants {
			if r.Cuisines.ContainsAny(selectedCuisines) {
				filtered = append(filtered, r)
			}
		}
		restaurants = filtered
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": restaurants})
}

// GetSingleRestaurant returns one restaurant with its menu, newest
// items first
func GetSingleRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid Restaurant ID format"})
		return
	}

	var restaurant models.Restaurant
	err = config.DB.
		Preload("Menus", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		First(&restaurant, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant Not Found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}
