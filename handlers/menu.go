package handlers

import (
	"net/http"
	"strconv"

	"fastbites-api/config"
	"fastbites-api/middleware"
	"fastbites-api/models"

	"github.com/gin-gonic/gin"
)

// AddMenu creates a menu item on the caller's restaurant (multipart,
// image required)
func AddMenu(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := config.DB.Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid price is required"})
		return
	}
	if _, err := c.FormFile("image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image is required"})
		return
	}

	imageURL, err := uploadFormImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Add Menu Internal Server Error"})
		return
	}

	menu := models.Menu{
		RestaurantID: restaurant.ID,
		Name:         name,
		Description:  c.PostForm("description"),
		Price:        price,
		Image:        imageURL,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Add Menu Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Menu Added Successfully", "menu": menu})
}

// findOwnedMenu loads a menu item and checks the caller owns its
// restaurant
func findOwnedMenu(c *gin.Context, userID uint) (*models.Menu, bool) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menu Not Found"})
		return nil, false
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND user_id = ?", menu.RestaurantID, userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You don't own this menu item"})
		return nil, false
	}
	return &menu, true
}

// EditMenu updates a menu item; image is optional
func EditMenu(c *gin.Context) {
	userID := middleware.GetUserID(c)
	menu, ok := findOwnedMenu(c, userID)
	if !ok {
		return
	}

	if name := c.PostForm("name"); name != "" {
		menu.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		menu.Description = description
	}
	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid price is required"})
			return
		}
		menu.Price = price
	}
	if _, err := c.FormFile("image"); err == nil {
		imageURL, err := uploadFormImage(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Edit Menu Internal Server Error"})
			return
		}
		menu.Image = imageURL
	}

	if err := config.DB.Save(menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Edit Menu Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu Updated Successfully", "menu": menu})
}

// DeleteMenu removes a menu item
func DeleteMenu(c *gin.Context) {
	userID := middleware.GetUserID(c)
	menu, ok := findOwnedMenu(c, userID)
	if !ok {
		return
	}

	config.DB.Delete(menu)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu Deleted Successfully"})
}
