package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fastbites-api/config"
	"fastbites-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRestaurant(t *testing.T, ownerEmail, name, city string, cuisines ...string) *models.Restaurant {
	t.Helper()
	owner := createUser(t, ownerEmail)
	restaurant := &models.Restaurant{
		UserID:         owner.ID,
		RestaurantName: name,
		City:           city,
		State:          "TX",
		DeliveryTime:   30,
		Cuisines:       cuisines,
		ImageURL:       "https://images.example/r.png",
	}
	require.NoError(t, config.DB.Create(restaurant).Error)
	return restaurant
}

func TestCreateRestaurant(t *testing.T) {
	env := setupTest(t)
	user := createUser(t, "owner@example.com")

	fields := map[string]string{
		"restaurantName": "Bella Napoli",
		"city":           "Austin",
		"state":          "TX",
		"deliveryTime":   "25",
		"cuisines":       `["Italian","Pizza"]`,
	}
	body, contentType := multipartBody(t, fields, true)
	w := env.do(t, http.MethodPost, "/api/v1/restaurant/", body, contentType, user)
	assert.Equal(t, http.StatusCreated, w.Code)

	var restaurant models.Restaurant
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).First(&restaurant).Error)
	assert.Equal(t, "Bella Napoli", restaurant.RestaurantName)
	assert.Equal(t, models.StringList{"Italian", "Pizza"}, restaurant.Cuisines)
	assert.Equal(t, "https://images.example/uploaded.png", restaurant.ImageURL)

	// a second restaurant for the same user is rejected
	body, contentType = multipartBody(t, fields, true)
	w = env.do(t, http.MethodPost, "/api/v1/restaurant/", body, contentType, user)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateRestaurantRequiresImage(t *testing.T) {
	env := setupTest(t)
	user := createUser(t, "owner@example.com")

	body, contentType := multipartBody(t, map[string]string{"restaurantName": "No Pics"}, false)
	w := env.do(t, http.MethodPost, "/api/v1/restaurant/", body, contentType, user)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Image is required")
}

func TestGetAndUpdateRestaurant(t *testing.T) {
	env := setupTest(t)
	restaurant := seedRestaurant(t, "owner@example.com", "Bella Napoli", "Austin", "Italian")
	var owner models.User
	require.NoError(t, config.DB.First(&owner, restaurant.UserID).Error)

	w := env.do(t, http.MethodGet, "/api/v1/restaurant/", nil, "", &owner)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bella Napoli")

	fields := map[string]string{
		"restaurantName": "Bella Napoli 2",
		"city":           "Dallas",
		"state":          "TX",
		"deliveryTime":   "40",
		"cuisines":       `["Italian"]`,
	}
	body, contentType := multipartBody(t, fields, false)
	w = env.do(t, http.MethodPut, "/api/v1/restaurant/", body, contentType, &owner)
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Restaurant
	require.NoError(t, config.DB.First(&reloaded, restaurant.ID).Error)
	assert.Equal(t, "Bella Napoli 2", reloaded.RestaurantName)
	assert.Equal(t, "Dallas", reloaded.City)
	// image untouched when no new file is sent
	assert.Equal(t, "https://images.example/r.png", reloaded.ImageURL)
}

func TestSearchRestaurant(t *testing.T) {
	env := setupTest(t)
	seedRestaurant(t, "a@example.com", "Bella Napoli", "Austin", "Italian", "Pizza")
	seedRestaurant(t, "b@example.com", "Taco Corner", "Austin", "Mexican")
	seedRestaurant(t, "c@example.com", "Curry House", "Houston", "Indian")

	type searchResponse struct {
		Success bool                `json:"success"`
		Data    []models.Restaurant `json:"data"`
	}

	// free text matches name, city and state case-insensitively
	w := env.do(t, http.MethodGet, "/api/v1/restaurant/search/austin", nil, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	// cuisine filter keeps only restaurants carrying that cuisine
	w = env.do(t, http.MethodGet, "/api/v1/restaurant/search/austin?selectedCuisines=Italian", nil, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = searchResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Bella Napoli", resp.Data[0].RestaurantName)

	// searchQuery matches against the cuisine list
	w = env.do(t, http.MethodGet, "/api/v1/restaurant/search/x?searchQuery=mexican", nil, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = searchResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Taco Corner", resp.Data[0].RestaurantName)
}

func TestGetSingleRestaurant(t *testing.T) {
	env := setupTest(t)
	restaurant := seedRestaurant(t, "owner@example.com", "Bella Napoli", "Austin", "Italian")

	w := env.do(t, http.MethodGet, "/api/v1/restaurant/1", nil, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), restaurant.RestaurantName)

	w = env.do(t, http.MethodGet, "/api/v1/restaurant/999", nil, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/restaurant/not-a-number", nil, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedOrder(t *testing.T, userID, restaurantID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		DeliveryDetails: models.DeliveryDetails{
			Name: "Asha Rao", Email: "asha@example.com", Address: "1 Main St", City: "Austin", Contact: "5550001111",
		},
		CartItems: []models.CartItem{
			{MenuID: 1, Name: "Margherita", Image: "https://images.example/m.png", Price: 250, Quantity: 2},
		},
		TotalAmount: 500,
		Status:      status,
	}
	require.NoError(t, config.DB.Create(order).Error)
	return order
}

func TestUpdateOrderStatus(t *testing.T) {
	env := setupTest(t)
	restaurant := seedRestaurant(t, "owner@example.com", "Bella Napoli", "Austin", "Italian")
	var owner models.User
	require.NoError(t, config.DB.First(&owner, restaurant.UserID).Error)
	customer := createUser(t, "customer@example.com")
	order := seedOrder(t, customer.ID, restaurant.ID, models.StatusConfirmed)

	w := env.doJSON(t, http.MethodPut, "/api/v1/restaurant/order/1/status", `{"status":"outfordelivery"}`, &owner)
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Order
	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusOutForDelivery, reloaded.Status)

	// transitions are unvalidated: delivered back to pending is accepted
	w = env.doJSON(t, http.MethodPut, "/api/v1/restaurant/order/1/status", `{"status":"delivered"}`, &owner)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.doJSON(t, http.MethodPut, "/api/v1/restaurant/order/1/status", `{"status":"pending"}`, &owner)
	assert.Equal(t, http.StatusOK, w.Code)

	// unknown statuses are not
	w = env.doJSON(t, http.MethodPut, "/api/v1/restaurant/order/1/status", `{"status":"teleported"}`, &owner)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPut, "/api/v1/restaurant/order/999/status", `{"status":"confirmed"}`, &owner)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantOrder(t *testing.T) {
	env := setupTest(t)
	restaurant := seedRestaurant(t, "owner@example.com", "Bella Napoli", "Austin", "Italian")
	var owner models.User
	require.NoError(t, config.DB.First(&owner, restaurant.UserID).Error)
	customer := createUser(t, "customer@example.com")
	seedOrder(t, customer.ID, restaurant.ID, models.StatusPending)

	w := env.do(t, http.MethodGet, "/api/v1/restaurant/order", nil, "", &owner)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Margherita")

	// an owner with no restaurant gets a 404
	stranger := createUser(t, "stranger@example.com")
	w = env.do(t, http.MethodGet, "/api/v1/restaurant/order", nil, "", stranger)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
