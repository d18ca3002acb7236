package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores a list of strings as a JSON text column.
// sqlite has no array type, so cuisines are serialized on write and
// decoded on read.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// ContainsAny reports whether any of the wanted cuisines is present.
func (l StringList) ContainsAny(wanted []string) bool {
	for _, w := range wanted {
		for _, c := range l {
			if c == w {
				return true
			}
		}
	}
	return false
}

type Restaurant struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User           User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantName string     `json:"restaurantName" gorm:"not null"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	DeliveryTime   int        `json:"deliveryTime"` // minutes
	Cuisines       StringList `json:"cuisines" gorm:"type:text"`
	ImageURL       string     `json:"imageUrl"`
	Menus          []Menu     `json:"menus,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Menu struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
