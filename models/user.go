package models

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Fullname       string    `json:"fullname" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	Contact        string    `json:"contact"`
	Address        string    `json:"address" gorm:"default:'Update your address'"`
	City           string    `json:"city" gorm:"default:'Update your city'"`
	State          string    `json:"state" gorm:"default:'Update your state'"`
	ProfilePicture string    `json:"profilePicture"`
	Admin          bool      `json:"admin" gorm:"default:false"`
	LastLogin      time.Time `json:"lastLogin"`
	IsVerified     bool      `json:"isVerified" gorm:"default:false"`

	VerificationToken           string     `json:"-"`
	VerificationTokenExpiresAt  *time.Time `json:"-"`
	ResetPasswordToken          string     `json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
