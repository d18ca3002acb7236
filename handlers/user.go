package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"fastbites-api/config"
	"fastbites-api/middleware"
	"fastbites-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Contact  string `json:"contact" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// generateVerificationCode returns a 6-digit numeric code
func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		panic(err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}

// generateResetToken returns a 40-byte random hex token
func generateResetToken() string {
	b := make([]byte, 40)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"fullname":       u.Fullname,
		"email":          u.Email,
		"contact":        u.Contact,
		"address":        u.Address,
		"city":           u.City,
		"state":          u.State,
		"profilePicture": u.ProfilePicture,
		"admin":          u.Admin,
		"isVerified":     u.IsVerified,
	}
}

// Signup creates a new user account and sends a verification email
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists with this email address"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	code := generateVerificationCode()
	expiresAt := time.Now().Add(24 * time.Hour)
	user := models.User{
		Fullname:                   req.Fullname,
		Email:                      req.Email,
		PasswordHash:               string(hash),
		Contact:                    req.Contact,
		LastLogin:                  time.Now(),
		VerificationToken:          code,
		VerificationTokenExpiresAt: &expiresAt,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Signup Internal server error"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}
	middleware.SetAuthCookie(c, token)

	if err := Mail.SendVerificationEmail(user.Email, code); err != nil {
		log.Println("Failed to send verification email:", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"user":    publicUser(&user),
	})
}

// Login authenticates a user and sets the auth cookie
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Incorrect password"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}
	middleware.SetAuthCookie(c, token)

	config.DB.Model(&user).Update("last_login", time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome Back " + user.Fullname,
		"user":    publicUser(&user),
	})
}

// Logout clears the auth cookie
func Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

type VerifyEmailRequest struct {
	VerificationCode string `json:"verificationCode" binding:"required"`
}

// VerifyEmail checks the emailed code and marks the account verified
func VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var user models.User
	err := config.DB.
		Where("verification_token = ? AND verification_token_expires_at > ?", req.VerificationCode, time.Now()).
		First(&user).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired verification token"})
		return
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.VerificationTokenExpiresAt = nil
	config.DB.Save(&user)

	if err := Mail.SendWelcomeEmail(user.Email, user.Fullname); err != nil {
		log.Println("Failed to send welcome email:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified successfully.",
		"user":    publicUser(&user),
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword emails a time-limited reset link
func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User doesn't exist"})
		return
	}

	resetToken := generateResetToken()
	expiresAt := time.Now().Add(1 * time.Hour)
	user.ResetPasswordToken = resetToken
	user.ResetPasswordTokenExpiresAt = &expiresAt
	config.DB.Save(&user)

	if err := Mail.SendPasswordResetEmail(user.Email, config.FrontendURL+"/resetpassword/"+resetToken); err != nil {
		log.Println("Failed to send password reset email:", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset link sent to your email"})
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPassword consumes a reset token and stores the new password
func ResetPassword(c *gin.Context) {
	token := c.Param("token")
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var user models.User
	err := config.DB.
		Where("reset_password_token = ? AND reset_password_token_expires_at > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired reset token"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}
	user.PasswordHash = string(hash)
	user.ResetPasswordToken = ""
	user.ResetPasswordTokenExpiresAt = nil
	config.DB.Save(&user)

	if err := Mail.SendResetSuccessEmail(user.Email); err != nil {
		log.Println("Failed to send reset success email:", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}

// CheckAuth returns the authenticated user
func CheckAuth(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(&user)})
}

type UpdateProfileRequest struct {
	Fullname       string `json:"fullname" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	ProfilePicture string `json:"profilePicture" binding:"required"`
}

// UpdateProfile replaces profile fields and uploads the new picture
func UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All profile fields are required"})
		return
	}

	pictureURL, err := Images.Upload(c.Request.Context(), req.ProfilePicture)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update Profile Internal server error"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	user.Fullname = req.Fullname
	user.Email = req.Email
	user.Address = req.Address
	user.City = req.City
	user.State = req.State
	user.ProfilePicture = pictureURL
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update Profile Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    publicUser(&user),
	})
}
