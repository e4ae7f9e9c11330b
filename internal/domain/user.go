package domain

// User Model
type User struct {
	Email    string `gorm:"primaryKey;size:255"` // Primary identity, stored lowercased
	Password string `gorm:"not null"`            // Bcrypt password digest
	Webhook  string `gorm:"default:''"`          // Optional notification webhook URL
}
