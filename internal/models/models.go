// Package models defines the persistence model sources migrated at database
// registration.
package models

import "time"

// User is an account record. The startup sequence guarantees at least one
// superuser exists before the server accepts requests.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:64;uniqueIndex" json:"username"`
	Email        string `gorm:"size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	IsSuperuser  bool   `gorm:"default:false" json:"is_superuser"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Menu is a navigation record consumed by the frontend.
type Menu struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:64" json:"name"`
	Path     string `gorm:"size:255" json:"path"`
	Icon     string `gorm:"size:64" json:"icon"`
	Order    int    `gorm:"column:menu_order" json:"order"`
	ParentID uint   `gorm:"default:0" json:"parent_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
