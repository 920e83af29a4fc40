package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"` // user, admin
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
