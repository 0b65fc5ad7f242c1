package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:CLIENT" json:"role"`

	// Relations, preload only when needed
	Properties  []Property   `gorm:"foreignKey:UserID" json:"-"`
	Services    []Service    `gorm:"foreignKey:UserID" json:"-"`
	Restaurants []Restaurant `gorm:"foreignKey:UserID" json:"-"`
}
