package entity

import (
	"gorm.io/gorm"
)

// ContactClick is an append-only event row: a visitor revealed a masked
// phone/email on a listing. Used for admin analytics only.
type ContactClick struct {
	gorm.Model
	EntityType  string `gorm:"not null;index" json:"entityType"`
	EntityID    uint   `gorm:"not null;index" json:"entityId"`
	ContactType string `gorm:"not null" json:"contactType"`
}
