package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const NotificationTypeNewMatch = "NEW_MATCH"

// Notification is the in-app notification entity created alongside a match
// email.
type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Type      string         `gorm:"not null;column:type" json:"type"`
	Title     string         `gorm:"not null;column:title" json:"title"`
	Message   string         `gorm:"column:message" json:"message"`
	Link      string         `gorm:"column:link" json:"link"`
	Data      datatypes.JSON `gorm:"column:data" json:"data"`
	Read      bool           `gorm:"not null;default:false;column:read" json:"read"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Notification) TableName() string {
	return "notification"
}
