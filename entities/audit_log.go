package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TableName string    `gorm:"size:255" json:"table_name"`
	RecordID  string    `json:"record_id"`
	Action    string    `json:"action"` // "create", "update", "delete"
	UserID    uuid.UUID `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `gorm:"type:text" json:"details,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
