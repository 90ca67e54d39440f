package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog records a mutation performed through the admin panel.
// BeforeData/AfterData hold JSON snapshots ("null" when not applicable).
type AuditLog struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index" json:"userId"`
	UserEmail   string      `gorm:"size:100" json:"userEmail"`
	EntityType  string      `gorm:"size:50;not null;index" json:"entityType"`
	EntityID    uint        `gorm:"not null" json:"entityId"`
	Action      AuditAction `gorm:"size:20;not null" json:"action"`
	Description string      `gorm:"size:255" json:"description"`
	BeforeData  string      `gorm:"type:text" json:"beforeData"`
	AfterData   string      `gorm:"type:text" json:"afterData"`
	CreatedAt   time.Time   `json:"createdAt"`
}
