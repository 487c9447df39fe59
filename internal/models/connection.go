package models

import (
	"time"
)

// ConnectionStatus is the closed set of connection states.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
	// ConnectionDisconnected is declared for wire compatibility but is not a
	// transition target; removal deletes the row instead.
	ConnectionDisconnected ConnectionStatus = "disconnected"
)

// Connection links one professional and one client. The compound unique
// index enforces at most one row per pair even under concurrent writers;
// the services additionally pre-check inside a transaction.
type Connection struct {
	ID             uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfessionalID uint64           `gorm:"not null;uniqueIndex:idx_connection_pair" json:"professional_id"`
	ClientID       uint64           `gorm:"not null;uniqueIndex:idx_connection_pair" json:"client_id"`
	Status         ConnectionStatus `gorm:"size:20;not null;default:pending" json:"status"`
	InitiatedBy    uint64           `gorm:"not null" json:"initiated_by"`
	CreatedAt      time.Time        `json:"created_at"`

	Professional User `gorm:"foreignKey:ProfessionalID" json:"-"`
	Client       User `gorm:"foreignKey:ClientID" json:"-"`
}
