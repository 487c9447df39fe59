package models

import (
	"time"
)

// InviteStatus is the closed set of activity-invite states.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// GroupActivity is owned by the professional that created it. It has no
// state machine of its own; deletion cascades over its invites in one
// transaction (see services.DeleteActivity).
type GroupActivity struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uint64    `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}

// ActivityInvite addresses one client for one activity. At most one invite
// per {activity, client} pair, enforced by the compound unique index.
type ActivityInvite struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ActivityID uint64       `gorm:"not null;uniqueIndex:idx_invite_pair" json:"activity_id"`
	ClientID   uint64       `gorm:"not null;uniqueIndex:idx_invite_pair" json:"client_id"`
	Status     InviteStatus `gorm:"size:20;not null;default:pending" json:"status"`

	Activity GroupActivity `gorm:"foreignKey:ActivityID" json:"-"`
	Client   User          `gorm:"foreignKey:ClientID" json:"-"`
}
