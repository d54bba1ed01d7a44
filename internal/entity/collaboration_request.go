package entity

import (
	"database/sql"

	"github.com/mylinked/backend/pkg/enum"
)

type CollaborationStatus string

var (
	CollaborationPending  = enum.New(CollaborationStatus("pending"))
	CollaborationAccepted = enum.New(CollaborationStatus("accepted"))
	CollaborationDeclined = enum.New(CollaborationStatus("declined"))
)

type CollaborationRequest struct {
	Base

	ReceiverID string `gorm:"index"`
	Receiver   User   `gorm:"foreignKey:ReceiverID"`

	SenderName  string
	SenderEmail string
	Message     string

	// ProjectID is set when the ask is about joining an existing
	// spotlight project rather than a general collaboration.
	ProjectID sql.NullString

	Status CollaborationStatus `gorm:"default:pending"`
}

func (CollaborationRequest) TableName() string {
	return "collaboration_requests"
}
