package entity

import "github.com/mylinked/backend/pkg/enum"

type ReferralStatus string

var (
	ReferralPending  = enum.New(ReferralStatus("pending"))
	ReferralApproved = enum.New(ReferralStatus("approved"))
	ReferralRejected = enum.New(ReferralStatus("rejected"))
)

// ReferralRequest is an inbound ask to get a link added to someone's
// profile. Status only ever moves away from pending.
type ReferralRequest struct {
	Base

	TargetUserID string `gorm:"index"`
	TargetUser   User   `gorm:"foreignKey:TargetUserID"`

	RequesterName  string
	RequesterEmail string

	LinkTitle   string
	LinkURL     string
	Description string

	Status ReferralStatus `gorm:"default:pending"`
}

func (ReferralRequest) TableName() string {
	return "referral_requests"
}
