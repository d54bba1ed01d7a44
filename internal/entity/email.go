package entity

import (
	"database/sql"

	"github.com/mylinked/backend/pkg/enum"
)

type EmailTemplate struct {
	Base

	Name     string `gorm:"unique"`
	Subject  string
	HTMLBody string `gorm:"type:text"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}

type EmailStatus string

var (
	EmailQueued = enum.New(EmailStatus("queued"))
	EmailSent   = enum.New(EmailStatus("sent"))
	EmailFailed = enum.New(EmailStatus("failed"))
)

type EmailLog struct {
	Base

	UserID sql.NullString

	TemplateID string        `gorm:"index"`
	Template   EmailTemplate `gorm:"foreignKey:TemplateID"`

	Recipient string
	Status    EmailStatus `gorm:"default:queued"`
	LastError string

	SentAt sql.NullTime
}

func (EmailLog) TableName() string {
	return "email_logs"
}
