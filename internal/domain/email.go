package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const WelcomeTemplate = "welcome"

type EmailDomain interface {
	UpsertTemplate(context.Context, *model.UpsertEmailTemplateRequest) (*model.UpsertEmailTemplateResponse, error)
}

type emailDomain struct {
	emailRepo repository.EmailRepository
	userRepo  repository.UserRepository
}

func NewEmailDomain(
	emailRepo repository.EmailRepository,
	userRepo repository.UserRepository,
) *emailDomain {
	return &emailDomain{
		emailRepo: emailRepo,
		userRepo:  userRepo,
	}
}

func (d *emailDomain) UpsertTemplate(
	ctx context.Context, req *model.UpsertEmailTemplateRequest,
) (*model.UpsertEmailTemplateResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if user.Role != entity.AdminRole {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" || req.Subject == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty name or subject")
	}

	err = d.emailRepo.UpsertTemplate(ctx, &entity.EmailTemplate{
		Base:     entity.Base{ID: uuid.NewString()},
		Name:     req.Name,
		Subject:  req.Subject,
		HTMLBody: req.HTMLBody,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert email template: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpsertEmailTemplateResponse{}, nil
}

// QueueEmail enqueues one templated email for the cron sender. A missing
// template is not an error, the message is just skipped.
func QueueEmail(
	ctx context.Context,
	emailRepo repository.EmailRepository,
	userID, recipient, templateName string,
) {
	template, err := emailRepo.GetTemplateByName(ctx, templateName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Cannot get email template %s: %v", templateName, err)
		}
		return
	}

	logUserID := sql.NullString{}
	if userID != "" {
		logUserID = sql.NullString{Valid: true, String: userID}
	}

	err = emailRepo.CreateLog(ctx, &entity.EmailLog{
		Base:       entity.Base{ID: uuid.NewString()},
		UserID:     logUserID,
		TemplateID: template.ID,
		Recipient:  recipient,
		Status:     entity.EmailQueued,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot queue email: %v", err)
	}
}
