package domain

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
)

type NotificationDomain interface {
	Get(context.Context, *model.GetNotificationsRequest) (*model.GetNotificationsResponse, error)
}

type notificationDomain struct {
	userRepo          repository.UserRepository
	referralRepo      repository.ReferralRequestRepository
	collaborationRepo repository.CollaborationRequestRepository
}

func NewNotificationDomain(
	userRepo repository.UserRepository,
	referralRepo repository.ReferralRequestRepository,
	collaborationRepo repository.CollaborationRequestRepository,
) *notificationDomain {
	return &notificationDomain{
		userRepo:          userRepo,
		referralRepo:      referralRepo,
		collaborationRepo: collaborationRepo,
	}
}

type feedItem struct {
	notification model.Notification
	createdAt    time.Time
}

// Get builds the feed at read time. Nothing is persisted; pending referral
// and collaboration requests plus a few system messages for fresh accounts
// are merged and sorted newest first.
func (d *notificationDomain) Get(
	ctx context.Context, _ *model.GetNotificationsRequest,
) (*model.GetNotificationsResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)

	referrals, err := d.referralRepo.GetPendingByTargetUserID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pending referral requests: %v", err)
		return nil, errorx.Unknown
	}

	collaborations, err := d.collaborationRepo.GetPendingByReceiverID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pending collaboration requests: %v", err)
		return nil, errorx.Unknown
	}

	frontend := xcontext.Configs(ctx).ApiServer.FrontendEndpoint

	items := []feedItem{}
	for i := range referrals {
		items = append(items, feedItem{
			createdAt: referrals[i].CreatedAt,
			notification: model.Notification{
				ID:    fmt.Sprintf("referral_%s", referrals[i].ID),
				Type:  "referral_request",
				Title: "New Referral Request",
				Message: fmt.Sprintf("%s wants you to add the link %q to your profile",
					referrals[i].RequesterName, referrals[i].LinkTitle),
				Data: map[string]any{
					"request_id":      referrals[i].ID,
					"requester_name":  referrals[i].RequesterName,
					"requester_email": referrals[i].RequesterEmail,
					"link_title":      referrals[i].LinkTitle,
					"link_url":        referrals[i].LinkURL,
				},
				Status:    "pending",
				ActionURL: frontend + "/dashboard/referrals",
				Icon:      "link",
				CreatedAt: referrals[i].CreatedAt.Format(model.DefaultTimeLayout),
			},
		})
	}

	for i := range collaborations {
		items = append(items, feedItem{
			createdAt: collaborations[i].CreatedAt,
			notification: model.Notification{
				ID:    fmt.Sprintf("collaboration_%s", collaborations[i].ID),
				Type:  "collaboration_request",
				Title: "New Collaboration Request",
				Message: fmt.Sprintf("%s wants to collaborate with you",
					collaborations[i].SenderName),
				Data: map[string]any{
					"request_id":   collaborations[i].ID,
					"sender_name":  collaborations[i].SenderName,
					"sender_email": collaborations[i].SenderEmail,
				},
				Status:    "pending",
				ActionURL: frontend + "/dashboard/collaborations",
				Icon:      "handshake",
				CreatedAt: collaborations[i].CreatedAt.Format(model.DefaultTimeLayout),
			},
		})
	}

	systemItems, err := d.systemMessages(ctx, requestUserID)
	if err != nil {
		return nil, err
	}
	items = append(items, systemItems...)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].createdAt.After(items[j].createdAt)
	})

	notifications := []model.Notification{}
	for _, item := range items {
		notifications = append(notifications, item.notification)
	}

	return &model.GetNotificationsResponse{Notifications: notifications}, nil
}

// systemMessages only show up while the account is younger than the
// configured window. They carry fixed ids and timestamps anchored on the
// account creation time.
func (d *notificationDomain) systemMessages(
	ctx context.Context, userID string,
) ([]feedItem, error) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	window := xcontext.Configs(ctx).Notif.NewAccountWindow
	if time.Since(user.CreatedAt) >= window {
		return nil, nil
	}

	frontend := xcontext.Configs(ctx).ApiServer.FrontendEndpoint

	return []feedItem{
		{
			createdAt: user.CreatedAt,
			notification: model.Notification{
				ID:        "system_welcome",
				Type:      "system",
				Title:     "Welcome to MyLinked",
				Message:   "Add your first link and connect your social accounts to get started",
				Status:    "pending",
				ActionURL: frontend + "/dashboard/links",
				Icon:      "sparkles",
				CreatedAt: user.CreatedAt.Format(model.DefaultTimeLayout),
			},
		},
		{
			createdAt: user.CreatedAt.Add(time.Minute),
			notification: model.Notification{
				ID:        "system_spotlight",
				Type:      "system",
				Title:     "Show off your work",
				Message:   "Spotlight projects let you pin your best work on your profile",
				Status:    "pending",
				ActionURL: frontend + "/dashboard/spotlight",
				Icon:      "star",
				CreatedAt: user.CreatedAt.Add(time.Minute).Format(model.DefaultTimeLayout),
			},
		},
	}, nil
}
