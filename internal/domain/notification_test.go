package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newNotificationDomainForTest() NotificationDomain {
	return NewNotificationDomain(
		repository.NewUserRepository(),
		repository.NewReferralRequestRepository(),
		repository.NewCollaborationRequestRepository(),
	)
}

func Test_notificationDomain_Get_onlyPendingRequests(t *testing.T) {
	ctx := testutil.MockContext()

	// The account is old enough that no system messages appear.
	user, err := testutil.SampleUser(ctx, &entity.User{
		Base: entity.Base{ID: uuid.NewString(), CreatedAt: time.Now().Add(-30 * 24 * time.Hour)},
	})
	require.NoError(t, err)

	pending, err := testutil.SampleReferralRequest(ctx, &entity.ReferralRequest{
		TargetUserID:  user.ID,
		RequesterName: "Dana",
		LinkTitle:     "My Portfolio",
	})
	require.NoError(t, err)

	_, err = testutil.SampleReferralRequest(ctx, &entity.ReferralRequest{
		TargetUserID: user.ID,
		Status:       entity.ReferralRejected,
	})
	require.NoError(t, err)

	_, err = testutil.SampleCollaborationRequest(ctx, &entity.CollaborationRequest{
		ReceiverID: user.ID,
		SenderName: "Erin",
	})
	require.NoError(t, err)

	_, err = testutil.SampleCollaborationRequest(ctx, &entity.CollaborationRequest{
		ReceiverID: user.ID,
		Status:     entity.CollaborationDeclined,
	})
	require.NoError(t, err)

	domain := newNotificationDomainForTest()
	resp, err := domain.Get(xcontext.WithRequestUserID(ctx, user.ID), &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)

	types := map[string]model.Notification{}
	for _, n := range resp.Notifications {
		types[n.Type] = n
	}

	require.Contains(t, types["referral_request"].Message, "Dana")
	require.Contains(t, types["referral_request"].Message, `"My Portfolio"`)
	require.Equal(t, "referral_"+pending.ID, types["referral_request"].ID)
	require.Contains(t, types["collaboration_request"].Message, "Erin")
}

func Test_notificationDomain_Get_payloadFields(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, &entity.User{
		Base: entity.Base{ID: uuid.NewString(), CreatedAt: time.Now().Add(-30 * 24 * time.Hour)},
	})
	require.NoError(t, err)

	referral, err := testutil.SampleReferralRequest(ctx, &entity.ReferralRequest{
		TargetUserID:   user.ID,
		RequesterName:  "Dana",
		RequesterEmail: "dana@example.com",
		LinkTitle:      "My Portfolio",
		LinkURL:        "https://example.com/portfolio",
	})
	require.NoError(t, err)

	collab, err := testutil.SampleCollaborationRequest(ctx, &entity.CollaborationRequest{
		ReceiverID:  user.ID,
		SenderName:  "Erin",
		SenderEmail: "erin@example.com",
	})
	require.NoError(t, err)

	domain := newNotificationDomainForTest()
	resp, err := domain.Get(xcontext.WithRequestUserID(ctx, user.ID), &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)

	types := map[string]model.Notification{}
	for _, n := range resp.Notifications {
		types[n.Type] = n
	}

	frontend := xcontext.Configs(ctx).ApiServer.FrontendEndpoint

	referralNotif := types["referral_request"]
	require.Equal(t, "pending", referralNotif.Status)
	require.Equal(t, frontend+"/dashboard/referrals", referralNotif.ActionURL)
	require.Equal(t, "link", referralNotif.Icon)
	require.Equal(t, referral.ID, referralNotif.Data["request_id"])
	require.Equal(t, "Dana", referralNotif.Data["requester_name"])
	require.Equal(t, "dana@example.com", referralNotif.Data["requester_email"])
	require.Equal(t, "My Portfolio", referralNotif.Data["link_title"])
	require.Equal(t, "https://example.com/portfolio", referralNotif.Data["link_url"])

	collabNotif := types["collaboration_request"]
	require.Equal(t, "pending", collabNotif.Status)
	require.Equal(t, frontend+"/dashboard/collaborations", collabNotif.ActionURL)
	require.Equal(t, collab.ID, collabNotif.Data["request_id"])
	require.Equal(t, "Erin", collabNotif.Data["sender_name"])
	require.Equal(t, "erin@example.com", collabNotif.Data["sender_email"])
}

func Test_notificationDomain_Get_systemMessagesForFreshAccounts(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newNotificationDomainForTest()
	resp, err := domain.Get(xcontext.WithRequestUserID(ctx, user.ID), &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)

	// Newest first, so the spotlight tip anchored a minute after account
	// creation precedes the welcome.
	require.Equal(t, "system_spotlight", resp.Notifications[0].ID)
	require.Equal(t, "system_welcome", resp.Notifications[1].ID)

	frontend := xcontext.Configs(ctx).ApiServer.FrontendEndpoint
	require.Equal(t, "pending", resp.Notifications[1].Status)
	require.Equal(t, frontend+"/dashboard/links", resp.Notifications[1].ActionURL)
}
