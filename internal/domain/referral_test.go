package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newReferralDomainForTest() ReferralDomain {
	return NewReferralDomain(
		repository.NewReferralRequestRepository(),
		repository.NewUserRepository(),
		repository.NewLinkRepository(),
		repository.NewEmailRepository(),
	)
}

func Test_referralDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newReferralDomainForTest()

	// The endpoint is public, no request user id needed.
	resp, err := domain.Create(ctx, &model.CreateReferralRequest{
		TargetUsername: user.Username,
		RequesterName:  "Dana",
		RequesterEmail: "dana@example.com",
		LinkTitle:      "My Portfolio",
		LinkURL:        "https://portfolio.example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	_, err = domain.Create(ctx, &model.CreateReferralRequest{
		TargetUsername: "nobody",
		RequesterName:  "Dana",
		RequesterEmail: "dana@example.com",
		LinkTitle:      "My Portfolio",
		LinkURL:        "https://portfolio.example.com",
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_referralDomain_Review_approveCreatesLink(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	_, err = testutil.SampleLink(ctx, &entity.Link{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: user.ID,
	})
	require.NoError(t, err)

	request, err := testutil.SampleReferralRequest(ctx, &entity.ReferralRequest{
		TargetUserID: user.ID,
		LinkTitle:    "Suggested",
		LinkURL:      "https://suggested.example.com",
	})
	require.NoError(t, err)

	domain := newReferralDomainForTest()

	// Only the target can review.
	other, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	_, err = domain.Review(xcontext.WithRequestUserID(ctx, other.ID),
		&model.ReviewReferralRequest{ID: request.ID, Approved: true})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	_, err = domain.Review(ctx, &model.ReviewReferralRequest{ID: request.ID, Approved: true})
	require.NoError(t, err)

	// The suggested link landed at the tail of the existing list.
	links, err := repository.NewLinkRepository().GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	require.Equal(t, "Suggested", links[1].Title)
	require.Equal(t, 1, links[1].DisplayOrder)

	// A reviewed request cannot be reviewed again.
	_, err = domain.Review(ctx, &model.ReviewReferralRequest{ID: request.ID, Approved: false})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_referralDomain_Get_filtersByStatus(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	_, err = testutil.SampleReferralRequest(ctx, &entity.ReferralRequest{TargetUserID: user.ID})
	require.NoError(t, err)
	_, err = testutil.SampleReferralRequest(ctx, &entity.ReferralRequest{
		TargetUserID: user.ID,
		Status:       entity.ReferralRejected,
	})
	require.NoError(t, err)

	domain := newReferralDomainForTest()
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := domain.Get(ctx, &model.GetReferralsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Requests, 2)

	resp, err = domain.Get(ctx, &model.GetReferralsRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, resp.Requests, 1)
	require.Equal(t, "pending", resp.Requests[0].Status)

	_, err = domain.Get(ctx, &model.GetReferralsRequest{Status: "bogus"})
	require.Error(t, err)
}
