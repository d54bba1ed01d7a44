package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
)

// SampleUser creates a user row with randomized identity fields. Non-zero
// fields of init overwrite the sample before it is persisted.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	sample := &entity.User{
		Base:        entity.Base{ID: uuid.NewString()},
		Username:    uuid.NewString(),
		Email:       uuid.NewString() + "@example.com",
		DisplayName: "Sample User",
		Role:        entity.UserRole,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleLink(ctx context.Context, init *entity.Link) (entity.Link, error) {
	sample := &entity.Link{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: uuid.NewString(),
		Title:  uuid.NewString(),
		URL:    "https://example.com/" + uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleReferralRequest(
	ctx context.Context, init *entity.ReferralRequest,
) (entity.ReferralRequest, error) {
	sample := &entity.ReferralRequest{
		Base:           entity.Base{ID: uuid.NewString()},
		TargetUserID:   uuid.NewString(),
		RequesterName:  "Sample Requester",
		RequesterEmail: uuid.NewString() + "@example.com",
		LinkTitle:      uuid.NewString(),
		LinkURL:        "https://example.com/" + uuid.NewString(),
		Status:         entity.ReferralPending,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleCollaborationRequest(
	ctx context.Context, init *entity.CollaborationRequest,
) (entity.CollaborationRequest, error) {
	sample := &entity.CollaborationRequest{
		Base:        entity.Base{ID: uuid.NewString()},
		ReceiverID:  uuid.NewString(),
		SenderName:  "Sample Sender",
		SenderEmail: uuid.NewString() + "@example.com",
		Message:     "Let's work together",
		Status:      entity.CollaborationPending,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleSpotlightProject(
	ctx context.Context, init *entity.SpotlightProject,
) (entity.SpotlightProject, error) {
	sample := &entity.SpotlightProject{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      uuid.NewString(),
		Title:       uuid.NewString(),
		Description: "A sample project",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleOAuthState(
	ctx context.Context, init *entity.OAuthState,
) (entity.OAuthState, error) {
	sample := &entity.OAuthState{
		State:     uuid.NewString(),
		UserID:    uuid.NewString(),
		Platform:  "github",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
