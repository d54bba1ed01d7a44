package domain

import (
	"testing"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newSpotlightDomainForTest() SpotlightDomain {
	return NewSpotlightDomain(
		repository.NewSpotlightRepository(),
		repository.NewUserRepository(),
	)
}

func Test_spotlightDomain_CreateProject_addsOwnerContributor(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newSpotlightDomainForTest()
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := domain.CreateProject(ctx, &model.CreateSpotlightProjectRequest{
		Title: "Side Project",
		URL:   "https://side.example.com",
	})
	require.NoError(t, err)

	contributors, err := repository.NewSpotlightRepository().GetContributors(ctx, resp.ID)
	require.NoError(t, err)
	require.Len(t, contributors, 1)
	require.Equal(t, user.ID, contributors[0].UserID)
	require.Equal(t, entity.ContributorOwner, contributors[0].Role)

	_, err = domain.CreateProject(ctx, &model.CreateSpotlightProjectRequest{})
	require.Error(t, err)
}

func Test_spotlightDomain_Contributors(t *testing.T) {
	ctx := testutil.MockContext()
	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	editor, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newSpotlightDomainForTest()
	ownerCtx := xcontext.WithRequestUserID(ctx, owner.ID)

	project, err := domain.CreateProject(ownerCtx, &model.CreateSpotlightProjectRequest{
		Title: "Side Project",
	})
	require.NoError(t, err)

	_, err = domain.AddContributor(ownerCtx, &model.AddSpotlightContributorRequest{
		ProjectID: project.ID,
		UserID:    editor.ID,
		Role:      "editor",
	})
	require.NoError(t, err)

	// A second owner can never be added.
	_, err = domain.AddContributor(ownerCtx, &model.AddSpotlightContributorRequest{
		ProjectID: project.ID,
		UserID:    editor.ID,
		Role:      "owner",
	})
	require.Error(t, err)

	// Only the owner manages contributors.
	editorCtx := xcontext.WithRequestUserID(ctx, editor.ID)
	_, err = domain.AddContributor(editorCtx, &model.AddSpotlightContributorRequest{
		ProjectID: project.ID,
		UserID:    editor.ID,
		Role:      "viewer",
	})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	// Editors may update the project itself.
	_, err = domain.UpdateProject(editorCtx, &model.UpdateSpotlightProjectRequest{
		ID:    project.ID,
		Title: "Renamed",
	})
	require.NoError(t, err)

	// The owner cannot be removed.
	_, err = domain.RemoveContributor(ownerCtx, &model.RemoveSpotlightContributorRequest{
		ProjectID: project.ID,
		UserID:    owner.ID,
	})
	require.Error(t, err)

	_, err = domain.RemoveContributor(ownerCtx, &model.RemoveSpotlightContributorRequest{
		ProjectID: project.ID,
		UserID:    editor.ID,
	})
	require.NoError(t, err)

	// Without the contributor row the editor loses edit access.
	_, err = domain.UpdateProject(editorCtx, &model.UpdateSpotlightProjectRequest{
		ID:    project.ID,
		Title: "Renamed again",
	})
	require.Error(t, err)
}

func Test_spotlightDomain_GetProjects_pinnedFirst(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	_, err = testutil.SampleSpotlightProject(ctx, &entity.SpotlightProject{
		UserID: user.ID,
		Title:  "Older",
	})
	require.NoError(t, err)

	pinned, err := testutil.SampleSpotlightProject(ctx, &entity.SpotlightProject{
		UserID:   user.ID,
		Title:    "Pinned",
		IsPinned: true,
	})
	require.NoError(t, err)

	domain := newSpotlightDomainForTest()

	// Public read by user id, no authentication.
	resp, err := domain.GetProjects(ctx, &model.GetSpotlightProjectsRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 2)
	require.Equal(t, pinned.ID, resp.Projects[0].ID)

	_, err = domain.ViewProject(ctx, &model.ViewSpotlightProjectRequest{ID: pinned.ID})
	require.NoError(t, err)

	resp, err = domain.GetProjects(ctx, &model.GetSpotlightProjectsRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.Projects[0].ViewCount)
}
