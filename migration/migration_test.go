package migration

import (
	"testing"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestMigrate_isIdempotent(t *testing.T) {
	ctx := testutil.MockContext()

	require.NoError(t, Migrate(ctx))
	require.NoError(t, Migrate(ctx))

	var count int64
	err := xcontext.DB(ctx).Model(&entity.Migration{}).Count(&count).Error
	require.NoError(t, err)
	require.Equal(t, int64(len(migrators)), count)

	// The welcome template seeded by 0001 exists exactly once.
	var templates []entity.EmailTemplate
	err = xcontext.DB(ctx).Where("name=?", "welcome").Find(&templates).Error
	require.NoError(t, err)
	require.Len(t, templates, 1)
}
