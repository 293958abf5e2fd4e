package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/listclean-cli/internal/clean"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSaveAndListRuns(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	summary := clean.Summary{
		TotalRecords:   100,
		RowsChanged:    40,
		FieldsChanged:  90,
		PercentChanged: 15.0,
		InvalidEmails:  3,
	}
	run, err := st.SaveRun(ctx, "export.csv", summary)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "export.csv", run.Source)

	runs, err := st.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, summary, runs[0].Summary)
}

func TestListRuns_Empty(t *testing.T) {
	st := newTestStore(t)

	runs, err := st.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestListRuns_Limit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := st.SaveRun(ctx, "export.csv", clean.Summary{TotalRecords: i})
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestMigrate_Idempotent(t *testing.T) {
	st := newTestStore(t)
	assert.NoError(t, st.Migrate(context.Background()))
}
