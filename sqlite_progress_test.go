package guidepost

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/guidepost/pkg/dom"
)

// TestSQLiteProgress_DurableAcrossRestart demonstrates that tour progress
// written by one process survives a simulated restart: a fresh store over
// the same database file still sees the records.
func TestSQLiteProgress_DurableAcrossRestart(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "guidepost_progress.db")
	dsn := "file:" + dbPath + "?_journal=WAL"

	// --- Phase 1: run a tour partway and complete it.

	db1, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)

	store1, err := NewSQLiteProgressStore(db1)
	require.NoError(t, err)

	doc := dom.MustParse(`<html><body><nav class="menu"></nav></body></html>`)
	tour := New("onboarding", doc).
		Step(StepOptions{ID: "welcome", Text: Text("Hi!")}).
		Step(StepOptions{ID: "menu", AttachTo: ParseAttach(".menu right")}).
		MustBuild(
			WithTooltipFactory(NewHeadlessTooltipFactory()),
			WithProgressStore(store1),
		)

	ctx := context.Background()
	require.NoError(t, tour.Start(ctx))
	require.NoError(t, tour.Next(ctx))
	tour.Complete()
	require.NoError(t, db1.Close())

	// --- Phase 2: simulated restart with a fresh connection and store.

	db2, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	store2, err := NewSQLiteProgressStore(db2)
	require.NoError(t, err)

	seen, err := store2.Seen("onboarding", "welcome")
	require.NoError(t, err)
	require.True(t, seen, "progress should survive the restart")

	completed := true
	done, err := store2.List(ProgressFilter{Tour: "onboarding", Completed: &completed})
	require.NoError(t, err)
	require.Len(t, done, 1)
	require.Equal(t, "menu", done[0].StepID)
	require.Equal(t, tour.Run(), done[0].Run)
}
