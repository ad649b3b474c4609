package viewsync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storage-console/core/generic"
	"storage-console/core/observe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockSource is a simple in-memory source for tests.
type mockSource struct {
	keys      []string
	records   map[string]generic.Record
	listErr   error
	fetchErr  map[string]error
	listCalls int
}

func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) ListKeys(ctx context.Context) ([]string, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.keys, nil
}

func (m *mockSource) Fetch(ctx context.Context, key string) (generic.Record, error) {
	if err, ok := m.fetchErr[key]; ok {
		return nil, err
	}
	rec, ok := m.records[key]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func newTestSyncer(src *mockSource, ttl time.Duration) *Syncer {
	return NewSyncer(src, Config{
		KeyField: "guid",
		Editable: []string{"name", "description"},
		TTL:      ttl,
	}, zap.NewNop())
}

func TestSyncer_RefreshPopulates(t *testing.T) {
	src := &mockSource{
		keys: []string{"a", "b"},
		records: map[string]generic.Record{
			"a": {"guid": "a", "name": "pool-a", "size": int64(10)},
			"b": {"guid": "b", "name": "pool-b", "size": int64(20)},
		},
	}
	s := newTestSyncer(src, 0)

	stats, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Added: 2}, stats)

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "pool-a", records[0]["name"])

	rec, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, "pool-b", rec["name"])

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSyncer_RefreshAddsAndPrunes(t *testing.T) {
	src := &mockSource{
		keys: []string{"a", "b"},
		records: map[string]generic.Record{
			"a": {"guid": "a", "name": "pool-a"},
			"b": {"guid": "b", "name": "pool-b"},
		},
	}
	s := newTestSyncer(src, 0)
	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	// Entity a disappears, c appears.
	src.keys = []string{"b", "c"}
	src.records = map[string]generic.Record{
		"b": {"guid": "b", "name": "pool-b"},
		"c": {"guid": "c", "name": "pool-c"},
	}

	stats, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Added: 1, Removed: 1, Merged: 1}, stats)

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0]["guid"])
	assert.Equal(t, "c", records[1]["guid"])
}

func TestSyncer_EditSurvivesRefresh(t *testing.T) {
	src := &mockSource{
		keys: []string{"a"},
		records: map[string]generic.Record{
			"a": {"guid": "a", "name": "pool-a", "status": "RUNNING"},
		},
	}
	s := newTestSyncer(src, 0)
	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.ApplyEdit("a", "name", "renamed"))

	// Source still reports the old name but a new status.
	src.records["a"] = generic.Record{"guid": "a", "name": "pool-a", "status": "FAILURE"}
	_, err = s.Refresh(context.Background())
	require.NoError(t, err)

	rec, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "renamed", rec["name"])
	assert.Equal(t, "FAILURE", rec["status"])
}

func TestSyncer_EditOverwrittenWhenSourceChanges(t *testing.T) {
	src := &mockSource{
		keys: []string{"a"},
		records: map[string]generic.Record{
			"a": {"guid": "a", "name": "pool-a"},
		},
	}
	s := newTestSyncer(src, 0)
	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.ApplyEdit("a", "name", "renamed"))

	// First refresh records the rename as the new local state against the
	// unchanged source...
	_, err = s.Refresh(context.Background())
	require.NoError(t, err)

	// ...then the operator reverts, making the field clean again, so the
	// next source change flows through.
	require.NoError(t, s.ApplyEdit("a", "name", "pool-a"))
	src.records["a"] = generic.Record{"guid": "a", "name": "upstream-rename"}
	_, err = s.Refresh(context.Background())
	require.NoError(t, err)

	rec, _ := s.Get("a")
	assert.Equal(t, "upstream-rename", rec["name"])
}

func TestSyncer_ApplyEditValidation(t *testing.T) {
	src := &mockSource{
		keys:    []string{"a"},
		records: map[string]generic.Record{"a": {"guid": "a", "name": "x"}},
	}
	s := newTestSyncer(src, 0)
	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	err = s.ApplyEdit("a", "status", "HACKED")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not editable")

	err = s.ApplyEdit("nope", "name", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestSyncer_TTL(t *testing.T) {
	src := &mockSource{
		keys:    []string{"a"},
		records: map[string]generic.Record{"a": {"guid": "a"}},
	}
	s := newTestSyncer(src, time.Hour)

	require.NoError(t, s.EnsureFresh(context.Background()))
	require.NoError(t, s.EnsureFresh(context.Background()))
	assert.Equal(t, 1, src.listCalls, "second EnsureFresh within TTL must not hit the source")

	s.Invalidate()
	require.NoError(t, s.EnsureFresh(context.Background()))
	assert.Equal(t, 2, src.listCalls)
}

func TestSyncer_SourceErrors(t *testing.T) {
	t.Run("ListError", func(t *testing.T) {
		src := &mockSource{listErr: fmt.Errorf("database gone")}
		s := newTestSyncer(src, 0)
		_, err := s.Refresh(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database gone")
	})

	t.Run("FetchError", func(t *testing.T) {
		src := &mockSource{
			keys:     []string{"a"},
			fetchErr: map[string]error{"a": fmt.Errorf("object store gone")},
		}
		s := newTestSyncer(src, 0)
		_, err := s.Refresh(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "object store gone")
	})
}

func TestSyncer_NotMaterializedKeySkipped(t *testing.T) {
	src := &mockSource{
		keys: []string{"a", "pending"},
		records: map[string]generic.Record{
			"a": {"guid": "a"},
		},
	}
	s := newTestSyncer(src, 0)
	stats, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Added: 1}, stats)
	assert.Len(t, s.Records(), 1)
}

func TestSyncer_ChangeNotifications(t *testing.T) {
	src := &mockSource{
		keys:    []string{"a"},
		records: map[string]generic.Record{"a": {"guid": "a", "name": "x"}},
	}
	s := newTestSyncer(src, 0)

	var kinds []observe.ChangeKind
	s.Collection().Subscribe(func(ch observe.Change[generic.Record]) {
		kinds = append(kinds, ch.Kind)
	})

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.ApplyEdit("a", "name", "y"))

	assert.Equal(t, []observe.ChangeKind{observe.ChangeAppend, observe.ChangeReplace}, kinds)
}

func TestSyncer_SubscriberMayCallBackIntoSyncer(t *testing.T) {
	src := &mockSource{
		keys: []string{"a", "b"},
		records: map[string]generic.Record{
			"a": {"guid": "a", "name": "pool-a"},
			"b": {"guid": "b", "name": "pool-b"},
		},
	}
	s := newTestSyncer(src, 0)

	var seen int
	s.Collection().Subscribe(func(ch observe.Change[generic.Record]) {
		// Reading the syncer from inside a notification must not deadlock.
		s.Get("a")
		s.Records()
		seen++
	})

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.ApplyEdit("a", "name", "renamed"))

	// Prune b so the remove path is exercised under a subscriber too.
	src.keys = []string{"a"}
	_, err = s.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, seen, "two appends, one replace, one remove")
}
