package viewsync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"storage-console/core/generic"
	"storage-console/core/observe"
	"storage-console/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Config bundles the per-feature sync parameters.
type Config struct {
	// KeyField is the record field holding the entity key. Defaults to "guid".
	KeyField string

	// Editable lists the fields operators may change through ApplyEdit.
	Editable []string

	// TTL is the freshness window for EnsureFresh. Zero disables the
	// window: every EnsureFresh hits the source.
	TTL time.Duration
}

// ErrUnknownEntity is returned by ApplyEdit when the key is absent from the
// view, so callers can distinguish a missing entity from a rejected field.
var ErrUnknownEntity = errors.New("unknown entity")

// Stats summarizes what a refresh changed.
type Stats struct {
	// Added counts entries appended to the collection.
	Added int `json:"added"`
	// Removed counts entries pruned from the collection.
	Removed int `json:"removed"`
	// Merged counts retained entries whose records were merged.
	Merged int `json:"merged"`
}

// Syncer keeps one observable view collection synchronized with a Source.
type Syncer struct {
	source Source
	cfg    Config
	logger *zap.Logger

	collection *observe.Collection[generic.Record]

	mu        sync.Mutex
	originals map[string]generic.Record
	sorted    []generic.Record
	refreshed time.Time
	sf        singleflight.Group
}

// NewSyncer creates a syncer for the given source. The editable field list
// is sorted once so edit validation can binary-search it.
func NewSyncer(source Source, cfg Config, logger *zap.Logger) *Syncer {
	if cfg.KeyField == "" {
		cfg.KeyField = "guid"
	}
	editable := make([]string, len(cfg.Editable))
	copy(editable, cfg.Editable)
	sort.Strings(editable)
	cfg.Editable = editable

	return &Syncer{
		source:     source,
		cfg:        cfg,
		logger:     logger,
		collection: observe.NewCollection[generic.Record](),
		originals:  make(map[string]generic.Record),
	}
}

// Collection exposes the underlying observable collection, mainly so
// callers can subscribe to change notifications. Subscribers run while the
// syncer's own lock is not held, so they may call back into the syncer
// (Get, Records, ApplyEdit) safely.
func (s *Syncer) Collection() *observe.Collection[generic.Record] {
	return s.collection
}

// EnsureFresh refreshes the view state when it is older than the configured
// TTL. Concurrent callers share a single refresh.
func (s *Syncer) EnsureFresh(ctx context.Context) error {
	if s.isFresh() {
		return nil
	}
	_, err := s.doRefresh(ctx, false)
	return err
}

// Refresh forces a refresh regardless of TTL and reports what changed.
// Concurrent callers still share a single pass.
func (s *Syncer) Refresh(ctx context.Context) (Stats, error) {
	return s.doRefresh(ctx, true)
}

// Invalidate forces the next EnsureFresh to hit the source.
func (s *Syncer) Invalidate() {
	s.mu.Lock()
	s.refreshed = time.Time{}
	s.mu.Unlock()
}

// Records returns the current view records in collection order. The slice
// is a copy; the records themselves are the live ones.
func (s *Syncer) Records() []generic.Record {
	return s.collection.Items()
}

// Get looks up the view record for an entity key using the sorted index
// built on the last refresh. ok is false when the key is unknown.
func (s *Syncer) Get(key string) (generic.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := generic.SearchBy(s.sorted, key, s.keyOf)
	if i < 0 {
		return nil, false
	}
	return s.sorted[i], true
}

// ApplyEdit sets an editable field on the live record for key. The edit
// dirties the field: subsequent refreshes leave it alone until the backing
// entity itself changes. Subscribers are notified with a replace change,
// after the syncer's own lock is released.
func (s *Syncer) ApplyEdit(key, field string, value any) error {
	if generic.Search(s.cfg.Editable, field) < 0 {
		return fmt.Errorf("field %q is not editable", field)
	}

	s.mu.Lock()
	i := generic.SearchBy(s.sorted, key, s.keyOf)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownEntity, key)
	}
	rec := s.sorted[i]
	rec[field] = value
	s.mu.Unlock()

	// The record is the live one the collection holds; Replace only makes
	// the change observable to subscribers.
	if idx := s.collection.Find(func(r generic.Record) bool { return s.keyOf(r) == key }); idx >= 0 {
		s.collection.Replace(idx, rec)
	}

	s.logger.Debug("applied view edit",
		zap.String("source", s.source.Name()),
		zap.String("key", key),
		zap.String("field", field),
	)
	return nil
}

func (s *Syncer) isFresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.TTL > 0 && !s.refreshed.IsZero() && time.Since(s.refreshed) < s.cfg.TTL
}

// doRefresh runs one refresh pass behind singleflight. With force unset the
// freshness window is re-checked inside the flight, so a caller that queued
// up behind a just-finished refresh does not trigger another one.
func (s *Syncer) doRefresh(ctx context.Context, force bool) (Stats, error) {
	v, err, _ := s.sf.Do(s.source.Name(), func() (any, error) {
		if !force && s.isFresh() {
			return Stats{}, nil
		}
		return s.refresh(ctx)
	})
	if err != nil {
		return Stats{}, err
	}
	return v.(Stats), nil
}

func (s *Syncer) refresh(ctx context.Context) (Stats, error) {
	keys, err := s.source.ListKeys(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list %s keys: %w", s.source.Name(), err)
	}

	incoming := make(map[string]generic.Record, len(keys))
	for _, k := range keys {
		rec, err := s.source.Fetch(ctx, k)
		if err != nil {
			return Stats{}, fmt.Errorf("fetch %s %s: %w", s.source.Name(), k, err)
		}
		if rec != nil {
			incoming[k] = rec
		}
	}

	before := make(map[string]struct{}, s.collection.Len())
	for _, rec := range s.collection.Items() {
		before[s.keyOf(rec)] = struct{}{}
	}

	// Cross-fill outside the syncer lock: the collection serializes its own
	// mutations, and appends/removals notify subscribers synchronously —
	// they must be free to call back into the syncer.
	loader := func(k string) (generic.Record, bool, error) {
		rec, ok := incoming[k]
		if !ok {
			return nil, false, nil
		}
		return cloneRecord(rec), true, nil
	}
	if err := generic.CrossFill(keys, s.collection, loader, s.keyOf, true); err != nil {
		return Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var stats Stats
	for k, rec := range incoming {
		if _, existed := before[k]; !existed {
			s.originals[k] = cloneRecord(rec)
			stats.Added++
			continue
		}
		idx := s.collection.Find(func(r generic.Record) bool { return s.keyOf(r) == k })
		if idx < 0 {
			continue
		}
		live := s.collection.At(idx)
		original := s.originals[k]
		if original == nil {
			original = generic.Record{}
		}
		generic.Merge(original, rec, live, fieldUnion(original, rec, live))
		s.originals[k] = cloneRecord(rec)
		stats.Merged++
	}

	// Drop snapshots of pruned entries.
	wanted := make(map[string]struct{}, len(incoming))
	for k := range incoming {
		wanted[k] = struct{}{}
	}
	for k := range s.originals {
		if _, keep := wanted[k]; !keep {
			delete(s.originals, k)
			stats.Removed++
		}
	}

	s.rebuildIndex()
	s.refreshed = time.Now()

	s.logger.Info("view state refreshed",
		zap.String("source", s.source.Name()),
		zap.Int("entries", s.collection.Len()),
		zap.Int("added", stats.Added),
		zap.Int("removed", stats.Removed),
		zap.Int("merged", stats.Merged),
	)
	return stats, nil
}

// rebuildIndex resorts the key index used by Get and ApplyEdit. Records are
// shared with the collection, not copied.
func (s *Syncer) rebuildIndex() {
	s.sorted = s.collection.Items()
	sort.Slice(s.sorted, func(i, j int) bool {
		return s.keyOf(s.sorted[i]) < s.keyOf(s.sorted[j])
	})
}

func (s *Syncer) keyOf(rec generic.Record) string {
	return utils.ToString(rec[s.cfg.KeyField])
}

func fieldUnion(records ...generic.Record) []string {
	seen := make(map[string]struct{})
	var fields []string
	for _, rec := range records {
		for name := range rec {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}

func cloneRecord(rec generic.Record) generic.Record {
	out := make(generic.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
