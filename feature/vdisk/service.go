package vdisk

import (
	"context"
	"fmt"
	"sort"
	"time"

	"storage-console/core/generic"
	"storage-console/core/storage"
	"storage-console/core/utils"
	"storage-console/core/viewsync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// editableFields lists the vdisk fields operators may change from the console.
var editableFields = []string{"name", "description"}

// Service handles vdisk view operations.
type Service struct {
	logger *zap.Logger
	source *Source
	syncer *viewsync.Syncer
}

// NewService creates a new vdisk service backed by the platform database and
// the storage backend.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger, ttl time.Duration) *Service {
	source := NewSource(db, client, bucket)
	syncer := viewsync.NewSyncer(source, viewsync.Config{
		KeyField: "guid",
		Editable: editableFields,
		TTL:      ttl,
	}, logger)
	return &Service{logger: logger, source: source, syncer: syncer}
}

// List returns the vdisk view records in display order.
func (s *Service) List(ctx context.Context) ([]generic.Record, error) {
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return nil, err
	}
	return s.syncer.Records(), nil
}

// Get returns the view record for one vdisk, or nil when the guid is unknown.
func (s *Service) Get(ctx context.Context, guid string) (generic.Record, error) {
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return nil, err
	}
	rec, ok := s.syncer.Get(guid)
	if !ok {
		return nil, nil
	}
	return rec, nil
}

// Refresh forces a resync with the database and storage backend.
func (s *Service) Refresh(ctx context.Context) (viewsync.Stats, error) {
	return s.syncer.Refresh(ctx)
}

// Edit applies operator edits to the view record for guid.
func (s *Service) Edit(ctx context.Context, guid string, edits map[string]any) error {
	if len(edits) == 0 {
		return fmt.Errorf("no fields to edit")
	}
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return err
	}
	for field, value := range edits {
		if err := s.syncer.ApplyEdit(guid, field, utils.ToString(value)); err != nil {
			return err
		}
	}
	return nil
}

// OnVPool returns all vdisks living on the given vpool. The records are
// sorted by vpool guid and the run is located with a first/last bound search.
func (s *Service) OnVPool(ctx context.Context, vpoolGUID string) ([]generic.Record, error) {
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return nil, err
	}

	records := s.syncer.Records()
	sort.Slice(records, func(i, j int) bool {
		return vpoolOf(records[i]) < vpoolOf(records[j])
	})

	lo := generic.SearchFirstBy(records, vpoolGUID, vpoolOf)
	if lo < 0 {
		return []generic.Record{}, nil
	}
	hi := generic.SearchLastBy(records, vpoolGUID, vpoolOf)
	return records[lo : hi+1], nil
}

// VolumeInfo checks the backing volume object for one vdisk directly against
// the storage backend. A nil result means the guid is unknown.
func (s *Service) VolumeInfo(ctx context.Context, guid string) (*VolumeInfo, error) {
	rec, err := s.Get(ctx, guid)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	info, err := s.source.VolumeStat(ctx, utils.ToString(rec["devicename"]))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// PurgeOrphans deletes the orphan volume objects from storage and returns
// the devicenames it removed. The view is invalidated so presence flags are
// re-evaluated on the next request.
func (s *Service) PurgeOrphans(ctx context.Context) ([]string, error) {
	orphans, err := s.Orphans(ctx)
	if err != nil {
		return nil, err
	}
	if len(orphans) == 0 {
		return orphans, nil
	}

	if err := s.source.RemoveVolumes(ctx, orphans); err != nil {
		return nil, err
	}
	s.syncer.Invalidate()
	s.logger.Info("Purged orphan volume objects", zap.Int("count", len(orphans)))
	return orphans, nil
}

// Orphans returns the volume objects present in storage that no vdisk row
// references. These are candidates for cleanup after failed deletes.
func (s *Service) Orphans(ctx context.Context) ([]string, error) {
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return nil, err
	}

	known := make(map[string]struct{})
	for _, rec := range s.syncer.Records() {
		known[utils.ToString(rec["devicename"])] = struct{}{}
	}

	names, err := s.source.VolumeObjects(ctx)
	if err != nil {
		return nil, err
	}

	orphans := []string{}
	for _, name := range names {
		if _, ok := known[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	return orphans, nil
}

func vpoolOf(rec generic.Record) string {
	return utils.ToString(rec["vpool_guid"])
}
