package vpool

import (
	"context"
	"fmt"
	"sort"
	"time"

	"storage-console/core/generic"
	"storage-console/core/utils"
	"storage-console/core/viewsync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// editableFields lists the vpool fields operators may change from the console.
var editableFields = []string{"name", "connection", "login"}

// Service handles vpool view operations.
type Service struct {
	logger *zap.Logger
	syncer *viewsync.Syncer
}

// NewService creates a new vpool service backed by the platform database.
func NewService(db *gorm.DB, logger *zap.Logger, ttl time.Duration) *Service {
	syncer := viewsync.NewSyncer(NewSource(db), viewsync.Config{
		KeyField: "guid",
		Editable: editableFields,
		TTL:      ttl,
	}, logger)
	return &Service{logger: logger, syncer: syncer}
}

// List returns the vpool view records in display order.
func (s *Service) List(ctx context.Context) ([]generic.Record, error) {
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return nil, err
	}
	return s.syncer.Records(), nil
}

// Get returns the view record for one vpool, or nil when the guid is unknown.
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

// Refresh forces a resync with the database and reports what changed.
func (s *Service) Refresh(ctx context.Context) (viewsync.Stats, error) {
	return s.syncer.Refresh(ctx)
}

// Edit applies operator edits to the view record for guid. Every field must
// be editable; the first rejected field aborts the call.
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

// WithStatus returns all vpools in the given lifecycle status. The records
// are sorted by status and the run is located with a first/last bound search.
func (s *Service) WithStatus(ctx context.Context, status string) ([]generic.Record, error) {
	if err := s.syncer.EnsureFresh(ctx); err != nil {
		return nil, err
	}

	records := s.syncer.Records()
	sort.Slice(records, func(i, j int) bool {
		return statusOf(records[i]) < statusOf(records[j])
	})

	lo := generic.SearchFirstBy(records, status, statusOf)
	if lo < 0 {
		return []generic.Record{}, nil
	}
	hi := generic.SearchLastBy(records, status, statusOf)
	return records[lo : hi+1], nil
}

func statusOf(rec generic.Record) string {
	return utils.ToString(rec["status"])
}
