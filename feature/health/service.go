package health

import (
	"context"
	"fmt"
	"strings"

	"storage-console/core/database"
	"storage-console/core/storage"
	vdiskmodels "storage-console/feature/vdisk/models"
	vpoolmodels "storage-console/feature/vpool/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Check is the outcome of one probe.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report aggregates all probes. Status is "ok" only when every check passed.
type Report struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
}

// Service probes the console's dependencies.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new health service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{db: db, client: client, bucket: bucket, logger: logger}
}

// Check probes the database connection, the schema the view sources depend
// on and the storage bucket. It never returns an error: failures are reported
// inside the Report so the endpoint can always answer.
func (s *Service) Check(ctx context.Context) Report {
	checks := []Check{
		s.checkDatabase(ctx),
		s.checkSchema("vpools", vpoolmodels.RequiredColumns()),
		s.checkSchema("vdisks", vdiskmodels.RequiredColumns()),
		s.checkBucket(ctx),
	}

	status := "ok"
	for _, c := range checks {
		if !c.OK {
			status = "degraded"
			break
		}
	}
	return Report{Status: status, Checks: checks}
}

func (s *Service) checkDatabase(ctx context.Context) Check {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return Check{Name: "database", Detail: err.Error()}
	}
	return Check{Name: "database", OK: true}
}

func (s *Service) checkSchema(table string, required []string) Check {
	name := "schema:" + table
	missing, err := database.VerifyColumns(s.db, table, required)
	if err != nil {
		return Check{Name: name, Detail: err.Error()}
	}
	if len(missing) > 0 {
		return Check{Name: name, Detail: fmt.Sprintf("missing columns: %s", strings.Join(missing, ", "))}
	}
	return Check{Name: name, OK: true}
}

func (s *Service) checkBucket(ctx context.Context) Check {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return Check{Name: "storage", Detail: err.Error()}
	}
	if !exists {
		return Check{Name: "storage", Detail: fmt.Sprintf("bucket %q does not exist", s.bucket)}
	}
	return Check{Name: "storage", OK: true}
}
