package vdisk

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"storage-console/core/generic"
	"storage-console/core/storage"
	"storage-console/feature/vdisk/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// VolumePrefix is the object namespace holding vdisk volume objects. A vdisk
// with devicename "disk1.raw" is backed by the object "volumes/disk1.raw".
const VolumePrefix = "volumes/"

// Source feeds the vdisk view collection from the platform database, enriched
// with volume object presence from the storage backend.
type Source struct {
	db     *gorm.DB
	client storage.Client
	bucket string

	mu      sync.RWMutex
	volumes map[string]struct{}
}

// NewSource creates a vdisk view source.
func NewSource(db *gorm.DB, client storage.Client, bucket string) *Source {
	return &Source{db: db, client: client, bucket: bucket}
}

// Name returns the source name.
func (s *Source) Name() string {
	return "vdisk"
}

// VolumeObjects lists the devicenames present in the storage backend's
// volume namespace, sorted.
func (s *Source) VolumeObjects(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    VolumePrefix,
		Recursive: true,
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		names = append(names, strings.TrimPrefix(obj.Key, VolumePrefix))
	}
	sort.Strings(names)
	return names, nil
}

// ListKeys returns the guids of all vdisks, ordered by name. It also takes a
// fresh snapshot of the volume namespace so Fetch can report presence without
// one storage call per disk.
func (s *Source) ListKeys(ctx context.Context) ([]string, error) {
	names, err := s.VolumeObjects(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	s.mu.Lock()
	s.volumes = set
	s.mu.Unlock()

	var keys []string
	err = s.db.WithContext(ctx).
		Model(&models.VDisk{}).
		Order("name").
		Pluck("guid", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Fetch loads a single vdisk row and converts it to a view record, annotated
// with whether its backing volume object exists in storage.
func (s *Source) Fetch(ctx context.Context, key string) (generic.Record, error) {
	var disk models.VDisk
	err := s.db.WithContext(ctx).Where("guid = ?", key).First(&disk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec := disk.Record()
	rec["volume_present"] = s.hasVolume(disk.DeviceName)
	return rec, nil
}

func (s *Source) hasVolume(devicename string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.volumes[devicename]
	return ok
}

// VolumeInfo describes the live state of one backing volume object.
type VolumeInfo struct {
	DeviceName   string    `json:"devicename"`
	Present      bool      `json:"present"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// VolumeStat checks one backing volume object directly against the storage
// backend, bypassing the snapshot taken on refresh. An absent object is an
// ordinary not-present result, not an error.
func (s *Source) VolumeStat(ctx context.Context, devicename string) (VolumeInfo, error) {
	info := VolumeInfo{DeviceName: devicename}

	stat, err := s.client.StatObject(ctx, s.bucket, VolumePrefix+devicename, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return info, nil
		}
		return info, err
	}

	info.Present = true
	info.Size = stat.Size
	info.LastModified = stat.LastModified
	return info, nil
}

// RemoveVolumes deletes the given volume objects from the storage backend.
// The first failed removal aborts; objects already removed stay removed.
func (s *Source) RemoveVolumes(ctx context.Context, devicenames []string) error {
	if len(devicenames) == 0 {
		return nil
	}

	objects := make(chan minio.ObjectInfo, len(devicenames))
	for _, name := range devicenames {
		objects <- minio.ObjectInfo{Key: VolumePrefix + name}
	}
	close(objects)

	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return fmt.Errorf("remove volume %s: %w", rerr.ObjectName, rerr.Err)
		}
	}
	return nil
}
