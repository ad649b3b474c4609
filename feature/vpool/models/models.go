package models

import "storage-console/core/generic"

// VPool statuses mirror the platform's vpool lifecycle.
const (
	StatusInstalling = "INSTALLING"
	StatusExtending  = "EXTENDING"
	StatusRunning    = "RUNNING"
	StatusShrinking  = "SHRINKING"
	StatusDeleting   = "DELETING"
	StatusFailure    = "FAILURE"
)

// VPool is a virtual storage pool: a filesystem backed by a storage backend,
// on which vdisks are created.
type VPool struct {
	// GUID uniquely identifies the vpool.
	GUID string `gorm:"column:guid;primaryKey" json:"guid"`
	// Name is the vpool name.
	Name string `gorm:"column:name" json:"name"`
	// Size is the pool size in bytes, zero when not applicable.
	Size int64 `gorm:"column:size" json:"size"`
	// Status is the lifecycle status (see Status constants).
	Status string `gorm:"column:status" json:"status"`
	// Connection points at the storage backend (IP, URL, zone, ...).
	Connection string `gorm:"column:connection" json:"connection"`
	// Login is the username for the storage backend.
	Login string `gorm:"column:login" json:"login"`
}

// TableName sets the vpools table name for GORM.
func (VPool) TableName() string {
	return "vpools"
}

// Record converts the row into a view record for the console.
func (p VPool) Record() generic.Record {
	return generic.Record{
		"guid":       p.GUID,
		"name":       p.Name,
		"size":       p.Size,
		"status":     p.Status,
		"connection": p.Connection,
		"login":      p.Login,
	}
}

// RequiredColumns lists the vpools columns the view source depends on.
func RequiredColumns() []string {
	return []string{"guid", "name", "size", "status", "connection", "login"}
}
