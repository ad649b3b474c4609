package models

import "storage-console/core/generic"

// VDisk is a virtual disk carved out of a vpool and exposed to a host as a
// block device.
type VDisk struct {
	// GUID uniquely identifies the vdisk.
	GUID string `gorm:"column:guid;primaryKey" json:"guid"`
	// Name is the vdisk name.
	Name string `gorm:"column:name" json:"name"`
	// Description is the operator-facing description.
	Description string `gorm:"column:description" json:"description"`
	// Size is the disk size in bytes.
	Size int64 `gorm:"column:size" json:"size"`
	// DeviceName is the filename of the backing volume object.
	DeviceName string `gorm:"column:devicename" json:"devicename"`
	// VolumeID is the identifier of the volume in the storage driver.
	VolumeID string `gorm:"column:volume_id" json:"volume_id"`
	// VPoolGUID references the vpool this disk lives on.
	VPoolGUID string `gorm:"column:vpool_guid" json:"vpool_guid"`
}

// TableName sets the vdisks table name for GORM.
func (VDisk) TableName() string {
	return "vdisks"
}

// Record converts the row into a view record for the console. Volume
// presence is added by the source, which knows the storage side.
func (d VDisk) Record() generic.Record {
	return generic.Record{
		"guid":        d.GUID,
		"name":        d.Name,
		"description": d.Description,
		"size":        d.Size,
		"devicename":  d.DeviceName,
		"volume_id":   d.VolumeID,
		"vpool_guid":  d.VPoolGUID,
	}
}

// RequiredColumns lists the vdisks columns the view source depends on.
func RequiredColumns() []string {
	return []string{"guid", "name", "description", "size", "devicename", "volume_id", "vpool_guid"}
}
