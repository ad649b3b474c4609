package database

import (
	"fmt"
	"sort"
	"strings"

	"storage-console/core/generic"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// Raw "SHOW COLUMNS" is used instead of GORM's migrator abstraction so the
// exact MySQL type strings come back unchanged.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	// Normalize for case-insensitive comparison
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// VerifyColumns checks that a table carries every required column and
// returns the names of the missing ones.
func VerifyColumns(db *gorm.DB, tableName string, required []string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Field
	}
	sort.Strings(names)

	var missing []string
	for _, want := range required {
		if generic.Search(names, strings.ToLower(want)) < 0 {
			missing = append(missing, want)
		}
	}
	return missing, nil
}
