// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure the MySQL connection to the
// platform model database (vpools, vdisks) based on the application's
// configuration.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// health feature: retrieving table columns and verifying the columns the
// console's view sources rely on are present.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyColumns(db, "vpools", []string{"guid", "name"})
package database
