// Package model contains the GORM-specific structs mirroring the database schema.
package model

import (
	"time"
)

// StockEntryModel is the GORM-specific struct for the 'stock_entries' table.
// One row per blood group; the check constraint backs the non-negativity
// guarantee even if a write bypasses the conditional update.
type StockEntryModel struct {
	BloodGroup string `gorm:"type:varchar(3);primary_key"`
	Units      int    `gorm:"not null;default:0;check:units >= 0"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockEntryModel) TableName() string {
	return "stock_entries"
}
