package database

import (
	"time"
)

// Prune deletes outcomes older than retention. Zero retention keeps everything.
func (db *DB) Prune(retention time.Duration) error {
	if retention <= 0 {
		return nil
	}

	cutoff := time.Now().UTC().Add(-retention)
	if _, err := db.Exec(`DELETE FROM ping_outcomes WHERE timestamp < ?`, cutoff); err != nil {
		return err
	}

	// Vacuum to reclaim space (run occasionally)
	if time.Now().Day() == 1 { // Run on first day of month
		_, err := db.Exec("VACUUM")
		return err
	}

	return nil
}
