package database

import (
	"database/sql"
	"time"

	"network-ping/internal/models"
)

// SaveOutcome appends an outcome to the journal
func (db *DB) SaveOutcome(rec models.OutcomeRecord) error {
	query := `
        INSERT INTO ping_outcomes (session_id, seq, timestamp, target, strategy, success, text, rtt_ms, error_kind)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	var rtt sql.NullFloat64
	if rec.RTT > 0 {
		rtt = sql.NullFloat64{Float64: rec.RTT, Valid: true}
	}

	_, err := db.Exec(query,
		rec.SessionID,
		int64(rec.Seq),
		rec.Timestamp.UTC(),
		rec.Target,
		rec.Strategy,
		rec.Success,
		rec.Text,
		rtt,
		rec.ErrorKind,
	)
	return err
}

// GetRecent retrieves outcomes recorded in the last hours, newest first
func (db *DB) GetRecent(hours int) ([]models.OutcomeRecord, error) {
	query := `
        SELECT session_id, seq, timestamp, target, strategy, success, text, rtt_ms, error_kind
        FROM ping_outcomes
        WHERE timestamp > ?
        ORDER BY timestamp DESC, id DESC
        LIMIT 10000
    `

	rows, err := db.Query(query, since(hours))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.OutcomeRecord
	for rows.Next() {
		var r models.OutcomeRecord
		var seq int64
		var text, errKind sql.NullString
		var rtt sql.NullFloat64
		err := rows.Scan(&r.SessionID, &seq, &r.Timestamp, &r.Target, &r.Strategy,
			&r.Success, &text, &rtt, &errKind)
		if err != nil {
			continue
		}
		r.Seq = uint64(seq)
		r.Text = text.String
		r.RTT = rtt.Float64
		r.ErrorKind = errKind.String
		results = append(results, r)
	}

	return results, rows.Err()
}

// GetStats retrieves per-target aggregated statistics
func (db *DB) GetStats(hours int) ([]models.Stats, error) {
	query := `
        SELECT
            target,
            COUNT(*) as total,
            SUM(CASE WHEN success THEN 1 ELSE 0 END) as successful,
            AVG(rtt_ms) as avg_rtt,
            MAX(rtt_ms) as max_rtt,
            MIN(rtt_ms) as min_rtt,
            ROUND((SUM(CASE WHEN NOT success THEN 1 ELSE 0 END) * 100.0 / COUNT(*)), 2) as failure_rate
        FROM ping_outcomes
        WHERE timestamp > ?
        GROUP BY target
        ORDER BY target
    `

	rows, err := db.Query(query, since(hours))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.Stats
	for rows.Next() {
		var s models.Stats
		var avgRTT, maxRTT, minRTT sql.NullFloat64
		err := rows.Scan(&s.Target, &s.Total, &s.Successful,
			&avgRTT, &maxRTT, &minRTT, &s.FailureRate)
		if err != nil {
			continue
		}
		s.AvgRTT = avgRTT.Float64
		s.MaxRTT = maxRTT.Float64
		s.MinRTT = minRTT.Float64
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetLatencySeries returns timestamped RTT samples per target, oldest first
func (db *DB) GetLatencySeries(hours int) (map[string][]models.OutcomeRecord, error) {
	query := `
        SELECT timestamp, target, rtt_ms
        FROM ping_outcomes
        WHERE rtt_ms IS NOT NULL
        AND timestamp > ?
        ORDER BY timestamp
    `

	rows, err := db.Query(query, since(hours))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := make(map[string][]models.OutcomeRecord)
	for rows.Next() {
		var r models.OutcomeRecord
		if err := rows.Scan(&r.Timestamp, &r.Target, &r.RTT); err != nil {
			continue
		}
		r.Success = true
		series[r.Target] = append(series[r.Target], r)
	}

	return series, rows.Err()
}

func since(hours int) time.Time {
	return time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
}
