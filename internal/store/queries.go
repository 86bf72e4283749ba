package store

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordScan inserts a scan and its results in one transaction and
// returns the new scan id. Result order is preserved via the position
// column.
func (s *Store) RecordScan(startedAt time.Time, home string, results []ScanResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO scans (started_at, home, total) VALUES (?, ?, ?)`,
		startedAt.Format(time.RFC3339), home, len(results),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}

	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan id: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO scan_results (scan_id, path, category, position) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare result insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.Exec(scanID, r.Path, r.Category, i); err != nil {
			return 0, fmt.Errorf("failed to insert result for %s: %w", r.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit scan: %w", err)
	}

	return scanID, nil
}

// ListScans returns the most recent scans, newest first.
func (s *Store) ListScans(limit int) ([]*Scan, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, home, total FROM scans ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []*Scan
	for rows.Next() {
		var sc Scan
		var startedAt string
		if err := rows.Scan(&sc.ID, &startedAt, &sc.Home, &sc.Total); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		sc.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		scans = append(scans, &sc)
	}
	return scans, rows.Err()
}

// LatestScan returns the most recent scan, or nil when none exists.
func (s *Store) LatestScan() (*Scan, error) {
	scans, err := s.ListScans(1)
	if err != nil {
		return nil, err
	}
	if len(scans) == 0 {
		return nil, nil
	}
	return scans[0], nil
}

// ScanResults returns a scan's results in classification order,
// optionally filtered to one category (empty string means all).
func (s *Store) ScanResults(scanID int64, category string) ([]ScanResult, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category == "" {
		rows, err = s.db.Query(
			`SELECT scan_id, path, category FROM scan_results WHERE scan_id = ? ORDER BY position`,
			scanID,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT scan_id, path, category FROM scan_results WHERE scan_id = ? AND category = ? ORDER BY position`,
			scanID, category,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scan results: %w", err)
	}
	defer rows.Close()

	var results []ScanResult
	for rows.Next() {
		var r ScanResult
		if err := rows.Scan(&r.ScanID, &r.Path, &r.Category); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// CategoryCounts tallies a scan's results per category.
func (s *Store) CategoryCounts(scanID int64) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT category, COUNT(*) FROM scan_results WHERE scan_id = ? GROUP BY category`,
		scanID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[category] = n
	}
	return counts, rows.Err()
}
