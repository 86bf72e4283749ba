package store

import "time"

// Scan is one recorded classification pass.
type Scan struct {
	ID        int64
	StartedAt time.Time
	Home      string
	Total     int
}

// ScanResult is one directory's category assignment within a scan.
type ScanResult struct {
	ScanID   int64
	Path     string
	Category string
}
