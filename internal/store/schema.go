package store

const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL,
    home TEXT NOT NULL,
    total INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_results (
    scan_id INTEGER NOT NULL,
    path TEXT NOT NULL,
    category TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (scan_id, path),
    FOREIGN KEY (scan_id) REFERENCES scans(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_results_scan ON scan_results(scan_id);
CREATE INDEX IF NOT EXISTS idx_results_category ON scan_results(category);
`
