package dataset

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	points INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS prices (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	spot REAL NOT NULL,
	strike REAL NOT NULL,
	maturity REAL NOT NULL,
	rate REAL NOT NULL,
	sigma REAL NOT NULL,
	call REAL NOT NULL,
	put REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_prices_run ON prices(run_id);
`
