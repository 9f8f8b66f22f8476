package store

// The planner state is one named record: a single row keyed by stateKey.
// Snapshots are an append-only history of derived metrics over time.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS planner_state (
    id             TEXT PRIMARY KEY,
    rent           REAL NOT NULL DEFAULT 0,
    food           REAL NOT NULL DEFAULT 0,
    transport      REAL NOT NULL DEFAULT 0,
    subscriptions  REAL NOT NULL DEFAULT 0,
    other          REAL NOT NULL DEFAULT 0,
    mrr            REAL NOT NULL DEFAULT 0,
    freelance      REAL NOT NULL DEFAULT 0,
    passive        REAL NOT NULL DEFAULT 0,
    salary         REAL NOT NULL DEFAULT 0,
    growth_rate    INTEGER NOT NULL DEFAULT 10,
    currency       TEXT NOT NULL DEFAULT 'USD',
    use_buffer     INTEGER NOT NULL DEFAULT 1,
    war_chest      REAL NOT NULL DEFAULT 0,
    user_savings   REAL NOT NULL DEFAULT 0,
    updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at          TEXT NOT NULL,
    currency          TEXT NOT NULL,
    total_expenses    REAL NOT NULL,
    total_income      REAL NOT NULL,
    freedom_number    REAL NOT NULL,
    freedom_pct       INTEGER NOT NULL,
    deficit           REAL NOT NULL,
    months_to_freedom INTEGER NOT NULL,
    runway_months     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_taken ON snapshots(taken_at);
`
