package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS exchanges (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    asked_at    TEXT NOT NULL,
    backend     TEXT NOT NULL,
    persona     TEXT NOT NULL,
    question    TEXT NOT NULL,
    answer      TEXT NOT NULL,
    income      REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_exchanges_asked_at ON exchanges(asked_at);
`
