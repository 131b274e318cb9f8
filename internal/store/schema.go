package store

// baseSchema creates the initial tables. Later, additive changes live in
// migrations; nothing here is ever dropped or rewritten in place.
const baseSchema = `
CREATE TABLE IF NOT EXISTS people (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    name      TEXT NOT NULL,
    nick      TEXT NULL,
    me        INTEGER NOT NULL DEFAULT 0,
    date_ins  TEXT NOT NULL,
    date_up   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    ppl_id      INTEGER NOT NULL REFERENCES people(id),
    type        TEXT NOT NULL,
    designator  TEXT NULL,
    value       TEXT NOT NULL,
    date_acq    TEXT NULL,
    date_ins    TEXT NOT NULL,
    date_up     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sig_dates (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    ppl_id     INTEGER NOT NULL REFERENCES people(id),
    date       TEXT NOT NULL,
    event      TEXT NOT NULL,
    do_remind  INTEGER NOT NULL DEFAULT 0,
    with_ppl   TEXT NULL,
    date_ins   TEXT NOT NULL,
    date_up    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS traits (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    ppl_id    INTEGER NOT NULL REFERENCES people(id),
    key       TEXT NOT NULL,
    value     TEXT NOT NULL,
    hidden    INTEGER NOT NULL DEFAULT 0,
    date_ins  TEXT NOT NULL,
    date_up   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tiers (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    ppl_id    INTEGER NOT NULL REFERENCES people(id),
    name      TEXT NOT NULL,
    color     TEXT NULL,
    symbol    TEXT NULL,
    date_ins  TEXT NOT NULL,
    date_up   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS relations (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    ppl_id_a      INTEGER NOT NULL REFERENCES people(id),
    ppl_id_b      INTEGER NOT NULL REFERENCES people(id),
    type          TEXT NOT NULL,
    date_entered  TEXT NULL,
    date_ended    TEXT NULL,
    superseded    INTEGER NOT NULL DEFAULT 0,
    date_ins      TEXT NOT NULL,
    date_up       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tier_defaults (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    key       TEXT NOT NULL,
    suggested INTEGER NOT NULL DEFAULT 0,
    enabled   INTEGER NOT NULL DEFAULT 1,
    color     TEXT NULL,
    symbol    TEXT NULL,
    date_ins  TEXT NOT NULL,
    date_up   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trait_defaults (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    key        TEXT NOT NULL,
    suggested  INTEGER NOT NULL DEFAULT 0,
    enabled    INTEGER NOT NULL DEFAULT 1,
    is_date    INTEGER NOT NULL DEFAULT 0,
    is_contact INTEGER NOT NULL DEFAULT 0,
    color      TEXT NOT NULL DEFAULT '',
    symbol     TEXT NOT NULL DEFAULT '',
    date_ins   TEXT NOT NULL,
    date_up    TEXT NOT NULL
);
`

// pragmas configures the connection before anything else runs.
const pragmas = `
PRAGMA journal_mode = WAL;
PRAGMA busy_timeout = 5000;
PRAGMA foreign_keys = ON;
`

// migrations are additive schema steps applied on top of baseSchema, keyed by
// PRAGMA user_version. Index i runs when user_version == i and bumps it to i+1.
var migrations = []string{
	`ALTER TABLE tiers ADD COLUMN sig_date_delta INTEGER NULL;`,
	`ALTER TABLE tier_defaults ADD COLUMN sig_date_delta INTEGER NULL;
	 ALTER TABLE tier_defaults ADD COLUMN sig_remind TEXT NULL;`,
	`ALTER TABLE people ADD COLUMN meta TEXT NULL;`,
}
