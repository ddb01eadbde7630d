package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Sources: one row per (iso, extension) seen in a listing
CREATE TABLE IF NOT EXISTS sources (
    source_id INTEGER PRIMARY KEY AUTOINCREMENT,
    iso TEXT NOT NULL,
    extension TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(iso, extension)
);

CREATE INDEX IF NOT EXISTS idx_sources_iso ON sources(iso);

-- Source accesses: every document retrieval tracked
CREATE TABLE IF NOT EXISTS source_accesses (
    access_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_id INTEGER NOT NULL,
    accessed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status TEXT NOT NULL,          -- found, not_found, failed
    error_type TEXT NOT NULL DEFAULT '',
    content_hash TEXT NOT NULL DEFAULT '',
    cached BOOLEAN DEFAULT 0,
    success BOOLEAN DEFAULT 0,
    FOREIGN KEY (source_id) REFERENCES sources(source_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_accesses_source ON source_accesses(source_id);

-- Records: the latest extracted metadata per source
CREATE TABLE IF NOT EXISTS records (
    source_id INTEGER PRIMARY KEY,
    language TEXT NOT NULL DEFAULT '',
    language_in_source_language TEXT NOT NULL DEFAULT '',
    dialect TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    title_in_source_language TEXT NOT NULL DEFAULT '',
    abbreviation TEXT NOT NULL DEFAULT '',
    copyright_notice TEXT NOT NULL DEFAULT '',
    translator_or_contributor TEXT NOT NULL DEFAULT '',
    license_raw TEXT NOT NULL DEFAULT '',
    license_code TEXT NOT NULL DEFAULT '',
    year TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (source_id) REFERENCES sources(source_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_records_license ON records(license_code);

-- Runs: one row per build invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source_count INTEGER DEFAULT 0,
    found_count INTEGER DEFAULT 0,
    not_found_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    output_dir TEXT NOT NULL DEFAULT ''
);
`
