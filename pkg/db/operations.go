package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/biblesources/models"
)

// InsertSource inserts a source, returning the source_id.
// If the source already exists, returns the existing source_id.
func (db *DB) InsertSource(src models.Source) (int64, error) {
	existingID, err := db.GetSourceID(src)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	result, err := db.Exec(`
		INSERT INTO sources (iso, extension)
		VALUES (?, ?)
		ON CONFLICT(iso, extension) DO NOTHING
	`, src.ISO, src.Extension)
	if err != nil {
		return 0, fmt.Errorf("failed to insert source: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		// Inserted concurrently by another worker.
		return db.GetSourceID(src)
	}

	sourceID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get source ID: %w", err)
	}
	return sourceID, nil
}

// GetSourceID returns the source_id for src, or ErrNotFound.
func (db *DB) GetSourceID(src models.Source) (int64, error) {
	var sourceID int64
	err := db.QueryRow("SELECT source_id FROM sources WHERE iso = ? AND extension = ?", src.ISO, src.Extension).Scan(&sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("source %s: %w", src.Key(), ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get source ID: %w", err)
	}
	return sourceID, nil
}

// Access describes one retrieval of a source document.
type Access struct {
	Status      string
	ErrorType   string
	ContentHash string
	Cached      bool
	Success     bool
}

// RecordAccess records a retrieval attempt in source_accesses.
func (db *DB) RecordAccess(sourceID int64, access Access) error {
	_, err := db.Exec(`
		INSERT INTO source_accesses (source_id, status, error_type, content_hash, cached, success)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sourceID, access.Status, access.ErrorType, access.ContentHash, access.Cached, access.Success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// AccessRecord represents a stored retrieval attempt.
type AccessRecord struct {
	AccessID   int64
	AccessedAt time.Time
	Access
}

// GetLastAccess returns the most recent access record for a source, or nil when there is none.
func (db *DB) GetLastAccess(sourceID int64) (*AccessRecord, error) {
	var record AccessRecord
	err := db.QueryRow(`
		SELECT access_id, accessed_at, status, error_type, content_hash, cached, success
		FROM source_accesses
		WHERE source_id = ?
		ORDER BY accessed_at DESC, access_id DESC
		LIMIT 1
	`, sourceID).Scan(&record.AccessID, &record.AccessedAt, &record.Status, &record.ErrorType,
		&record.ContentHash, &record.Cached, &record.Success)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last access: %w", err)
	}
	return &record, nil
}

// UpsertRecord stores the extracted record for a source, replacing any earlier one.
func (db *DB) UpsertRecord(sourceID int64, rec models.MetadataRecord) error {
	_, err := db.Exec(`
		INSERT INTO records (source_id, language, language_in_source_language, dialect, title,
			title_in_source_language, abbreviation, copyright_notice, translator_or_contributor,
			license_raw, license_code, year, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id) DO UPDATE SET
			language = excluded.language,
			language_in_source_language = excluded.language_in_source_language,
			dialect = excluded.dialect,
			title = excluded.title,
			title_in_source_language = excluded.title_in_source_language,
			abbreviation = excluded.abbreviation,
			copyright_notice = excluded.copyright_notice,
			translator_or_contributor = excluded.translator_or_contributor,
			license_raw = excluded.license_raw,
			license_code = excluded.license_code,
			year = excluded.year,
			date = excluded.date,
			updated_at = CURRENT_TIMESTAMP
	`, sourceID, rec.Language, rec.LanguageInSourceLanguage, rec.Dialect, rec.Title,
		rec.TitleInSourceLanguage, rec.Abbreviation, rec.CopyrightNotice, rec.TranslatorOrContributor,
		rec.LicenseRaw, rec.LicenseCode, rec.Year, rec.Date)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// StoredRecord is a record joined with its source.
type StoredRecord struct {
	Source    models.Source
	Record    models.MetadataRecord
	UpdatedAt time.Time
}

const recordColumns = `
	s.iso, s.extension, r.language, r.language_in_source_language, r.dialect, r.title,
	r.title_in_source_language, r.abbreviation, r.copyright_notice, r.translator_or_contributor,
	r.license_raw, r.license_code, r.year, r.date, r.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (StoredRecord, error) {
	var sr StoredRecord
	rec := &sr.Record
	err := row.Scan(&sr.Source.ISO, &sr.Source.Extension, &rec.Language, &rec.LanguageInSourceLanguage,
		&rec.Dialect, &rec.Title, &rec.TitleInSourceLanguage, &rec.Abbreviation, &rec.CopyrightNotice,
		&rec.TranslatorOrContributor, &rec.LicenseRaw, &rec.LicenseCode, &rec.Year, &rec.Date, &sr.UpdatedAt)
	return sr, err
}

// GetRecord returns the stored record for src, or ErrNotFound.
func (db *DB) GetRecord(src models.Source) (*StoredRecord, error) {
	row := db.QueryRow(`SELECT `+recordColumns+`
		FROM records r
		JOIN sources s ON s.source_id = r.source_id
		WHERE s.iso = ? AND s.extension = ?
	`, src.ISO, src.Extension)

	sr, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %s: %w", src.Key(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &sr, nil
}

// ListRecords returns all stored records ordered by iso and extension.
func (db *DB) ListRecords() ([]StoredRecord, error) {
	rows, err := db.Query(`SELECT ` + recordColumns + `
		FROM records r
		JOIN sources s ON s.source_id = r.source_id
		ORDER BY s.iso, s.extension
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		sr, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, sr)
	}

	return records, rows.Err()
}
