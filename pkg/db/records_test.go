package db

import (
	"errors"
	"testing"

	"github.com/dtnitsch/biblesources/models"
)

func TestUpsertRecord(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	src := models.Source{ISO: "eng", Extension: "webp"}
	sourceID, _ := db.InsertSource(src)

	rec := models.MetadataRecord{
		Language:    "English",
		Title:       "World English Bible",
		LicenseRaw:  "public domain",
		LicenseCode: "Public Domain",
		Year:        "2020",
	}
	if err := db.UpsertRecord(sourceID, rec); err != nil {
		t.Fatalf("UpsertRecord() failed: %v", err)
	}

	got, err := db.GetRecord(src)
	if err != nil {
		t.Fatalf("GetRecord() failed: %v", err)
	}
	if got.Record != rec {
		t.Errorf("GetRecord() = %+v, want %+v", got.Record, rec)
	}
	if got.Source != src {
		t.Errorf("Source = %+v, want %+v", got.Source, src)
	}

	rec.Year = "2021"
	rec.Dialect = "American"
	if err := db.UpsertRecord(sourceID, rec); err != nil {
		t.Fatalf("second UpsertRecord() failed: %v", err)
	}

	got, err = db.GetRecord(src)
	if err != nil {
		t.Fatalf("GetRecord() failed: %v", err)
	}
	if got.Record != rec {
		t.Errorf("after update GetRecord() = %+v, want %+v", got.Record, rec)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	if count != 1 {
		t.Errorf("records count = %d, want 1", count)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetRecord(models.Source{ISO: "abc"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRecord() error = %v, want ErrNotFound", err)
	}
}

func TestListRecords(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, src := range []models.Source{{ISO: "fra", Extension: "lsg"}, {ISO: "eng", Extension: "kjv"}, {ISO: "eng"}} {
		id, _ := db.InsertSource(src)
		if err := db.UpsertRecord(id, models.MetadataRecord{Language: src.ISO}); err != nil {
			t.Fatalf("UpsertRecord() failed: %v", err)
		}
	}
	// A source without a record is not listed.
	db.InsertSource(models.Source{ISO: "deu"})

	records, err := db.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords() failed: %v", err)
	}

	want := []string{"eng_NONE", "eng_kjv", "fra_lsg"}
	if len(records) != len(want) {
		t.Fatalf("ListRecords() returned %d records, want %d", len(records), len(want))
	}
	for i, key := range want {
		if records[i].Source.Key() != key {
			t.Errorf("records[%d] = %s, want %s", i, records[i].Source.Key(), key)
		}
	}
}
