package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtnitsch/biblesources/models"
)

func tally(records ...models.MetadataRecord) map[string]int {
	var intermediate []map[string]int
	for _, rec := range records {
		intermediate = append(intermediate, Map(rec))
	}
	return Reduce(intermediate)
}

func TestMapReduce(t *testing.T) {
	counts := tally(
		models.MetadataRecord{LicenseCode: "CCBY-4.0"},
		models.MetadataRecord{LicenseCode: "CCBY-4.0"},
		models.MetadataRecord{LicenseRaw: "Odd text"},
		models.MetadataRecord{},
		models.MetadataRecord{LicenseCode: "Public Domain", LicenseRaw: "public domain"},
	)

	assert.Equal(t, map[string]int{
		"CCBY-4.0":      2,
		"Odd text":      1,
		Unlicensed:      1,
		"Public Domain": 1,
	}, counts)
}

func TestTopLicenses(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}

	assert.Equal(t, []string{"c:5", "a:2", "b:2"}, TopLicenses(counts, 3))
	assert.Equal(t, []string{"c:5", "a:2", "b:2", "d:1"}, TopLicenses(counts, 10))
	assert.Empty(t, TopLicenses(counts, 0))
	assert.Empty(t, TopLicenses(counts, -1))
}

func TestShared(t *testing.T) {
	shared := Shared(map[string]int{"x": 1, "y": 3, "z": 2})
	assert.Equal(t, []Count{{"y", 3}, {"z", 2}}, shared)
	assert.Empty(t, Shared(map[string]int{"x": 1}))
}
