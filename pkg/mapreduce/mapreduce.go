package mapreduce

import "github.com/dtnitsch/biblesources/models"

// Unlicensed is the tally key for records without any license text.
const Unlicensed = "(none)"

// Map generates the license count for a single record.
func Map(rec models.MetadataRecord) map[string]int {
	key := rec.LicenseKey()
	if key == "" {
		key = Unlicensed
	}
	return map[string]int{key: 1}
}

// Reduce aggregates a slice of license count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for license, count := range counts {
			finalResults[license] += count
		}
	}

	return finalResults
}
