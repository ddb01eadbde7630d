package mapreduce

import (
	"fmt"
	"sort"
)

// Count is one tallied license.
type Count struct {
	License string
	Sources int
}

// Sorted returns the counts ordered by number of sources (descending), then license name.
func Sorted(counts map[string]int) []Count {
	ss := make([]Count, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, Count{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Sources != ss[j].Sources {
			return ss[i].Sources > ss[j].Sources
		}
		return ss[i].License < ss[j].License
	})
	return ss
}

// TopLicenses returns the top N licenses formatted as "license:count" (e.g. "CCBY-4.0:412").
func TopLicenses(counts map[string]int, n int) []string {
	ss := Sorted(counts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	licenses := make([]string, limit)
	for i := 0; i < limit; i++ {
		licenses[i] = fmt.Sprintf("%s:%d", ss[i].License, ss[i].Sources)
	}
	return licenses
}

// Shared keeps the licenses used by more than one source.
func Shared(counts map[string]int) []Count {
	var shared []Count
	for _, c := range Sorted(counts) {
		if c.Sources > 1 {
			shared = append(shared, c)
		}
	}
	return shared
}
