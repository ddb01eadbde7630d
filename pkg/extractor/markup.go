package extractor

import (
	"regexp"
	"strings"
)

var (
	tablePattern = regexp.MustCompile(`(?is)<table(?:\s[^>]*)?>(.*?)</table>`)
	rowPattern   = regexp.MustCompile(`(?is)<tr(?:\s[^>]*)?>(.*?)</tr>`)
	cellPattern  = regexp.MustCompile(`(?is)<t[dh](?:\s[^>]*)?>(.*?)</t[dh]>`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)

	// A capture that ends inside a tag leaves its opener behind.
	unclosedTagPattern = regexp.MustCompile(`<[^>]*$`)
)

// tables returns the inner markup of at most n table blocks, in document order.
func tables(doc string, n int) []string {
	matches := tablePattern.FindAllStringSubmatch(doc, n)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}

// rows splits a table block into rows of cleaned cell values. Rows without cells are dropped.
func rows(table string) [][]string {
	var out [][]string
	for _, row := range rowPattern.FindAllStringSubmatch(table, -1) {
		var cells []string
		for _, cell := range cellPattern.FindAllStringSubmatch(row[1], -1) {
			cells = append(cells, clean(cell[1]))
		}
		if len(cells) > 0 {
			out = append(out, cells)
		}
	}
	return out
}

// stripTags removes every tag-like substring, including a trailing tag cut off before its '>'.
func stripTags(s string) string {
	return unclosedTagPattern.ReplaceAllString(tagPattern.ReplaceAllString(s, ""), "")
}

// clean strips markup and collapses the text onto one line.
func clean(s string) string {
	return normalizeText(stripTags(s))
}

// normalizeText collapses every run of whitespace, newlines included, into a single space.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// firstSubmatch returns the cleaned first capture group of re in s, or "".
func firstSubmatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return clean(m[1])
}
