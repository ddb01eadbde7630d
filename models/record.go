package models

// MetadataRecord is the structured metadata recovered from one details page.
// Every field is always present; an unknown value is the empty string.
type MetadataRecord struct {
	Language                 string `json:"language" yaml:"language"`
	LanguageInSourceLanguage string `json:"language_in_source_language" yaml:"language_in_source_language"`
	Dialect                  string `json:"dialect" yaml:"dialect"`

	Title                 string `json:"title" yaml:"title"`
	TitleInSourceLanguage string `json:"title_in_source_language" yaml:"title_in_source_language"`
	Abbreviation          string `json:"abbreviation" yaml:"abbreviation"`

	CopyrightNotice         string `json:"copyright_notice" yaml:"copyright_notice"`
	TranslatorOrContributor string `json:"translator_or_contributor" yaml:"translator_or_contributor"`

	LicenseRaw  string `json:"license_raw" yaml:"license_raw"`   // free text as found
	LicenseCode string `json:"license_code" yaml:"license_code"` // canonicalized

	Year string `json:"year" yaml:"year"` // 4-digit
	Date string `json:"date" yaml:"date"` // YYYY-MM-DD
}

// Fields returns the record's values keyed by their column names, in declaration order.
func (r MetadataRecord) Fields() []Field {
	return []Field{
		{"language", r.Language},
		{"language_in_source_language", r.LanguageInSourceLanguage},
		{"dialect", r.Dialect},
		{"title", r.Title},
		{"title_in_source_language", r.TitleInSourceLanguage},
		{"abbreviation", r.Abbreviation},
		{"copyright_notice", r.CopyrightNotice},
		{"translator_or_contributor", r.TranslatorOrContributor},
		{"license_raw", r.LicenseRaw},
		{"license_code", r.LicenseCode},
		{"year", r.Year},
		{"date", r.Date},
	}
}

// IsEmpty reports whether no field carries a value.
func (r MetadataRecord) IsEmpty() bool {
	return r == MetadataRecord{}
}

// LicenseKey is the license a record is grouped under: the code, or the raw text when no code resolved.
func (r MetadataRecord) LicenseKey() string {
	if r.LicenseCode != "" {
		return r.LicenseCode
	}
	return r.LicenseRaw
}

// Field is a single named record value.
type Field struct {
	Name  string
	Value string
}
