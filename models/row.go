package models

// Language is a language registry entry.
type Language struct {
	ISO        string `json:"iso" yaml:"iso"`
	Name       string `json:"name" yaml:"name"`
	Glottocode string `json:"glottocode" yaml:"glottocode"`
	Family     string `json:"family" yaml:"family"`
	Latitude   string `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude  string `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Macroarea  string `json:"macroarea,omitempty" yaml:"macroarea,omitempty"`
}

// Row is one line of the output dataset: a source, its extracted record and its language entry.
type Row struct {
	ID         string
	HasVariant bool
	Source     Source
	Language   Language
	URL        string
	Record     MetadataRecord

	// DetectedLanguage is the ISO 639-3 guess for the vernacular title, if detection ran.
	DetectedLanguage string
}
