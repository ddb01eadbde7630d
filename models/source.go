package models

import (
	"fmt"
	"strings"
)

// NoExtension is how an empty translation extension is spelled in keys and filenames.
const NoExtension = "NONE"

// Source identifies one bible translation: an ISO 639-3 code plus an optional extension
// distinguishing several translations into the same language.
type Source struct {
	ISO       string `json:"iso" yaml:"iso"`
	Extension string `json:"extension" yaml:"extension"`
}

// ID is the identifier the details page is addressed by (iso immediately followed by extension).
func (s Source) ID() string {
	return s.ISO + s.Extension
}

// Key is the stable "iso_EXT" form used for cache filenames and dedupe.
func (s Source) Key() string {
	ext := s.Extension
	if ext == "" {
		ext = NoExtension
	}
	return s.ISO + "_" + ext
}

func (s Source) String() string {
	return s.Key()
}

// ParseSourceKey reverses Key. A bare identifier without underscore is read as a 3-letter ISO
// code followed by the extension.
func ParseSourceKey(key string) (Source, error) {
	key = strings.TrimSpace(key)
	if iso, ext, ok := strings.Cut(key, "_"); ok {
		if len(iso) != 3 {
			return Source{}, fmt.Errorf("invalid source key %q: iso code must have 3 letters", key)
		}
		if ext == NoExtension {
			ext = ""
		}
		return Source{ISO: iso, Extension: ext}, nil
	}
	if len(key) < 3 {
		return Source{}, fmt.Errorf("invalid source key %q", key)
	}
	return Source{ISO: key[:3], Extension: key[3:]}, nil
}
