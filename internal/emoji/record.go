package emoji

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Record is one row of the iamcal/emoji-data dataset. All listed fields are
// present on every row; ObsoletedBy is empty unless a newer unified sequence
// replaces this one. Records are not mutated after loading.
type Record struct {
	Unified     string   `json:"unified"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	ShortNames  []string `json:"short_names"`
	ObsoletedBy string   `json:"obsoleted_by,omitempty"`
}

// Character decodes the record's unified codepoint string (hex codepoints
// joined by hyphens, e.g. "1F1FA-1F1F8") into the emoji it denotes.
func (r Record) Character() (string, error) {
	if r.Unified == "" {
		return "", fmt.Errorf("record %q has no unified codepoints", r.Name)
	}

	var b strings.Builder
	for _, cp := range strings.Split(r.Unified, "-") {
		n, err := strconv.ParseUint(cp, 16, 32)
		if err != nil {
			return "", fmt.Errorf("invalid codepoint %q in %q: %w", cp, r.Unified, err)
		}
		if !utf8.ValidRune(rune(n)) {
			return "", fmt.Errorf("invalid codepoint %q in %q", cp, r.Unified)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// Obsoleted reports whether a newer sequence in the dataset replaces this
// record (skin-tone and gendered variants folded into newer forms).
func (r Record) Obsoleted() bool {
	return r.ObsoletedBy != ""
}
