package emoji

import (
	"sort"
	"strings"

	kemoji "github.com/kyokomi/emoji/v2"
)

// Punctuation stripped from Unicode name tokens before normalization.
const tokenCutset = ".,!?:;"

// DeriveKeywords expands a record into its trigger keywords: every listed
// shortcode, every token of the Unicode name, the category and subcategory,
// and any aliases the Go emoji ecosystem knows for the same character.
// Keywords are normalized (lowercase, spaces and hyphens become underscores)
// and deduplicated per record, preserving first-seen order so output is
// deterministic. A record with no shortcodes still yields its name tokens.
func DeriveKeywords(r Record) []string {
	var keywords []string
	seen := make(map[string]struct{})

	add := func(raw string) {
		kw := Normalize(raw)
		if kw == "" {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	for _, sn := range r.ShortNames {
		add(sn)
	}

	for _, alias := range ecosystemAliases(r) {
		add(alias)
	}

	for _, word := range strings.Fields(strings.ReplaceAll(strings.ToLower(r.Name), "_", " ")) {
		add(strings.Trim(word, tokenCutset))
	}

	add(r.Category)
	add(r.Subcategory)

	return keywords
}

// Normalize lowercases a raw keyword and folds spaces and hyphens to
// underscores.
func Normalize(raw string) string {
	kw := strings.ToLower(strings.TrimSpace(raw))
	kw = strings.ReplaceAll(kw, " ", "_")
	kw = strings.ReplaceAll(kw, "-", "_")
	return kw
}

// ecosystemAliases reverse-looks-up the record's character in the
// kyokomi/emoji code map and returns its aliases, colons stripped, sorted
// for stable output. The map keys carry a trailing variation selector for
// some glyphs, so both spellings are probed.
func ecosystemAliases(r Record) []string {
	char, err := r.Character()
	if err != nil {
		return nil
	}

	rev := kemoji.RevCodeMap()
	codes := rev[char]
	if len(codes) == 0 {
		codes = rev[char+"️"]
	}

	aliases := make([]string, 0, len(codes))
	for _, code := range codes {
		aliases = append(aliases, strings.Trim(code, ":"))
	}
	sort.Strings(aliases)
	return aliases
}
