package snippet

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/haytac/emojipack/internal/emoji"
)

var titleCaser = cases.Title(language.English)

// Assemble builds one Snippet per (record, keyword) pair, records in input
// order, keywords in derivation order. Keyword collisions across records are
// kept: the differing Unicode names keep their uids distinct, and Alfred
// disambiguates at expansion time. Returns emoji.ErrParse when a record's
// unified codepoints do not decode.
func Assemble(records []emoji.Record) ([]Snippet, error) {
	var snippets []Snippet

	for _, rec := range records {
		char, err := rec.Character()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", emoji.ErrParse, err)
		}

		displayName := fmt.Sprintf("%s %s", char, titleCaser.String(rec.Name))

		for _, kw := range emoji.DeriveKeywords(rec) {
			snippets = append(snippets, Snippet{
				Snippet:        char,
				UID:            UID(kw, rec.Name),
				Name:           displayName,
				Keyword:        kw,
				DontAutoExpand: false,
			})
		}
	}

	return snippets, nil
}
