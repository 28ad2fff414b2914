package snippet

import "strings"

// uidNamespace prefixes every generated uid. Alfred keys its per-snippet
// selection ranking on the uid, so the namespace and the derivation below
// must stay stable across regenerations.
const uidNamespace = "emojipack"

// Snippet is one Alfred snippet: the emoji to insert, the keyword that
// triggers it, and display metadata. Serialized inside an "alfredsnippet"
// envelope, one JSON document per snippet in the pack.
type Snippet struct {
	Snippet        string `json:"snippet"`
	UID            string `json:"uid"`
	Name           string `json:"name"`
	Keyword        string `json:"keyword"`
	DontAutoExpand bool   `json:"dontautoexpand"`
}

// Envelope is the document shape Alfred expects for a single snippet file.
type Envelope struct {
	AlfredSnippet Snippet `json:"alfredsnippet"`
}

// PackageConfig describes the pack-level settings written alongside the
// snippets. Prefix and suffix apply to every keyword at expansion time and
// live in info.plist, not on the snippets themselves.
type PackageConfig struct {
	Prefix            string
	Suffix            string
	OutputPath        string
	AllowEmptyAffixes bool
}

// UID derives the stable identifier for a (keyword, unicode name) pair:
// the fixed namespace, the keyword, and the name with every non-alphanumeric
// byte replaced by an underscore. Pure function of its inputs, so identical
// source data always reproduces identical uids.
func UID(keyword, unicodeName string) string {
	return uidNamespace + "-" + keyword + "-" + sanitize(unicodeName)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
