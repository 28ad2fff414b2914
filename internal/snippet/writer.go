package snippet

import (
	"archive/zip"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Writer errors. Both abort the run.
var (
	ErrWrite      = errors.New("snippet pack write failed")
	ErrValidation = errors.New("invalid pack configuration")
)

const infoPlistName = "info.plist"

// Writer serializes snippets into an .alfredsnippets archive: a zip holding
// one JSON document per snippet plus an info.plist carrying the keyword
// prefix and suffix. The filesystem is injected so tests can target a
// memory-backed one.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer over the given filesystem.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write produces the archive at cfg.OutputPath, overwriting any existing
// file. Fails with ErrValidation before touching the filesystem when both
// prefix and suffix are empty and the config does not allow that (a pack
// with bare keywords expands on plain words).
func (w *Writer) Write(snippets []Snippet, cfg PackageConfig) error {
	if err := ValidateAffixes(cfg); err != nil {
		return err
	}

	out, err := w.fs.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, cfg.OutputPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	used := make(map[string]int)

	for _, sn := range snippets {
		entry, err := zw.Create(entryName(sn, used))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if err := encodeSnippet(entry, sn); err != nil {
			return fmt.Errorf("%w: encoding %s: %v", ErrWrite, sn.UID, err)
		}
	}

	plist, err := zw.Create(infoPlistName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := plist.Write([]byte(infoPlist(cfg.Prefix, cfg.Suffix))); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrWrite, infoPlistName, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: finalizing %s: %v", ErrWrite, cfg.OutputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWrite, cfg.OutputPath, err)
	}

	log.Info().Int("snippets", len(snippets)).Str("path", cfg.OutputPath).Msg("Snippet pack written")
	return nil
}

// ValidateAffixes enforces the prefix/suffix rule without any I/O, so
// callers can fail a run before fetching or writing anything.
func ValidateAffixes(cfg PackageConfig) error {
	if cfg.Prefix == "" && cfg.Suffix == "" && !cfg.AllowEmptyAffixes {
		return fmt.Errorf("%w: prefix and suffix are both empty; set one or pass --allow-empty-affixes", ErrValidation)
	}
	return nil
}

// entryName builds the archive member name for a snippet from its uid minus
// the namespace, so names stay aligned with uids. The dataset never collides
// on (keyword, name), but a numeric suffix keeps the zip well-formed if a
// future revision does.
func entryName(sn Snippet, used map[string]int) string {
	base := strings.TrimPrefix(sn.UID, uidNamespace+"-")
	used[base]++
	if n := used[base]; n > 1 {
		return fmt.Sprintf("%s-%d.json", base, n)
	}
	return base + ".json"
}

func encodeSnippet(w io.Writer, sn Snippet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(Envelope{AlfredSnippet: sn})
}

// infoPlist renders the pack settings document Alfred reads the keyword
// prefix and suffix from.
func infoPlist(prefix, suffix string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>snippetkeywordprefix</key>
	<string>%s</string>
	<key>snippetkeywordsuffix</key>
	<string>%s</string>
</dict>
</plist>
`, xmlEscape(prefix), xmlEscape(suffix))
}

func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
