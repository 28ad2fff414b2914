package app

import (
	"archive/zip"
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/emojipack/internal/config"
	"github.com/haytac/emojipack/internal/emoji"
	"github.com/haytac/emojipack/internal/snippet"
)

// fixtureSource serves canned records instead of the live endpoint.
type fixtureSource struct {
	records []emoji.Record
	loads   int
}

func (f *fixtureSource) Load(ctx context.Context, limit int) ([]emoji.Record, error) {
	f.loads++
	records := f.records
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

func (f *fixtureSource) LoadRaw(ctx context.Context) ([]map[string]any, error) {
	rows := make([]map[string]any, 0, len(f.records))
	for _, rec := range f.records {
		rows = append(rows, map[string]any{"unified": rec.Unified, "name": rec.Name})
	}
	return rows, nil
}

func fixtureRecords() []emoji.Record {
	return []emoji.Record{
		{Unified: "1F600", Name: "GRINNING FACE", Category: "Smileys & Emotion", Subcategory: "face-smiling", ShortNames: []string{"grinning"}},
		{Unified: "1F601", Name: "GRINNING FACE WITH SMILING EYES", Category: "Smileys & Emotion", Subcategory: "face-smiling", ShortNames: []string{"grin"}},
		{Unified: "1F602", Name: "FACE WITH TEARS OF JOY", Category: "Smileys & Emotion", Subcategory: "face-smiling", ShortNames: []string{"joy"}},
		{Unified: "1F436", Name: "DOG FACE", Category: "Animals & Nature", Subcategory: "animal-mammal", ShortNames: []string{"dog"}},
		{Unified: "1F431", Name: "CAT FACE", Category: "Animals & Nature", Subcategory: "animal-mammal", ShortNames: []string{"cat"}},
		{Unified: "1F42D", Name: "MOUSE FACE", Category: "Animals & Nature", Subcategory: "animal-mammal", ShortNames: []string{"mouse"}},
	}
}

func testApplication(t *testing.T, cfg *config.AppConfig, records []emoji.Record) (*Application, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return &Application{
		Config: cfg,
		Source: &fixtureSource{records: records},
		Writer: snippet.NewWriter(fs),
	}, fs
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Prefix:    ":",
		Suffix:    ":",
		Output:    "pack.alfredsnippets",
		SourceURL: emoji.DefaultSourceURL,
	}
}

func readPack(t *testing.T, fs afero.Fs, path string) *zip.Reader {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func TestRunProducesArchive(t *testing.T) {
	app, fs := testApplication(t, testConfig(), fixtureRecords())

	require.NoError(t, app.Run(context.Background()))

	zr := readPack(t, fs, "pack.alfredsnippets")
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["info.plist"])
	assert.True(t, names["grinning-GRINNING_FACE.json"])
	assert.True(t, names["dog-DOG_FACE.json"])
}

func TestRunLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Limit = 5
	app, fs := testApplication(t, cfg, fixtureRecords())

	require.NoError(t, app.Run(context.Background()))

	// Only the first five records contribute snippets; the sixth
	// (MOUSE FACE) never reaches the assembler.
	zr := readPack(t, fs, cfg.Output)
	for _, f := range zr.File {
		assert.NotContains(t, f.Name, "MOUSE_FACE")
	}
	found := false
	for _, f := range zr.File {
		if f.Name == "cat-CAT_FACE.json" {
			found = true
		}
	}
	assert.True(t, found, "fifth record should still be processed")
}

func TestRunValidationBeforeIO(t *testing.T) {
	cfg := testConfig()
	cfg.Prefix = ""
	cfg.Suffix = ""
	source := &fixtureSource{records: fixtureRecords()}
	fs := afero.NewMemMapFs()
	app := &Application{Config: cfg, Source: source, Writer: snippet.NewWriter(fs)}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrValidation)

	// The run fails before fetching or writing anything.
	assert.Zero(t, source.loads)
	exists, err := afero.Exists(fs, cfg.Output)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunEmptyAffixesOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Prefix = ""
	cfg.Suffix = ""
	cfg.AllowEmptyAffixes = true
	app, fs := testApplication(t, cfg, fixtureRecords())

	require.NoError(t, app.Run(context.Background()))
	exists, err := afero.Exists(fs, cfg.Output)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunUIDsUniqueAndIdempotent(t *testing.T) {
	collect := func() []string {
		app, fs := testApplication(t, testConfig(), fixtureRecords())
		require.NoError(t, app.Run(context.Background()))

		var uids []string
		zr := readPack(t, fs, "pack.alfredsnippets")
		for _, f := range zr.File {
			if f.Name == "info.plist" {
				continue
			}
			uids = append(uids, f.Name)
		}
		sort.Strings(uids)
		return uids
	}

	first := collect()
	seen := make(map[string]bool)
	for _, uid := range first {
		assert.False(t, seen[uid], "duplicate %s", uid)
		seen[uid] = true
	}

	// Regenerating from identical input yields an identical set.
	assert.Equal(t, first, collect())
}

func TestRunDropsObsoleted(t *testing.T) {
	records := append(fixtureRecords(), emoji.Record{
		Unified:     "1F3F3",
		Name:        "WAVING WHITE FLAG",
		Category:    "Flags",
		Subcategory: "flag",
		ShortNames:  []string{"waving_white_flag"},
		ObsoletedBy: "1F3F3-FE0F",
	})

	app, fs := testApplication(t, testConfig(), records)
	require.NoError(t, app.Run(context.Background()))
	zr := readPack(t, fs, "pack.alfredsnippets")
	for _, f := range zr.File {
		assert.NotContains(t, f.Name, "WAVING_WHITE_FLAG")
	}

	cfg := testConfig()
	cfg.KeepObsoleted = true
	app, fs = testApplication(t, cfg, records)
	require.NoError(t, app.Run(context.Background()))
	zr = readPack(t, fs, "pack.alfredsnippets")
	found := false
	for _, f := range zr.File {
		if f.Name == "waving_white_flag-WAVING_WHITE_FLAG.json" {
			found = true
		}
	}
	assert.True(t, found)
}
