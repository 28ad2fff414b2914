package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/emojipack/internal/emoji"
)

// rawSource serves pre-decoded rows for the census.
type rawSource struct {
	rows []map[string]any
}

func (r *rawSource) Load(ctx context.Context, limit int) ([]emoji.Record, error) {
	return nil, nil
}

func (r *rawSource) LoadRaw(ctx context.Context) ([]map[string]any, error) {
	return r.rows, nil
}

func TestAnalyzeKeys(t *testing.T) {
	source := &rawSource{rows: []map[string]any{
		{"unified": "1F600", "name": "GRINNING FACE", "short_names": []any{"grinning"}, "sort_order": float64(1)},
		{"unified": "1F601", "name": "GRINNING FACE WITH SMILING EYES", "short_names": []any{"grin"}},
		{"unified": "1F3F3", "name": "WAVING WHITE FLAG", "short_names": []any{}, "obsoleted_by": "1F3F3-FE0F"},
	}}

	var out bytes.Buffer
	require.NoError(t, AnalyzeKeys(context.Background(), source, &out))

	report := out.String()
	assert.Contains(t, report, "Analyzed 3 emoji entries")
	assert.Contains(t, report, "ALWAYS PRESENT KEYS")
	assert.Contains(t, report, "SOMETIMES PRESENT KEYS")

	// unified and name are on every row; obsoleted_by and sort_order are not.
	always := report[:bytes.Index(out.Bytes(), []byte("SOMETIMES"))]
	assert.Contains(t, always, "unified")
	assert.Contains(t, always, "name")
	assert.NotContains(t, always, "obsoleted_by")
	assert.NotContains(t, always, "sort_order")

	assert.Contains(t, report, "list[string]")
	assert.Contains(t, report, "list[empty]")
	assert.Contains(t, report, "number")
}
