package emoji

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// DefaultSourceURL is the canonical emoji.json of the iamcal/emoji-data
// repository, a dataset of 3000+ emojis with Unicode data, categories and
// shortcodes.
const DefaultSourceURL = "https://raw.githubusercontent.com/iamcal/emoji-data/master/emoji.json"

const fetchTimeout = 30 * time.Second

// Stage errors surfaced by the loader. Both are fatal for the run; there is
// no retry, this is a single-shot batch fetch.
var (
	ErrFetch = errors.New("emoji source fetch failed")
	ErrParse = errors.New("emoji source parse failed")
)

// HTTPSource loads the emoji dataset over HTTP.
type HTTPSource struct {
	url    string
	client *resty.Client
}

// NewHTTPSource creates a source for the given dataset URL. An empty url
// selects DefaultSourceURL.
func NewHTTPSource(url string) *HTTPSource {
	if url == "" {
		url = DefaultSourceURL
	}
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", "emojipack/1.0")
	return &HTTPSource{url: url, client: client}
}

// Load fetches and decodes the dataset. A limit > 0 truncates the result to
// the first limit records in source order.
func (s *HTTPSource) Load(ctx context.Context, limit int) ([]Record, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrParse, s.url, err)
	}

	log.Debug().Int("records", len(records)).Str("url", s.url).Msg("Emoji dataset loaded")

	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

// LoadRaw fetches the dataset without binding it to the Record schema, for
// key/type analysis of the raw rows.
func (s *HTTPSource) LoadRaw(ctx context.Context) ([]map[string]any, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrParse, s.url, err)
	}
	return rows, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrFetch, s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: GET %s: status %s", ErrFetch, s.url, resp.Status())
	}
	return resp.Body(), nil
}
