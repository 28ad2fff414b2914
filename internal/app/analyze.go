package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/haytac/emojipack/pkg/interfaces"
)

// keyStat is the census entry for one dataset key.
type keyStat struct {
	Key   string
	Count int
	Types []string
}

// AnalyzeKeys fetches the dataset and writes a census of its key space to w:
// which keys every row carries, which are optional, and the value types
// observed for each. Useful when the upstream schema drifts and the Record
// binding needs revisiting.
func AnalyzeKeys(ctx context.Context, source interfaces.Source, w io.Writer) error {
	rows, err := source.LoadRaw(ctx)
	if err != nil {
		return fmt.Errorf("loading raw emoji data: %w", err)
	}

	counts := make(map[string]int)
	types := make(map[string]map[string]struct{})

	for _, row := range rows {
		for key, value := range row {
			counts[key]++
			if types[key] == nil {
				types[key] = make(map[string]struct{})
			}
			types[key][typeName(value)] = struct{}{}
		}
	}

	var always, sometimes []keyStat
	for key, count := range counts {
		stat := keyStat{Key: key, Count: count, Types: sortedTypes(types[key])}
		if count == len(rows) {
			always = append(always, stat)
		} else {
			sometimes = append(sometimes, stat)
		}
	}
	sort.Slice(always, func(i, j int) bool { return always[i].Key < always[j].Key })
	sort.Slice(sometimes, func(i, j int) bool { return sometimes[i].Key < sometimes[j].Key })

	fmt.Fprintf(w, "Analyzed %d emoji entries\n\n", len(rows))
	printSection(w, "ALWAYS PRESENT KEYS (100% of entries)", always, len(rows))
	fmt.Fprintln(w)
	printSection(w, "SOMETIMES PRESENT KEYS (< 100% of entries)", sometimes, len(rows))
	return nil
}

func printSection(w io.Writer, title string, stats []keyStat, total int) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	for _, s := range stats {
		pct := 0.0
		if total > 0 {
			pct = float64(s.Count) / float64(total) * 100
		}
		fmt.Fprintf(w, "%-15s | %5d (%5.1f%%) | Types: %s\n", s.Key, s.Count, pct, strings.Join(s.Types, ", "))
	}
}

// typeName names a decoded JSON value the way the census reports it. Lists
// report their element type from the first element; JSON numbers all decode
// to float64 so they report as number.
func typeName(v any) string {
	switch val := v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "number"
	case nil:
		return "null"
	case []any:
		if len(val) == 0 {
			return "list[empty]"
		}
		return "list[" + typeName(val[0]) + "]"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func sortedTypes(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
