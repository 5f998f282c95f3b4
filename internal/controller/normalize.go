package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Compatibility keys for the wrapped payload shapes the stats service has
// been observed to return. The internal model only sees plain sequences.
var (
	hourStatsKeys   = []string{"hours"}
	// "days" extends the documented "weekly" key; the stats backend wraps
	// its weekly pattern under it.
	weeklyStatsKeys = []string{"weekly", "days"}
)

// normalizeSequence returns raw if it is a JSON array, else the first of keys
// holding an array, else an empty sequence.
// TODO: drop the wrapped shapes, including the undocumented "days" key, once
// the stats service settles on one response format.
func normalizeSequence(raw json.RawMessage, keys ...string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []json.RawMessage{}, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decoding sequence: %w", err)
		}
		if items == nil {
			items = []json.RawMessage{}
		}
		return items, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, fmt.Errorf("decoding wrapped sequence: %w", err)
		}
		for _, key := range keys {
			inner, ok := fields[key]
			if !ok {
				continue
			}
			inner = bytes.TrimSpace(inner)
			if len(inner) > 0 && inner[0] == '[' {
				return normalizeSequence(inner)
			}
		}
	}
	return []json.RawMessage{}, nil
}

// decodeSequence normalizes raw and decodes every element into T.
func decodeSequence[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	items, err := normalizeSequence(raw, keys...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("decoding element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
