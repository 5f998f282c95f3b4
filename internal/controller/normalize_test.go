package controller

import (
	"encoding/json"
	"testing"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

func TestNormalizeSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keys  []string
		want  int
	}{
		{name: "plain array", input: `[1,2,3]`, keys: hourStatsKeys, want: 3},
		{name: "wrapped hours", input: `{"hours":[1,2,3]}`, keys: hourStatsKeys, want: 3},
		{name: "empty object", input: `{}`, keys: hourStatsKeys, want: 0},
		{name: "wrapped weekly", input: `{"weekly":[1,2]}`, keys: weeklyStatsKeys, want: 2},
		{name: "weekly under days", input: `{"days":[1]}`, keys: weeklyStatsKeys, want: 1},
		{name: "days ignored for hours", input: `{"days":[1]}`, keys: hourStatsKeys, want: 0},
		{name: "key holds a scalar", input: `{"hours":5}`, keys: hourStatsKeys, want: 0},
		{name: "wrong key for view", input: `{"weekly":[1,2]}`, keys: hourStatsKeys, want: 0},
		{name: "null", input: `null`, keys: hourStatsKeys, want: 0},
		{name: "empty body", input: ``, keys: hourStatsKeys, want: 0},
		{name: "scalar", input: `42`, keys: hourStatsKeys, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeSequence(json.RawMessage(tt.input), tt.keys...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("result must never be nil")
			}
			assertEqual(t, "length", tt.want, len(got))
		})
	}
}

func TestDecodeSequence_Typed(t *testing.T) {
	hours, err := decodeSequence[domain.ProductiveHour](json.RawMessage(`{"hours":[{"hour":8},{"hour":14}]}`), hourStatsKeys...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "count", 2, len(hours))
	assertEqual(t, "second hour", 14, hours[1].Hour)

	if _, err := decodeSequence[domain.ProductiveHour](json.RawMessage(`["nine"]`)); err == nil {
		t.Error("expected an error for a malformed element")
	}
}

func TestDecodeView_WeeklyStatsShapes(t *testing.T) {
	for _, input := range []string{
		`[{"weekday_index":2,"weekday_name":"Wednesday"}]`,
		`{"weekly":[{"weekday_index":2,"weekday_name":"Wednesday"}]}`,
	} {
		apply, err := decodeView(ViewWeeklyStats, json.RawMessage(input))
		if err != nil {
			t.Fatalf("decodeView(%s) failed: %v", input, err)
		}
		var store ViewStore
		apply(&store)
		assertEqual(t, "present", true, store.WeeklyStats.Present)
		assertEqual(t, "weekday", "Wednesday", store.WeeklyStats.Value[0].WeekdayName)
	}
}
