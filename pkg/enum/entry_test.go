package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		got  Entry
		want Entry
	}{
		{
			name: "key only",
			got:  T("a"),
			want: Entry{Key: "a"},
		},
		{
			name: "nil value skipped",
			got:  T(1, nil, "one"),
			want: Entry{Key: 1, Label: "one"},
		},
		{
			name: "extra as Extra",
			got:  T("a", 1, "A", Extra{"x": 1}),
			want: Entry{Key: "a", Value: 1, Label: "A", Extra: Extra{"x": 1}},
		},
		{
			name: "extra as plain map",
			got:  T("a", nil, nil, map[string]any{"x": 1}),
			want: Entry{Key: "a", Extra: Extra{"x": 1}},
		},
		{
			name: "unsupported extra ignored",
			got:  T("a", nil, nil, []int{1}),
			want: Entry{Key: "a"},
		},
		{
			name: "surplus elements ignored",
			got:  T("a", "v", "l", nil, "surplus"),
			want: Entry{Key: "a", Value: "v", Label: "l"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEntry_UnmarshalYAML(t *testing.T) {
	doc := `
- [2]
- [1, null, "L2"]
- [active, 10, Active, {color: green}]
- key: idle
  label: Idle
  extra:
    order: 3
- plain
`
	var entries []Entry
	require.NoError(t, yaml.Unmarshal([]byte(doc), &entries))
	require.Len(t, entries, 5)

	assert.Equal(t, Entry{Key: 2}, entries[0])
	assert.Equal(t, Entry{Key: 1, Label: "L2"}, entries[1])
	assert.Equal(t, Entry{Key: "active", Value: 10, Label: "Active", Extra: Extra{"color": "green"}}, entries[2])
	assert.Equal(t, Entry{Key: "idle", Label: "Idle", Extra: Extra{"order": 3}}, entries[3])
	assert.Equal(t, Entry{Key: "plain"}, entries[4])
}

func TestEntry_UnmarshalYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty tuple", doc: "- []"},
		{name: "too many elements", doc: "- [a, b, c, {}, e]"},
		{name: "extra not a mapping", doc: "- [a, b, c, d]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []Entry
			assert.Error(t, yaml.Unmarshal([]byte(tt.doc), &entries))
		})
	}
}

func TestEntry_UnmarshalJSON(t *testing.T) {
	doc := `[
		[2],
		[1, null, "L2"],
		["ratio", 0.5],
		{"key": "idle", "value": 7, "extra": {"order": 3}},
		"plain"
	]`

	var entries []Entry
	require.NoError(t, json.Unmarshal([]byte(doc), &entries))
	require.Len(t, entries, 5)

	assert.Equal(t, Entry{Key: 2}, entries[0])
	assert.Equal(t, Entry{Key: 1, Label: "L2"}, entries[1])
	assert.Equal(t, Entry{Key: "ratio", Value: 0.5}, entries[2])
	assert.Equal(t, Entry{Key: "idle", Value: 7, Extra: Extra{"order": 3}}, entries[3])
	assert.Equal(t, Entry{Key: "plain"}, entries[4])

	e := New(entries...)
	v, ok := e.ValueByKey(2)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestEntry_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "invalid json", doc: `[1,`},
		{name: "too many elements", doc: `[1, 2, 3, {}, 5]`},
		{name: "extra not an object", doc: `[1, 2, 3, [4]]`},
		{name: "mapping extra not an object", doc: `{"key": 1, "extra": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry
			assert.Error(t, json.Unmarshal([]byte(tt.doc), &e))
		})
	}
}

func TestNormalizeJSON(t *testing.T) {
	got := normalizeJSON(map[string]any{
		"int":    float64(3),
		"frac":   1.25,
		"nested": []any{float64(-1), "x"},
	})
	assert.Equal(t, map[string]any{
		"int":    3,
		"frac":   1.25,
		"nested": []any{-1, "x"},
	}, got)
}
