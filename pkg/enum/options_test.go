package enum

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedKey struct{ name string }

// mixedPreset mirrors a preset with number, string, pointer and func keys.
func mixedPreset() (*Enum, *namedKey, func() string) {
	state4Key := &namedKey{name: "state4_key"}
	state5Key := func() string { return "state5_key" }

	e := New(
		T(2),
		T(1, nil, "state2_label"),
		T("state3_key", "state3_value", "state3_label"),
		T(state4Key, "state4_value", "state4_label", Extra{"color": "#aaa", "disabled": true}),
		T(state5Key, nil, state5Key()),
	)
	return e, state4Key, state5Key
}

func TestGenOptions_DefaultShape(t *testing.T) {
	e := New(
		T(2),
		T(1, nil, "L2"),
	)

	want := []Record{
		{"label": 2, "value": 2},
		{"label": "L2", "value": 1},
	}
	assert.Equal(t, want, e.GenOptions())
}

func TestGenOptions_MixedKeys(t *testing.T) {
	e, _, state5Key := mixedPreset()

	opts := e.GenOptions()
	require.Len(t, opts, 5)

	assert.Equal(t, Record{"label": 2, "value": 2}, opts[0])
	assert.Equal(t, Record{"label": "state2_label", "value": 1}, opts[1])
	assert.Equal(t, Record{"label": "state3_label", "value": "state3_value"}, opts[2])
	assert.Equal(t, Record{
		"color":    "#aaa",
		"disabled": true,
		"label":    "state4_label",
		"value":    "state4_value",
	}, opts[3])
	assert.Equal(t, "state5_key", opts[4]["label"])
	assert.True(t, samePointer(state5Key, opts[4]["value"]))
}

func TestGenOptions_StickyAliases(t *testing.T) {
	e, _, _ := mixedPreset()

	aliased := e.GenOptions(WithLabelAlias("labelKey"), WithValueAlias("valueKey"))
	require.Len(t, aliased, 5)
	assert.Equal(t, Record{"labelKey": 2, "valueKey": 2}, aliased[0])
	assert.Equal(t, Record{
		"color":    "#aaa",
		"disabled": true,
		"labelKey": "state4_label",
		"valueKey": "state4_value",
	}, aliased[3])

	again := e.GenOptions()
	require.Len(t, again, 5)
	assert.Same(t, &aliased[0], &again[0], "no-arg call should reuse the aliased cache")
	assert.Equal(t, Aliases{Label: "labelKey", Value: "valueKey"}, e.Aliases())
}

func TestGenOptions_Cache(t *testing.T) {
	e := New(T("a"), T("b"))

	first := e.GenOptions()
	second := e.GenOptions()
	assert.Same(t, &first[0], &second[0])

	// an override equal to the active pair keeps the cache
	third := e.GenOptions(WithLabelAlias("label"))
	assert.Same(t, &first[0], &third[0])

	changed := e.GenOptions(WithValueAlias("id"))
	assert.NotSame(t, &first[0], &changed[0])
	assert.Equal(t, Record{"label": "a", "id": "a"}, changed[0])

	// partial override merges onto the stored pair
	both := e.GenOptions(WithLabelAlias("text"))
	assert.Equal(t, Record{"text": "a", "id": "a"}, both[0])
	assert.Equal(t, Aliases{Label: "text", Value: "id"}, e.Aliases())
}

func TestGenOptions_EmptyAliasIsNoOverride(t *testing.T) {
	e := New(T("a"))

	opts := e.GenOptions(WithLabelAlias(""), WithValueAlias(""))
	assert.Equal(t, []Record{{"label": "a", "value": "a"}}, opts)
	assert.Equal(t, DefaultAliases(), e.Aliases())
}

func TestGenOptions_ExtraWinsOverAliases(t *testing.T) {
	e := New(T("k", "v", "L", Extra{"label": "from extra"}))

	opts := e.GenOptions()
	require.Len(t, opts, 1)
	assert.Equal(t, "from extra", opts[0]["label"])
	assert.Equal(t, "v", opts[0]["value"])

	// the dictionary keeps the opposite precedence
	rec, _ := e.Get("k")
	assert.Equal(t, "L", rec["label"])
}

func TestLookups_MixedPreset(t *testing.T) {
	e, state4Key, state5Key := mixedPreset()

	t.Run("value by key", func(t *testing.T) {
		v, _ := e.ValueByKey(2)
		assert.Equal(t, 2, v)
		v, _ = e.ValueByKey(1)
		assert.Equal(t, 1, v)
		v, _ = e.ValueByKey("state3_key")
		assert.Equal(t, "state3_value", v)
		v, _ = e.ValueByKey(state4Key)
		assert.Equal(t, "state4_value", v)
		v, _ = e.ValueByKey(state5Key)
		assert.True(t, samePointer(state5Key, v))
	})

	t.Run("label by key", func(t *testing.T) {
		l, _ := e.LabelByKey(2)
		assert.Equal(t, 2, l)
		l, _ = e.LabelByKey(1)
		assert.Equal(t, "state2_label", l)
		l, _ = e.LabelByKey("state3_key")
		assert.Equal(t, "state3_label", l)
		l, _ = e.LabelByKey(state4Key)
		assert.Equal(t, "state4_label", l)
		l, _ = e.LabelByKey(state5Key)
		assert.Equal(t, "state5_key", l)
	})

	t.Run("extra and info by key", func(t *testing.T) {
		x, _ := e.ExtraInfoByKey(state4Key)
		assert.Equal(t, Extra{"color": "#aaa", "disabled": true}, x)
		x, _ = e.ExtraInfoByKey(state5Key)
		assert.Equal(t, Extra{}, x)

		info, ok := e.InfoByKey(state4Key)
		require.True(t, ok)
		assert.Equal(t, Info{
			Value: "state4_value",
			Label: "state4_label",
			Extra: Extra{"color": "#aaa", "disabled": true},
		}, info)
	})

	t.Run("key by value", func(t *testing.T) {
		k, _ := e.KeyByValue(2)
		assert.Equal(t, 2, k)
		k, _ = e.KeyByValue(1)
		assert.Equal(t, 1, k)
		k, _ = e.KeyByValue("state3_value")
		assert.Equal(t, "state3_key", k)
		k, _ = e.KeyByValue("state4_value")
		assert.Same(t, state4Key, k)
		k, _ = e.KeyByValue(state5Key)
		assert.True(t, samePointer(state5Key, k))
	})

	t.Run("label, extra and info by value", func(t *testing.T) {
		l, _ := e.LabelByValue(2)
		assert.Equal(t, 2, l)
		l, _ = e.LabelByValue(1)
		assert.Equal(t, "state2_label", l)
		l, _ = e.LabelByValue("state3_value")
		assert.Equal(t, "state3_label", l)
		l, _ = e.LabelByValue(state5Key)
		assert.Equal(t, "state5_key", l)

		x, _ := e.ExtraInfoByValue("state4_value")
		assert.Equal(t, Extra{"color": "#aaa", "disabled": true}, x)
		x, _ = e.ExtraInfoByValue(state5Key)
		assert.Equal(t, Extra{}, x)

		info, ok := e.InfoByValue("state4_value")
		require.True(t, ok)
		assert.Equal(t, "state4_label", info.Label)
	})

	t.Run("dictionary", func(t *testing.T) {
		d := e.Dic()
		assert.Len(t, d, 3)
		assert.Contains(t, d, "2")
		assert.Contains(t, d, "1")
		assert.Contains(t, d, "state3_key")
	})
}

func TestGenOptionsWithAliases_MatchesRecords(t *testing.T) {
	e := New(T("a", 1), T("b", 2))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			label, value := fmt.Sprintf("l%d", i%5), fmt.Sprintf("v%d", i%3)
			opts, aliases := e.GenOptionsWithAliases(WithLabelAlias(label), WithValueAlias(value))
			assert.Equal(t, Aliases{Label: label, Value: value}, aliases)
			for _, rec := range opts {
				assert.Contains(t, rec, aliases.Label)
				assert.Contains(t, rec, aliases.Value)
			}
		}()
	}
	wg.Wait()

	opts, aliases := e.GenOptionsWithAliases()
	assert.Equal(t, e.Aliases(), aliases)
	assert.Equal(t, Record{aliases.Label: "a", aliases.Value: 1}, opts[0])
}
