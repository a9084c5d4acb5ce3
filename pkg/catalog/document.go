package catalog

import (
	"strconv"
	"strings"

	"github.com/astfn/as-enum/pkg/enum"
	aserrors "github.com/astfn/as-enum/pkg/errors"
	"github.com/astfn/as-enum/pkg/header"
	"github.com/astfn/as-enum/pkg/preset"
)

// Lookup directions.
const (
	ByKey   = "key"
	ByValue = "value"
)

// Summary is the short form of an item used in listings.
type Summary struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
	Size        int    `json:"size" yaml:"size"`
}

// Description is the EnumDescription document.
type Description struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary `json:",inline" yaml:",inline"`
	Keys    []any        `json:"keys" yaml:"keys"`
	Values  []any        `json:"values" yaml:"values"`
	Labels  []any        `json:"labels" yaml:"labels"`
	Entries []enum.Entry `json:"entries" yaml:"entries"`
}

// OptionsDocument is the EnumOptions document.
type OptionsDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Name    string        `json:"name" yaml:"name"`
	Aliases enum.Aliases  `json:"aliases" yaml:"aliases"`
	Options []enum.Record `json:"options" yaml:"options"`
}

// DictionaryDocument is the EnumDictionary document.
type DictionaryDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Name       string                 `json:"name" yaml:"name"`
	Dictionary map[string]enum.Record `json:"dictionary" yaml:"dictionary"`
}

// LookupResult is the EnumLookup document.
type LookupResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Name  string    `json:"name" yaml:"name"`
	By    string    `json:"by" yaml:"by"`
	Query string    `json:"query" yaml:"query"`
	Key   any       `json:"key" yaml:"key"`
	Info  enum.Info `json:"info" yaml:"info"`
}

// ItemFromPreset builds p into an unregistered item.
func ItemFromPreset(p *preset.Preset, source string) *Item {
	return &Item{
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		Source:      source,
		Enum:        p.Build(),
	}
}

// Summary returns the listing form of the item.
func (i *Item) Summary() Summary {
	return Summary{
		Name:        i.Name,
		Description: i.Description,
		Source:      i.Source,
		Size:        i.Enum.Len(),
	}
}

// Describe returns keys, values, labels and resolved entries in preset order.
func (i *Item) Describe(version string) *Description {
	d := &Description{
		Summary: i.Summary(),
		Keys:    i.Enum.Keys(),
		Values:  i.Enum.Values(),
		Labels:  i.Enum.Labels(),
		Entries: i.Enum.Entries(),
	}
	d.Init(header.KindEnumDescription, header.APIVersionV1, version)
	return d
}

// Options generates the option list. Alias overrides stick to the item's
// enum as GenOptions documents.
func (i *Item) Options(version string, opts ...enum.AliasOption) *OptionsDocument {
	options, aliases := i.Enum.GenOptionsWithAliases(opts...)
	d := &OptionsDocument{
		Name:    i.Name,
		Aliases: aliases,
		Options: options,
	}
	d.Init(header.KindEnumOptions, header.APIVersionV1, version)
	return d
}

// Dictionary returns the direct-access dictionary document.
func (i *Item) Dictionary(version string) *DictionaryDocument {
	d := &DictionaryDocument{
		Name:       i.Name,
		Dictionary: i.Enum.Dic(),
	}
	d.Init(header.KindEnumDictionary, header.APIVersionV1, version)
	return d
}

// LookupKey finds the entry whose key matches raw, trying each of
// ParseScalar's candidates in turn.
func (i *Item) LookupKey(raw, version string) (*LookupResult, error) {
	for _, candidate := range ParseScalar(raw) {
		if info, ok := i.Enum.InfoByKey(candidate); ok {
			return i.lookupResult(ByKey, raw, candidate, info, version), nil
		}
	}
	return nil, i.notFound(ByKey, raw)
}

// LookupValue finds the first entry whose value matches raw.
func (i *Item) LookupValue(raw, version string) (*LookupResult, error) {
	for _, candidate := range ParseScalar(raw) {
		key, ok := i.Enum.KeyByValue(candidate)
		if !ok {
			continue
		}
		info, _ := i.Enum.InfoByValue(candidate)
		return i.lookupResult(ByValue, raw, key, info, version), nil
	}
	return nil, i.notFound(ByValue, raw)
}

func (i *Item) lookupResult(by, raw string, key any, info enum.Info, version string) *LookupResult {
	r := &LookupResult{
		Name:  i.Name,
		By:    by,
		Query: raw,
		Key:   key,
		Info:  info,
	}
	r.Init(header.KindEnumLookup, header.APIVersionV1, version)
	return r
}

func (i *Item) notFound(by, raw string) error {
	return aserrors.NewWithContext(aserrors.ErrCodeNotFound, by+" not found",
		map[string]any{"name": i.Name, by: raw})
}

// ParseScalar returns the typed readings of a textual query: the raw string
// followed by its int, float64 and bool parses, when they succeed.
func ParseScalar(raw string) []any {
	out := []any{raw}
	if n, err := strconv.Atoi(raw); err == nil {
		out = append(out, n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		out = append(out, f)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		out = append(out, b)
	}
	return out
}
