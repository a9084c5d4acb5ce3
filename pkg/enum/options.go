package enum

import "maps"

const (
	// DefaultLabelAlias is the option field holding the label.
	DefaultLabelAlias = "label"
	// DefaultValueAlias is the option field holding the value.
	DefaultValueAlias = "value"
)

// Aliases names the fields GenOptions writes label and value into.
type Aliases struct {
	Label string `json:"labelAlias" yaml:"labelAlias"`
	Value string `json:"valueAlias" yaml:"valueAlias"`
}

// DefaultAliases returns the "label"/"value" pair.
func DefaultAliases() Aliases {
	return Aliases{Label: DefaultLabelAlias, Value: DefaultValueAlias}
}

// AliasOption overrides one side of the active alias pair.
type AliasOption func(*Aliases)

// WithLabelAlias sets the field name used for labels. Empty means no override.
func WithLabelAlias(alias string) AliasOption {
	return func(a *Aliases) {
		if alias != "" {
			a.Label = alias
		}
	}
}

// WithValueAlias sets the field name used for values. Empty means no override.
func WithValueAlias(alias string) AliasOption {
	return func(a *Aliases) {
		if alias != "" {
			a.Value = alias
		}
	}
}

// Aliases returns the alias pair the next GenOptions call without options
// will use.
func (e *Enum) Aliases() Aliases {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.aliases
}

// GenOptions returns one record per entry in preset order, shaped as
// {labelAlias: label, valueAlias: value, ...extra}. Extra fields are applied
// last and win on name collisions.
//
// Options are merged onto the alias pair of the previous call, so overrides
// stick. When the resulting pair is unchanged the cached slice from the
// previous call is returned as is. Callers must treat the result as
// read-only.
func (e *Enum) GenOptions(opts ...AliasOption) []Record {
	options, _ := e.GenOptionsWithAliases(opts...)
	return options
}

// GenOptionsWithAliases is GenOptions that also returns the alias pair the
// records were built with.
func (e *Enum) GenOptionsWithAliases(opts ...AliasOption) ([]Record, Aliases) {
	e.mu.Lock()
	defer e.mu.Unlock()

	aliases := e.aliases
	for _, opt := range opts {
		opt(&aliases)
	}

	if aliases == e.aliases && e.optionsCache != nil {
		return e.optionsCache, aliases
	}

	options := make([]Record, len(e.infos))
	for i, info := range e.infos {
		rec := make(Record, len(info.Extra)+2)
		rec[aliases.Label] = info.Label
		rec[aliases.Value] = info.Value
		maps.Copy(rec, info.Extra)
		options[i] = rec
	}

	e.aliases = aliases
	e.optionsCache = options
	return options, aliases
}
