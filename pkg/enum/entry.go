package enum

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"gopkg.in/yaml.v3"
)

// Extra holds additional named attributes attached to an entry.
type Extra map[string]any

// Record is a flattened view of an entry, used for dictionary records and
// generated options.
type Record map[string]any

// Entry declares a single enumeration member.
// A nil Value or Label is replaced by Key; a nil Extra by an empty map.
// Zero values such as 0, "" or false are kept as given.
type Entry struct {
	Key   any   `json:"key" yaml:"key"`
	Value any   `json:"value,omitempty" yaml:"value,omitempty"`
	Label any   `json:"label,omitempty" yaml:"label,omitempty"`
	Extra Extra `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// T builds an Entry from positional arguments: key, value, label, extra.
// Trailing arguments may be omitted and a nil argument counts as skipped.
// The extra slot accepts Extra or map[string]any; anything else is ignored.
func T(key any, rest ...any) Entry {
	e := Entry{Key: key}
	if len(rest) > 0 {
		e.Value = rest[0]
	}
	if len(rest) > 1 {
		e.Label = rest[1]
	}
	if len(rest) > 2 && rest[2] != nil {
		switch x := rest[2].(type) {
		case Extra:
			e.Extra = x
		case map[string]any:
			e.Extra = Extra(x)
		default:
			slog.Debug("ignoring extra of unsupported type",
				"key", fmt.Sprintf("%v", key),
				"type", fmt.Sprintf("%T", x))
		}
	}
	if len(rest) > 3 {
		slog.Debug("ignoring surplus tuple elements",
			"key", fmt.Sprintf("%v", key),
			"count", len(rest)-3)
	}
	return e
}

// Info is the resolved information stored for a key.
type Info struct {
	Value any   `json:"value" yaml:"value"`
	Label any   `json:"label" yaml:"label"`
	Extra Extra `json:"extraInfo" yaml:"extraInfo"`
}

// resolve applies the defaulting rules of a preset entry.
func (e Entry) resolve() Info {
	info := Info{Value: e.Value, Label: e.Label, Extra: e.Extra}
	if info.Value == nil {
		info.Value = e.Key
	}
	if info.Label == nil {
		info.Label = e.Key
	}
	if info.Extra == nil {
		info.Extra = Extra{}
	}
	return info
}

// entryFields mirrors Entry for the mapping form without recursing into the
// custom unmarshalers.
type entryFields struct {
	Key   any   `json:"key" yaml:"key"`
	Value any   `json:"value" yaml:"value"`
	Label any   `json:"label" yaml:"label"`
	Extra Extra `json:"extra" yaml:"extra"`
}

// UnmarshalYAML accepts either a sequence [key, value?, label?, extra?] or a
// mapping with key, value, label and extra fields.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var tuple []any
		if err := node.Decode(&tuple); err != nil {
			return fmt.Errorf("failed to decode entry tuple: %w", err)
		}
		return e.fromTuple(tuple)
	case yaml.MappingNode:
		var f entryFields
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("failed to decode entry: %w", err)
		}
		*e = Entry(f)
		return nil
	case yaml.ScalarNode:
		// a bare scalar is shorthand for a single-element tuple
		var key any
		if err := node.Decode(&key); err != nil {
			return fmt.Errorf("failed to decode entry key: %w", err)
		}
		*e = Entry{Key: key}
		return nil
	default:
		return fmt.Errorf("unsupported entry node at line %d", node.Line)
	}
}

// UnmarshalJSON accepts the same shapes as UnmarshalYAML. Integral numbers
// decode as int so that file keys match Go literals.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode entry: %w", err)
	}
	raw = normalizeJSON(raw)

	switch v := raw.(type) {
	case []any:
		return e.fromTuple(v)
	case map[string]any:
		*e = Entry{Key: v["key"], Value: v["value"], Label: v["label"]}
		if x, ok := v["extra"]; ok && x != nil {
			m, ok := x.(map[string]any)
			if !ok {
				return fmt.Errorf("entry extra must be an object, got %T", x)
			}
			e.Extra = Extra(m)
		}
		return nil
	default:
		*e = Entry{Key: v}
		return nil
	}
}

func (e *Entry) fromTuple(tuple []any) error {
	if len(tuple) == 0 {
		return fmt.Errorf("entry tuple is empty")
	}
	if len(tuple) > 4 {
		return fmt.Errorf("entry tuple has %d elements, at most 4 allowed", len(tuple))
	}
	if len(tuple) == 4 && tuple[3] != nil {
		if _, ok := tuple[3].(map[string]any); !ok {
			return fmt.Errorf("entry extra must be a mapping, got %T", tuple[3])
		}
	}
	*e = T(tuple[0], tuple[1:]...)
	return nil
}

// normalizeJSON converts float64 values that hold integers into int.
func normalizeJSON(v any) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
			return int(x)
		}
		return x
	case []any:
		for i := range x {
			x[i] = normalizeJSON(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalizeJSON(x[k])
		}
		return x
	default:
		return v
	}
}
