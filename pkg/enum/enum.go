package enum

import (
	"maps"
	"sync"
)

// Enum is an ordered, queryable enumeration built from preset entries.
// Use New to create one.
type Enum struct {
	keys    []any       // original keys, preset order
	infos   []Info      // resolved info, parallel to keys
	byKey   map[any]int // key identity -> position
	byValue map[any]int // value identity -> position of first entry holding it
	dic     map[string]Record

	mu           sync.Mutex
	aliases      Aliases
	optionsCache []Record
}

// New builds an Enum from entries in the given order.
// Duplicate keys overwrite the earlier info but keep the earlier position.
func New(entries ...Entry) *Enum {
	e := &Enum{
		keys:    make([]any, 0, len(entries)),
		infos:   make([]Info, 0, len(entries)),
		byKey:   make(map[any]int, len(entries)),
		byValue: make(map[any]int, len(entries)),
		dic:     make(map[string]Record),
		aliases: DefaultAliases(),
	}

	for _, entry := range entries {
		info := entry.resolve()
		id := identityOf(entry.Key)
		if pos, ok := e.byKey[id]; ok {
			e.infos[pos] = info
		} else {
			e.byKey[id] = len(e.keys)
			e.keys = append(e.keys, entry.Key)
			e.infos = append(e.infos, info)
		}

		if name, ok := DictKey(entry.Key); ok {
			rec := make(Record, len(info.Extra)+2)
			maps.Copy(rec, info.Extra)
			rec["value"] = info.Value
			rec["label"] = info.Label
			e.dic[name] = rec
		}
	}

	// built after all overwrites so the index reflects final values
	for pos, info := range e.infos {
		id := identityOf(info.Value)
		if _, ok := e.byValue[id]; !ok {
			e.byValue[id] = pos
		}
	}

	return e
}

// Len returns the number of distinct keys.
func (e *Enum) Len() int { return len(e.keys) }

// Has reports whether key is present.
func (e *Enum) Has(key any) bool {
	_, ok := e.byKey[identityOf(key)]
	return ok
}

// InfoByKey returns the resolved info for key.
func (e *Enum) InfoByKey(key any) (Info, bool) {
	pos, ok := e.byKey[identityOf(key)]
	if !ok {
		return Info{}, false
	}
	return e.infos[pos], true
}

// ValueByKey returns the value for key.
func (e *Enum) ValueByKey(key any) (any, bool) {
	info, ok := e.InfoByKey(key)
	return info.Value, ok
}

// LabelByKey returns the label for key.
func (e *Enum) LabelByKey(key any) (any, bool) {
	info, ok := e.InfoByKey(key)
	return info.Label, ok
}

// ExtraInfoByKey returns the extra attributes for key. The returned map is
// the one supplied at construction and must not be modified.
func (e *Enum) ExtraInfoByKey(key any) (Extra, bool) {
	info, ok := e.InfoByKey(key)
	return info.Extra, ok
}

// KeyByValue returns the key of the first entry whose resolved value is
// value. Since value defaults to the key, passing a key works for entries
// that did not declare a value.
func (e *Enum) KeyByValue(value any) (any, bool) {
	pos, ok := e.byValue[identityOf(value)]
	if !ok {
		return nil, false
	}
	return e.keys[pos], true
}

// InfoByValue returns the info of the first entry whose value is value.
func (e *Enum) InfoByValue(value any) (Info, bool) {
	pos, ok := e.byValue[identityOf(value)]
	if !ok {
		return Info{}, false
	}
	return e.infos[pos], true
}

// LabelByValue returns the label of the first entry whose value is value.
func (e *Enum) LabelByValue(value any) (any, bool) {
	info, ok := e.InfoByValue(value)
	return info.Label, ok
}

// ExtraInfoByValue returns the extra attributes of the first entry whose
// value is value.
func (e *Enum) ExtraInfoByValue(value any) (Extra, bool) {
	info, ok := e.InfoByValue(value)
	return info.Extra, ok
}

// Keys returns the keys in preset order.
func (e *Enum) Keys() []any {
	out := make([]any, len(e.keys))
	copy(out, e.keys)
	return out
}

// Values returns the resolved values in preset order.
func (e *Enum) Values() []any {
	out := make([]any, len(e.infos))
	for i, info := range e.infos {
		out[i] = info.Value
	}
	return out
}

// Labels returns the resolved labels in preset order.
func (e *Enum) Labels() []any {
	out := make([]any, len(e.infos))
	for i, info := range e.infos {
		out[i] = info.Label
	}
	return out
}

// Entries returns the resolved entries in preset order. Feeding them back
// into New yields an equivalent Enum.
func (e *Enum) Entries() []Entry {
	out := make([]Entry, len(e.keys))
	for i, key := range e.keys {
		info := e.infos[i]
		out[i] = Entry{Key: key, Value: info.Value, Label: info.Label, Extra: info.Extra}
	}
	return out
}

// Get returns the dictionary record for a string or number key rendered
// with DictKey, e.g. Get("state1") or Get("1").
func (e *Enum) Get(name string) (Record, bool) {
	rec, ok := e.dic[name]
	return rec, ok
}

// Dic returns the direct-access dictionary. Only keys of a simple kind are
// present. The map is a copy; the records are shared.
func (e *Enum) Dic() map[string]Record {
	return maps.Clone(e.dic)
}
