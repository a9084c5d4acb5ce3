package preset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/astfn/as-enum/pkg/defaults"
	"github.com/astfn/as-enum/pkg/enum"
	aserrors "github.com/astfn/as-enum/pkg/errors"
	"github.com/astfn/as-enum/pkg/header"
	"github.com/astfn/as-enum/pkg/serializer"
)

// Preset is a declarative enum definition.
type Preset struct {
	header.Header `json:",inline" yaml:",inline"`

	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	LabelStyle  LabelStyle   `json:"labelStyle,omitempty" yaml:"labelStyle,omitempty"`
	Entries     []enum.Entry `json:"entries" yaml:"entries"`
}

// Load reads and validates a preset from a local path, an http(s) URL, a
// ConfigMap URI or an OCI reference.
func Load(ctx context.Context, source string) (*Preset, error) {
	return LoadWithKubeconfig(ctx, source, "")
}

// LoadWithKubeconfig is Load with a custom kubeconfig for ConfigMap URIs.
func LoadWithKubeconfig(ctx context.Context, source, kubeconfig string) (*Preset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.PresetLoadTimeout)
	defer cancel()

	p, err := serializer.FromSource[Preset](ctx, source, kubeconfig)
	if err != nil {
		return nil, aserrors.WrapWithContext(aserrors.ErrCodeInvalidRequest,
			"failed to load preset", err, map[string]any{"source": source})
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", source, err)
	}

	slog.Debug("preset loaded",
		"source", source,
		"name", p.Name,
		"entries", len(p.Entries))

	return p, nil
}

// Validate checks the header, the name, the label style and that every entry
// has a key. An empty entry list is valid.
func (p *Preset) Validate() error {
	if p.Kind != "" && p.Kind != header.KindEnumPreset {
		return aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
			"unexpected document kind", map[string]any{
				"kind":     p.Kind,
				"expected": header.KindEnumPreset,
			})
	}
	if p.APIVersion != "" && p.APIVersion != header.APIVersionV1 {
		return aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
			"unsupported apiVersion", map[string]any{
				"apiVersion": p.APIVersion,
				"supported":  header.APIVersionV1,
			})
	}
	if p.Name == "" {
		return aserrors.New(aserrors.ErrCodeInvalidRequest, "preset name is required")
	}
	style, err := ParseLabelStyle(string(p.LabelStyle))
	if err != nil {
		return err
	}
	p.LabelStyle = style

	seen := make(map[string]int, len(p.Entries))
	for i, entry := range p.Entries {
		if entry.Key == nil {
			return aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
				"preset entry has no key", map[string]any{
					"preset": p.Name,
					"entry":  i,
				})
		}
		if name, ok := enum.DictKey(entry.Key); ok {
			if first, dup := seen[name]; dup {
				slog.Warn("duplicate preset key, later entry wins",
					"preset", p.Name,
					"key", name,
					"first", first,
					"entry", i)
			}
			seen[name] = i
		}
	}
	return nil
}

// Build creates the enum described by the preset. When a label style is set,
// entries with a string key and no label get the styled key as label.
func (p *Preset) Build() *enum.Enum {
	entries := p.Entries
	if p.LabelStyle != LabelStyleNone {
		entries = make([]enum.Entry, len(p.Entries))
		for i, entry := range p.Entries {
			if key, ok := entry.Key.(string); ok && entry.Label == nil {
				entry.Label = p.LabelStyle.Apply(key)
			}
			entries[i] = entry
		}
	}
	return enum.New(entries...)
}

// FromEnum renders e as a preset document with resolved entries.
func FromEnum(name string, e *enum.Enum) *Preset {
	p := &Preset{
		Name:    name,
		Entries: e.Entries(),
	}
	p.Init(header.KindEnumPreset, header.APIVersionV1, "")
	return p
}
