package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/astfn/as-enum/pkg/defaults"
	"github.com/astfn/as-enum/pkg/enum"
	aserrors "github.com/astfn/as-enum/pkg/errors"
	"github.com/astfn/as-enum/pkg/preset"
)

// defaultLoadConcurrency bounds concurrent preset loads.
const defaultLoadConcurrency = 8

// Item is a registered enum.
type Item struct {
	Name        string
	Description string
	Source      string
	Enum        *enum.Enum
}

// Loader loads one preset from a source.
type Loader func(ctx context.Context, source string) (*preset.Preset, error)

// Option configures a Catalog.
type Option func(*Catalog)

// WithAllowReplace lets Register overwrite an existing name.
func WithAllowReplace() Option {
	return func(c *Catalog) { c.allowReplace = true }
}

// WithKubeconfig sets the kubeconfig used for cm:// preset sources.
func WithKubeconfig(path string) Option {
	return func(c *Catalog) {
		c.load = func(ctx context.Context, source string) (*preset.Preset, error) {
			return preset.LoadWithKubeconfig(ctx, source, path)
		}
	}
}

// WithLoader replaces the preset loader.
func WithLoader(l Loader) Option {
	return func(c *Catalog) {
		if l != nil {
			c.load = l
		}
	}
}

// WithLoadConcurrency bounds how many presets LoadPresets fetches at once.
func WithLoadConcurrency(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Catalog maps case-folded names to enums.
type Catalog struct {
	mu     sync.RWMutex
	items  map[string]*Item
	sealed atomic.Bool

	allowReplace bool
	concurrency  int
	load         Loader
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		items:       make(map[string]*Item),
		concurrency: defaultLoadConcurrency,
		load:        preset.Load,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeName returns the lookup form of name.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Sealed reports whether further registrations are rejected.
func (c *Catalog) Sealed() bool { return c.sealed.Load() }

// Seal rejects further registrations. It reports whether this call sealed
// the catalog.
func (c *Catalog) Seal() bool { return !c.sealed.Swap(true) }

// Register adds e under name.
func (c *Catalog) Register(name string, e *enum.Enum, description string) error {
	return c.add(&Item{Name: strings.TrimSpace(name), Description: description, Enum: e})
}

// RegisterPreset builds p and registers it under p.Name.
func (c *Catalog) RegisterPreset(p *preset.Preset, source string) error {
	if p == nil {
		return aserrors.New(aserrors.ErrCodeInvalidRequest, "preset is nil")
	}
	return c.add(ItemFromPreset(p, source))
}

// MustRegister is Register that panics on error, for static enums.
func MustRegister(c *Catalog, name string, e *enum.Enum, description string) {
	if err := c.Register(name, e, description); err != nil {
		panic(err)
	}
}

func (c *Catalog) add(item *Item) error {
	return c.addAll(item)
}

// addAll registers items under one lock. Names are checked against the
// catalog and each other first, so a conflict registers none of them.
func (c *Catalog) addAll(items ...*Item) error {
	if len(items) == 0 {
		return nil
	}
	if c.Sealed() {
		return aserrors.NewWithContext(aserrors.ErrCodeConflict, "catalog is sealed",
			map[string]any{"name": items[0].Name})
	}

	keys := make([]string, len(items))
	for i, item := range items {
		if item.Name == "" || item.Enum == nil {
			return aserrors.New(aserrors.ErrCodeInvalidRequest, "enum name and enum are required")
		}
		keys[i] = NormalizeName(item.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.allowReplace {
		batch := make(map[string]*Item, len(items))
		for i, item := range items {
			existing, ok := c.items[keys[i]]
			if !ok {
				existing, ok = batch[keys[i]]
			}
			if ok {
				return aserrors.NewWithContext(aserrors.ErrCodeConflict, "enum already registered",
					map[string]any{
						"name":     item.Name,
						"existing": existing.Name,
						"source":   existing.Source,
					})
			}
			batch[keys[i]] = item
		}
	}

	for i, item := range items {
		if _, ok := c.items[keys[i]]; !ok {
			catalogEnums.Inc()
		}
		c.items[keys[i]] = item

		slog.Debug("enum registered",
			"name", item.Name,
			"size", item.Enum.Len(),
			"source", item.Source)
	}
	return nil
}

// Get returns the item registered under name.
func (c *Catalog) Get(name string) (*Item, bool) {
	key := NormalizeName(name)
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if ok {
		catalogLookups.WithLabelValues("hit").Inc()
	} else {
		catalogLookups.WithLabelValues("miss").Inc()
	}
	return item, ok
}

// Lookup is Get returning a NOT_FOUND error on a miss.
func (c *Catalog) Lookup(name string) (*Item, error) {
	item, ok := c.Get(name)
	if !ok {
		return nil, aserrors.NewWithContext(aserrors.ErrCodeNotFound, "enum not found",
			map[string]any{"name": name})
	}
	return item, nil
}

// Len returns the number of registered enums.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Items returns the registered items sorted by name.
func (c *Catalog) Items() []*Item {
	c.mu.RLock()
	items := make([]*Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	c.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return NormalizeName(items[i].Name) < NormalizeName(items[j].Name)
	})
	return items
}

// Names returns the registered names sorted.
func (c *Catalog) Names() []string {
	items := c.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// LoadPresets loads every source concurrently and registers the presets in
// the order given. Nothing is registered when a source fails to load or a
// name conflicts.
func (c *Catalog) LoadPresets(ctx context.Context, sources ...string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	presets := make([]*preset.Preset, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, source := range sources {
		g.Go(func() error {
			start := time.Now()
			p, err := c.load(gctx, source)
			presetLoadDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				presetLoadErrors.Inc()
				slog.Error("failed to load preset", "source", source, "error", err)
				return err
			}
			presets[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	items := make([]*Item, len(presets))
	for i, p := range presets {
		if p == nil {
			return aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest, "preset is nil",
				map[string]any{"source": sources[i]})
		}
		items[i] = ItemFromPreset(p, sources[i])
	}
	if err := c.addAll(items...); err != nil {
		return err
	}

	slog.Info("presets loaded", "count", len(sources), "total", c.Len())
	return nil
}
