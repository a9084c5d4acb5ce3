package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astfn/as-enum/pkg/enum"
	aserrors "github.com/astfn/as-enum/pkg/errors"
	"github.com/astfn/as-enum/pkg/preset"
)

func stateEnum() *enum.Enum {
	return enum.New(
		enum.T("pending"),
		enum.T("active", 1, "Active"),
	)
}

func TestRegisterAndGet(t *testing.T) {
	c := New()
	require.NoError(t, c.Register("State", stateEnum(), "order lifecycle"))

	item, ok := c.Get("state")
	require.True(t, ok)
	assert.Equal(t, "State", item.Name)
	assert.Equal(t, "order lifecycle", item.Description)
	assert.Equal(t, 2, item.Enum.Len())

	_, ok = c.Get(" STATE ")
	assert.True(t, ok, "lookup should fold case and trim")

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Catalog)
		register func(*Catalog) error
		code     aserrors.ErrorCode
	}{
		{
			name:     "empty name",
			register: func(c *Catalog) error { return c.Register("  ", stateEnum(), "") },
			code:     aserrors.ErrCodeInvalidRequest,
		},
		{
			name:     "nil enum",
			register: func(c *Catalog) error { return c.Register("x", nil, "") },
			code:     aserrors.ErrCodeInvalidRequest,
		},
		{
			name:     "nil preset",
			register: func(c *Catalog) error { return c.RegisterPreset(nil, "") },
			code:     aserrors.ErrCodeInvalidRequest,
		},
		{
			name:     "duplicate after folding",
			setup:    func(c *Catalog) { MustRegister(c, "state", stateEnum(), "") },
			register: func(c *Catalog) error { return c.Register("STATE", stateEnum(), "") },
			code:     aserrors.ErrCodeConflict,
		},
		{
			name:     "sealed",
			setup:    func(c *Catalog) { c.Seal() },
			register: func(c *Catalog) error { return c.Register("state", stateEnum(), "") },
			code:     aserrors.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if tt.setup != nil {
				tt.setup(c)
			}
			err := tt.register(c)
			require.Error(t, err)
			assert.Equal(t, tt.code, aserrors.CodeOf(err))
		})
	}
}

func TestWithAllowReplace(t *testing.T) {
	c := New(WithAllowReplace())
	require.NoError(t, c.Register("state", stateEnum(), "first"))
	require.NoError(t, c.Register("State", enum.New(enum.T("x")), "second"))

	item, err := c.Lookup("state")
	require.NoError(t, err)
	assert.Equal(t, "second", item.Description)
	assert.Equal(t, 1, c.Len())
}

func TestSeal(t *testing.T) {
	c := New()
	assert.False(t, c.Sealed())
	assert.True(t, c.Seal())
	assert.False(t, c.Seal(), "second seal is a no-op")
	assert.True(t, c.Sealed())
}

func TestMustRegister_Panics(t *testing.T) {
	c := New()
	MustRegister(c, "state", stateEnum(), "")
	assert.Panics(t, func() { MustRegister(c, "state", stateEnum(), "") })
}

func TestLookup_NotFound(t *testing.T) {
	_, err := New().Lookup("nope")
	var se *aserrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, aserrors.ErrCodeNotFound, se.Code)
	assert.Equal(t, "nope", se.Context["name"])
}

func TestNamesSorted(t *testing.T) {
	c := New()
	for _, name := range []string{"priority", "Color", "state"} {
		require.NoError(t, c.Register(name, stateEnum(), ""))
	}
	assert.Equal(t, []string{"Color", "priority", "state"}, c.Names())
	assert.Len(t, c.Items(), 3)
}

func fakeLoader(presets map[string]*preset.Preset) Loader {
	return func(_ context.Context, source string) (*preset.Preset, error) {
		p, ok := presets[source]
		if !ok {
			return nil, fmt.Errorf("no preset at %s", source)
		}
		return p, nil
	}
}

func TestLoadPresets(t *testing.T) {
	presets := map[string]*preset.Preset{
		"a.yaml": {Name: "state", LabelStyle: preset.LabelStyleTitle, Entries: []enum.Entry{enum.T("in_progress")}},
		"b.yaml": {Name: "color", Entries: []enum.Entry{enum.T("red"), enum.T("blue")}},
	}

	c := New(WithLoader(fakeLoader(presets)), WithLoadConcurrency(1))
	require.NoError(t, c.LoadPresets(context.Background(), "a.yaml", "b.yaml"))

	assert.Equal(t, []string{"color", "state"}, c.Names())
	item, err := c.Lookup("state")
	require.NoError(t, err)
	assert.Equal(t, "a.yaml", item.Source)

	label, _ := item.Enum.LabelByKey("in_progress")
	assert.Equal(t, "In Progress", label)
}

func TestLoadPresets_FailureRegistersNothing(t *testing.T) {
	presets := map[string]*preset.Preset{
		"a.yaml": {Name: "state"},
	}

	c := New(WithLoader(fakeLoader(presets)))
	err := c.LoadPresets(context.Background(), "a.yaml", "missing.yaml")
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadPresets_DuplicateNames(t *testing.T) {
	presets := map[string]*preset.Preset{
		"a.yaml": {Name: "state"},
		"b.yaml": {Name: "State"},
	}

	c := New(WithLoader(fakeLoader(presets)))
	err := c.LoadPresets(context.Background(), "a.yaml", "b.yaml")
	assert.True(t, aserrors.IsCode(err, aserrors.ErrCodeConflict))
	assert.Equal(t, 0, c.Len())
}

func TestLoadPresets_ConflictRegistersNothing(t *testing.T) {
	presets := map[string]*preset.Preset{
		"a.yaml": {Name: "a"},
		"b.yaml": {Name: "b"},
		"c.yaml": {Name: "A"},
		"d.yaml": {Name: "d"},
	}

	tests := []struct {
		name     string
		existing []string
		sources  []string
		wantLen  int
	}{
		{"within the batch", nil, []string{"a.yaml", "b.yaml", "c.yaml"}, 0},
		{"with a registered enum", []string{"b"}, []string{"a.yaml", "d.yaml", "b.yaml"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithLoader(fakeLoader(presets)))
			for _, name := range tt.existing {
				require.NoError(t, c.Register(name, stateEnum(), ""))
			}

			err := c.LoadPresets(context.Background(), tt.sources...)
			require.Error(t, err)
			assert.True(t, aserrors.IsCode(err, aserrors.ErrCodeConflict))
			assert.Equal(t, tt.wantLen, c.Len())
			assert.Equal(t, tt.existing, nilIfEmpty(c.Names()))
		})
	}
}

func TestLoadPresets_AllowReplace(t *testing.T) {
	presets := map[string]*preset.Preset{
		"a.yaml": {Name: "state", Description: "first"},
		"b.yaml": {Name: "State", Description: "second"},
	}

	c := New(WithLoader(fakeLoader(presets)), WithAllowReplace())
	require.NoError(t, c.LoadPresets(context.Background(), "a.yaml", "b.yaml"))

	item, err := c.Lookup("state")
	require.NoError(t, err)
	assert.Equal(t, "second", item.Description)
	assert.Equal(t, 1, c.Len())
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestLoadPresets_Files(t *testing.T) {
	c := New()
	require.NoError(t, c.LoadPresets(context.Background(), "../preset/testdata/state.yaml"))

	item, err := c.Lookup("state")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Enum.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Register(fmt.Sprintf("enum-%d", i), stateEnum(), "")
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get(fmt.Sprintf("enum-%d", i))
			_ = c.Names()
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, c.Len())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, NormalizeName("État"), NormalizeName("éTAT"))
	assert.Equal(t, "state", NormalizeName("  State "))
}
