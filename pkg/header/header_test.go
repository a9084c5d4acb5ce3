package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindEnumPreset, true},
		{KindEnumOptions, true},
		{KindEnumDictionary, true},
		{KindEnumDescription, true},
		{KindEnumLookup, true},
		{Kind("Widget"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindEnumOptions),
		WithAPIVersion(APIVersionV1),
		WithMetadata("enum", "state"),
	)

	assert.Equal(t, KindEnumOptions, h.GetKind())
	assert.Equal(t, APIVersionV1, h.APIVersion)
	assert.Equal(t, map[string]string{"enum": "state"}, h.GetMetadata())

	h.SetKind(KindEnumDictionary)
	assert.Equal(t, KindEnumDictionary, h.Kind)
}

func TestWithMetadata_NilMap(t *testing.T) {
	var h Header
	WithMetadata("a", "b")(&h)
	assert.Equal(t, "b", h.Metadata["a"])
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindEnumDescription, APIVersionV1, "v1.2.3")

	assert.Equal(t, KindEnumDescription, h.Kind)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)

	h.Init(KindEnumLookup, APIVersionV1, "")
	_, ok := h.Metadata["version"]
	assert.False(t, ok, "empty version should not be recorded")
}

func TestHeader_InlineYAML(t *testing.T) {
	type doc struct {
		Header `yaml:",inline"`
		Name   string `yaml:"name"`
	}

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("kind: EnumPreset\napiVersion: asenum.dev/v1\nname: state\n"), &d))
	assert.Equal(t, KindEnumPreset, d.Kind)
	assert.Equal(t, APIVersionV1, d.APIVersion)
	assert.Equal(t, "state", d.Name)
}
