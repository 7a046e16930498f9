package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/critic/internal/parse"
	"github.com/rmaia/critic/pkg/types"
)

type fakeScanner struct {
	name string
}

func (f *fakeScanner) Name() string        { return f.name }
func (f *fakeScanner) Description() string { return "fake" }
func (f *fakeScanner) Scan(_ context.Context, _ *parse.Source, _ Options) ([]types.Issue, error) {
	return nil, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&fakeScanner{name: "alpha"})

	s, err := reg.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", s.Name())

	_, err = reg.Get("missing")
	assert.Error(t, err)
}

func TestRegistryPreservesOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&fakeScanner{name: "charlie"})
	reg.Register(&fakeScanner{name: "alpha"})
	reg.Register(&fakeScanner{name: "bravo"})

	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, reg.Names())

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "charlie", all[0].Name())
	assert.Equal(t, "bravo", all[2].Name())
}

func TestRegistryReRegisterKeepsPosition(t *testing.T) {
	reg := NewRegistry()
	first := &fakeScanner{name: "alpha"}
	second := &fakeScanner{name: "bravo"}
	reg.Register(first)
	reg.Register(second)

	replacement := &fakeScanner{name: "alpha"}
	reg.Register(replacement)

	assert.Equal(t, []string{"alpha", "bravo"}, reg.Names())
	got, err := reg.Get("alpha")
	require.NoError(t, err)
	assert.Same(t, replacement, got)
}
