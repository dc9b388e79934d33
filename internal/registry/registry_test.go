package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
)

type noopModule struct {
	*module.Base
}

func (m *noopModule) Initialize(b module.Builder) error { return nil }

func noopFactory(name string, cfg modconfig.Document) (module.Module, error) {
	base, err := module.NewBase(name, cfg)
	if err != nil {
		return nil, err
	}
	return &noopModule{Base: base}, nil
}

func TestRegisterAndInstantiate(t *testing.T) {
	r := New()
	r.RegisterModule("noop", noopFactory)

	require.True(t, r.Has("noop"))
	m, err := r.New("noop", "first", modconfig.Empty())
	require.NoError(t, err)
	assert.Equal(t, "first", m.Name())

	_, err = r.New("ghost", "x", modconfig.Empty())
	require.ErrorIs(t, err, ErrUnknownModuleType)
}

func TestDuplicateTypePanics(t *testing.T) {
	r := New()
	r.RegisterModule("noop", noopFactory)
	assert.Panics(t, func() {
		r.RegisterModule("noop", noopFactory)
	})
}

func TestTypesSorted(t *testing.T) {
	r := New()
	r.RegisterModule("zeta", noopFactory)
	r.RegisterModule("alpha", noopFactory)
	r.RegisterModule("mid", noopFactory)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Types())
}
