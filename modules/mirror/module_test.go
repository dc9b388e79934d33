package mirror

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridflow/internal/builder"
	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/modules/passthrough"
)

func TestMirrorBuildsNestedChildren(t *testing.T) {
	b := builder.New(context.Background())
	raw, err := New("split", modconfig.Empty())
	require.NoError(t, err)
	m := raw.(*Mirror)

	require.NoError(t, b.Build(m))

	// Children are scoped under the mirror's prefix and tracked by the builder.
	assert.Equal(t, "split/left", m.left.ComponentPrefix())
	assert.Equal(t, "split/right", m.right.ComponentPrefix())
	_, ok := b.Module("split/left")
	assert.True(t, ok)
	_, ok = b.Module("split/right")
	assert.True(t, ok)

	assert.Equal(t, []string{"in"}, m.InputIDs())
	assert.Equal(t, []string{"left", "right"}, m.OutputIDs())
}

func TestMirrorSharesChildNodes(t *testing.T) {
	b := builder.New(context.Background())
	raw, err := New("split", modconfig.Empty())
	require.NoError(t, err)
	m := raw.(*Mirror)
	require.NoError(t, b.Build(m))

	// The re-exported ports are the children's own output nodes, shared by
	// pointer between both registries.
	leftExported, err := m.OutputPort("left")
	require.NoError(t, err)
	leftOwn, err := m.left.OutputPort(passthrough.PortName)
	require.NoError(t, err)
	assert.Same(t, leftOwn, leftExported)

	rightExported, err := m.OutputPort("right")
	require.NoError(t, err)
	rightOwn, err := m.right.OutputPort(passthrough.PortName)
	require.NoError(t, err)
	assert.Same(t, rightOwn, rightExported)

	// Two internal passthrough edges plus the two fan-out edges.
	assert.Len(t, b.Edges(), 4)
}

func TestTwoMirrorsKeepDistinctScopes(t *testing.T) {
	b := builder.New(context.Background())

	first, err := New("alpha", modconfig.Empty())
	require.NoError(t, err)
	second, err := New("beta", modconfig.Empty())
	require.NoError(t, err)

	require.NoError(t, b.Build(first))
	require.NoError(t, b.Build(second))

	// Identically-named children never collide across distinct parents.
	_, ok := b.Module("alpha/left")
	assert.True(t, ok)
	_, ok = b.Module("beta/left")
	assert.True(t, ok)
}
