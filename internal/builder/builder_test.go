package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridflow/internal/modconfig"
	"github.com/vk/gridflow/internal/module"
	"github.com/vk/gridflow/internal/port"
	"github.com/vk/gridflow/internal/typeid"
)

// intSource exposes one output port "out" carrying int. When nested is true,
// it also builds a child intSink named "child" wired during the test.
type intSource struct {
	*module.Base
	child *intSink
}

func (m *intSource) Initialize(b module.Builder) error {
	name, err := m.ComponentName("out")
	if err != nil {
		return err
	}
	n, err := b.MakeNode(name, typeid.Of[int]())
	if err != nil {
		return err
	}
	if err := m.RegisterOutputPort("out", n, typeid.Of[int]()); err != nil {
		return err
	}

	if m.child == nil {
		return nil
	}
	return b.Build(m.child)
}

// intSink exposes one input port "in" carrying int.
type intSink struct {
	*module.Base
	inputType typeid.Token
}

func (m *intSink) Initialize(b module.Builder) error {
	typ := m.inputType
	if typ.IsZero() {
		typ = typeid.Of[int]()
	}
	name, err := m.ComponentName("in")
	if err != nil {
		return err
	}
	n, err := b.MakeNode(name, typ)
	if err != nil {
		return err
	}
	return m.RegisterInputPort("in", n, typ)
}

func newSource(t *testing.T, name string) *intSource {
	t.Helper()
	base, err := module.NewBase(name, modconfig.Empty())
	require.NoError(t, err)
	return &intSource{Base: base}
}

func newSink(t *testing.T, base *module.Base) *intSink {
	t.Helper()
	return &intSink{Base: base}
}

func TestWireParentToChild(t *testing.T) {
	b := New(context.Background())

	// Module A registers output "out" of type int; module B, a child of A
	// named "child", registers input "in" of type int.
	a := newSource(t, "A")
	childBase, err := module.NewChildBase(a.Base, "child", modconfig.Empty())
	require.NoError(t, err)
	a.child = newSink(t, childBase)

	require.NoError(t, b.Build(a))
	assert.Equal(t, "A", a.ComponentPrefix())
	assert.Equal(t, "A/child", a.child.ComponentPrefix())

	outType, err := a.OutputPortType("out")
	require.NoError(t, err)
	inType, err := a.child.InputPortType("in")
	require.NoError(t, err)
	assert.True(t, outType.Equal(inType))

	require.NoError(t, b.ConnectPorts(a, "out", a.child, "in"))
	edges := b.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "A/out", edges[0].From.Name())
	assert.Equal(t, "A/child/in", edges[0].To.Name())
}

func TestConnectRejectsTypeMismatch(t *testing.T) {
	b := New(context.Background())

	src := newSource(t, "src")
	require.NoError(t, b.Build(src))

	sinkBase, err := module.NewBase("dst", modconfig.Empty())
	require.NoError(t, err)
	dst := &intSink{Base: sinkBase, inputType: typeid.Of[string]()}
	require.NoError(t, b.Build(dst))

	err = b.ConnectPorts(src, "out", dst, "in")
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Empty(t, b.Edges(), "no edge is recorded for a rejected connection")
}

func TestConnectUnknownPorts(t *testing.T) {
	b := New(context.Background())
	src := newSource(t, "src")
	dst := newSink(t, mustBase(t, "dst"))
	require.NoError(t, b.Build(src))
	require.NoError(t, b.Build(dst))

	err := b.ConnectPorts(src, "missing", dst, "in")
	require.ErrorIs(t, err, port.ErrUnknownPort)
	err = b.ConnectPorts(src, "out", dst, "missing")
	require.ErrorIs(t, err, port.ErrUnknownPort)
}

func TestDuplicateNodeNamesRejected(t *testing.T) {
	b := New(context.Background())
	_, err := b.MakeNode("shared/name", typeid.Of[int]())
	require.NoError(t, err)
	_, err = b.MakeNode("shared/name", typeid.Of[int]())
	require.ErrorIs(t, err, ErrDuplicateNode)

	// Two sibling modules built with the same name collide on their
	// component-scoped node names.
	require.NoError(t, b.Build(newSource(t, "twin")))
	err = b.Build(newSource(t, "twin"))
	require.Error(t, err)
}

func TestBuildTwiceThroughBuilder(t *testing.T) {
	b := New(context.Background())
	src := newSource(t, "once")
	require.NoError(t, b.Build(src))

	err := b.Build(src)
	require.Error(t, err)
	assert.Equal(t, []string{"out"}, src.OutputIDs())
}

func TestBuilderTracksModulesAndNodes(t *testing.T) {
	b := New(context.Background())
	src := newSource(t, "a")
	dst := newSink(t, mustBase(t, "b"))
	require.NoError(t, b.Build(src))
	require.NoError(t, b.Build(dst))

	assert.Equal(t, 2, b.Modules())
	got, ok := b.Module("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name())
	_, ok = b.Module("zzz")
	assert.False(t, ok)

	nodes := b.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "a/out", nodes[0].Name())
	assert.Equal(t, "b/in", nodes[1].Name())
}

func mustBase(t *testing.T, name string) *module.Base {
	t.Helper()
	base, err := module.NewBase(name, modconfig.Empty())
	require.NoError(t, err)
	return base
}
