package list

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linked.list")
	defer teardown()
	//
	l := New[int]()
	if !l.Pop().IsNothing() {
		t.Fatal("expected Pop on empty list to return Nothing")
	}
	l.Push(3)
	l.Push(2)
	l.Push(1)
	assert.Equal(t, 1, l.Pop().WithDefault(0))
	assert.Equal(t, 2, l.Pop().WithDefault(0))
	l.Push(5)
	l.Push(4)
	assert.Equal(t, 4, l.Pop().WithDefault(0))
	assert.Equal(t, 5, l.Pop().WithDefault(0))
	assert.Equal(t, 3, l.Pop().WithDefault(0))
	for i := 0; i < 3; i++ {
		assert.True(t, l.Pop().IsNothing(), "Pop on drained list must keep returning Nothing")
	}
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
}

func TestLIFO(t *testing.T) {
	words := []string{"one", "two", "three", "four", "five"}
	var l List[string] // zero value is usable
	for _, w := range words {
		l.Push(w)
	}
	require.Equal(t, len(words), l.Len())
	for i := len(words) - 1; i >= 0; i-- {
		w, ok := l.Pop().Get()
		if !ok || w != words[i] {
			t.Errorf("expected Pop to return %q, got %q (ok=%v)", words[i], w, ok)
		}
	}
}

func TestPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linked.list")
	defer teardown()
	//
	l := New[int]()
	assert.True(t, l.Peek().IsNothing())
	assert.True(t, l.PeekMut().IsNothing())
	l.Push(3)
	l.Push(2)
	l.Push(1)
	assert.Equal(t, 1, l.Peek().WithDefault(0))
	assert.Equal(t, 3, l.Len(), "Peek must not remove elements")

	var p *int
	switch m := l.PeekMut().Match(); m {
	case m.Just(&p):
		*p = 42
	case m.Nothing():
		t.Fatal("expected PeekMut on non-empty list to return a pointer")
	}
	assert.Equal(t, 42, l.Peek().WithDefault(0))
	assert.Equal(t, 42, l.Pop().WithDefault(0))
	assert.Equal(t, 2, l.Peek().WithDefault(0))
}

func TestDropHook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linked.list")
	defer teardown()
	//
	var dropped []int
	l := New(OnDrop(func(x int) {
		dropped = append(dropped, x)
	}))
	l.Push(1)
	l.Push(2)
	l.Push(3)
	l.Pop()
	l.Drop()
	assert.Equal(t, []int{2, 1}, dropped, "popped elements must not be reported by Drop")
	assert.True(t, l.IsEmpty())
	l.Drop() // no-op
	assert.Len(t, dropped, 2)
}

func TestLongList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linked.list")
	defer teardown()
	//
	const n = 100000
	cnt := 0
	l := New(OnDrop(func(int) { cnt++ }))
	for i := 0; i < n; i++ {
		l.Push(i)
	}
	l.Drop()
	if cnt != n {
		t.Errorf("expected teardown to release %d nodes, released %d", n, cnt)
	}
	assert.Equal(t, 0, l.Len())
}

func TestString(t *testing.T) {
	l := New[int]()
	assert.Equal(t, "[]", l.String())
	l.Push(3)
	l.Push(2)
	l.Push(1)
	assert.Equal(t, "[1 2 3]", l.String())
}
