package entryPointGraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearize(t *testing.T) {
	t.Run("依存の連鎖が依存先から順に並ぶこと", func(t *testing.T) {
		// a -> b -> c
		g := NewGraph([]string{"a", "b", "c"})
		g.AddDependency("a", "b")
		g.AddDependency("b", "c")

		assert.Equal(t, []string{"c", "b", "a"}, g.Linearize())
	})

	t.Run("依存が無い場合は発見順が保たれること", func(t *testing.T) {
		g := NewGraph([]string{"x", "y"})

		assert.Equal(t, []string{"x", "y"}, g.Linearize())
	})

	t.Run("全エントリポイントがちょうど1回ずつ現れること", func(t *testing.T) {
		// cはaとbの両方から依存される
		g := NewGraph([]string{"a", "b", "c", "d"})
		g.AddDependency("a", "c")
		g.AddDependency("b", "c")
		g.AddDependency("d", "a")

		order := g.Linearize()

		assert.Len(t, order, 4)
		assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, order)
	})

	t.Run("循環があってもエラーにならず全ノードが1回ずつ現れること", func(t *testing.T) {
		// a -> b -> a
		g := NewGraph([]string{"a", "b"})
		g.AddDependency("a", "b")
		g.AddDependency("b", "a")

		order := g.Linearize()

		assert.Len(t, order, 2)
		assert.ElementsMatch(t, []string{"a", "b"}, order)
	})

	t.Run("非循環の辺について依存先が依存元より前に並ぶこと", func(t *testing.T) {
		g := NewGraph([]string{"form", "button", "core", "a11y"})
		g.AddDependency("form", "core")
		g.AddDependency("form", "a11y")
		g.AddDependency("button", "core")
		g.AddDependency("a11y", "core")

		order := g.Linearize()

		index := make(map[string]int, len(order))
		for i, name := range order {
			index[name] = i
		}
		assert.Less(t, index["core"], index["form"])
		assert.Less(t, index["a11y"], index["form"])
		assert.Less(t, index["core"], index["button"])
		assert.Less(t, index["core"], index["a11y"])
	})

	t.Run("複数回呼んでも同じ結果になること", func(t *testing.T) {
		g := NewGraph([]string{"a", "b", "c"})
		g.AddDependency("a", "b")
		g.AddDependency("c", "b")

		first := g.Linearize()
		second := g.Linearize()

		assert.Equal(t, first, second)
	})
}

func TestAddDependency(t *testing.T) {
	t.Run("未知のエントリポイントへの依存は無視されること", func(t *testing.T) {
		g := NewGraph([]string{"a", "b"})
		g.AddDependency("a", "z")

		assert.Equal(t, []string{"a", "b"}, g.Linearize())
	})

	t.Run("自己参照は無視されること", func(t *testing.T) {
		g := NewGraph([]string{"a"})
		g.AddDependency("a", "a")

		assert.Equal(t, []string{"a"}, g.Linearize())
		assert.Empty(t, g.Cycles())
	})

	t.Run("同じ依存を複数回追加しても辺は1本にまとまること", func(t *testing.T) {
		g := NewGraph([]string{"a", "b"})
		g.AddDependency("a", "b")
		g.AddDependency("a", "b")

		assert.Equal(t, []string{"b", "a"}, g.Linearize())
		assert.Empty(t, g.Cycles())
	})
}

func TestCycles(t *testing.T) {
	t.Run("循環が無い場合は何も返さないこと", func(t *testing.T) {
		g := NewGraph([]string{"a", "b", "c"})
		g.AddDependency("a", "b")
		g.AddDependency("b", "c")

		assert.Empty(t, g.Cycles())
	})

	t.Run("循環を構成するエントリポイントが検出されること", func(t *testing.T) {
		g := NewGraph([]string{"a", "b", "c"})
		g.AddDependency("a", "b")
		g.AddDependency("b", "a")
		g.AddDependency("c", "a")

		cycles := g.Cycles()

		assert.Len(t, cycles, 1)
		assert.ElementsMatch(t, []string{"a", "b"}, cycles[0])
	})
}
