// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/gridmap/core"
)

// benchSide is the side length of the lattice used by the read benchmarks.
const benchSide = 64

// lattice builds a side×side grid where every cell is joined to its east
// and north neighbors with weight 1.
func lattice(b *testing.B, side int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			if x+1 < side {
				if err := g.AddEdge(core.At(x, y, core.East), core.At(x+1, y, core.West), 1); err != nil {
					b.Fatal(err)
				}
			}
			if y+1 < side {
				if err := g.AddEdge(core.At(x, y, core.North), core.At(x, y+1, core.South), 1); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return g
}

// BenchmarkAddEdge_Chain measures inserting fresh edges along a line.
func BenchmarkAddEdge_Chain(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(core.At(i, 0, core.East), core.At(i+1, 0, core.West), 1)
	}
}

// BenchmarkAddEdge_Overwrite measures repeated corrections of one edge.
func BenchmarkAddEdge_Overwrite(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(core.At(0, 0, core.North), core.At(0, 1, core.South), core.Weight(i%7+1))
	}
}

// BenchmarkNeighbors measures copying the exits of interior nodes.
func BenchmarkNeighbors(b *testing.B) {
	g := lattice(b, benchSide)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(core.Node{X: i % benchSide, Y: (i / benchSide) % benchSide})
	}
}

// BenchmarkClone measures deep-copying a 64×64 lattice.
func BenchmarkClone(b *testing.B) {
	g := lattice(b, benchSide)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkStats measures a full half-edge walk.
func BenchmarkStats(b *testing.B) {
	g := lattice(b, benchSide)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Stats()
	}
}
