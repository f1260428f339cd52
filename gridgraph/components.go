package gridgraph

import (
	"sort"

	"github.com/katalvlaran/gridmap/core"
)

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells under 4-connectivity. Each island lists its map nodes sorted by
// (x, y); islands are ordered by their smallest node. An explorer started
// anywhere on an island can map exactly that island.
//
// Time:   O(W·H·4 + W·H·log(W·H)) including the sort.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]core.Node {
	seen := make([]bool, gg.Width*gg.Height)
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	var comps [][]core.Node

	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			if !gg.IsLand(col, row) || seen[gg.index(col, row)] {
				continue
			}
			// BFS to collect component
			queue := [][2]int{{col, row}}
			seen[gg.index(col, row)] = true
			var comp []core.Node

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, gg.NodeAt(u[0], u[1]))
				for _, d := range offsets {
					vc, vr := u[0]+d[0], u[1]+d[1]
					if !gg.InBounds(vc, vr) || !gg.IsLand(vc, vr) {
						continue
					}
					if vi := gg.index(vc, vr); !seen[vi] {
						seen[vi] = true
						queue = append(queue, [2]int{vc, vr})
					}
				}
			}
			sort.Slice(comp, func(i, j int) bool { return comp[i].Less(comp[j]) })
			comps = append(comps, comp)
		}
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0].Less(comps[j][0]) })

	return comps
}

// ComponentOf returns the island containing n, or nil when n is not land.
func (gg *GridGraph) ComponentOf(n core.Node) []core.Node {
	c, ok := gg.CellAt(n)
	if !ok || c.Value < gg.LandThreshold {
		return nil
	}
	for _, comp := range gg.ConnectedComponents() {
		i := sort.Search(len(comp), func(i int) bool { return !comp[i].Less(n) })
		if i < len(comp) && comp[i] == n {
			return comp
		}
	}

	return nil
}

// index maps (col,row) to a row-major index.
func (gg *GridGraph) index(col, row int) int {
	return row*gg.Width + col
}
