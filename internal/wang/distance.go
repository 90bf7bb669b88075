package wang

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Unreachable is the transition distance between colors that no chain of
// registered tiles connects.
const Unreachable = math.MaxInt32

// TransitionPenalty returns the transition distance between two colors.
// Color 0 is the wildcard.
func (s *Set) TransitionPenalty(a, b int) int {
	s.ensureDistances()

	if a == 0 && b == 0 {
		return 0
	}
	if a == 0 {
		return s.ColorAt(b).distance[0]
	}
	if b < 0 || b > len(s.colors) {
		violatef("wang: color %d out of range [0,%d]", b, len(s.colors))
	}

	return s.ColorAt(a).distance[b]
}

// MaximumColorDistance returns the largest finite transition distance, at least 1.
func (s *Set) MaximumColorDistance() int {
	s.ensureDistances()
	return s.maxDistance
}

// ensureDistances recomputes the distance rows when the set changed since the
// last computation.
func (s *Set) ensureDistances() {
	if s.distancesDirty {
		s.recalculateColorDistances()
	}
}

// recalculateColorDistances computes, for every color, the minimum number of
// tiles needed before it meets each other color.
//
// Two colors are adjacent when they share the corners of a registered tile, or
// its edges. Corners and edges are not connected to each other, so corner or
// edge sets do not see transitions to the unused fields. The wildcard takes
// part as node 0. Distances are breadth-first search depths from each color.
func (s *Set) recalculateColorDistances() {
	n := len(s.colors)
	adjacent := make([]mapset.Set[int], n+1)
	for i := range adjacent {
		adjacent[i] = mapset.New[int]()
	}

	link := func(group [4]int) {
		for _, a := range group {
			for _, b := range group {
				if a != b {
					adjacent[a].Put(b)
				}
			}
		}
	}

	for _, id := range s.tiles.order {
		var corners, edges [4]int
		for i := 0; i < 4; i++ {
			corners[i] = id.CornerColor(i)
			edges[i] = id.EdgeColor(i)
		}
		link(corners)
		link(edges)
	}

	maxDistance := 1
	for c := 1; c <= n; c++ {
		row := make([]int, n+1)
		for i := range row {
			row[i] = Unreachable
		}
		row[c] = 0

		queue := []int{c}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			adjacent[cur].Each(func(next int) {
				if row[next] != Unreachable {
					return
				}
				row[next] = row[cur] + 1
				if next != 0 && row[next] > maxDistance {
					maxDistance = row[next]
				}
				queue = append(queue, next)
			})
		}

		s.colors[c-1].distance = row
	}

	s.maxDistance = maxDistance
	s.distancesDirty = false
}
