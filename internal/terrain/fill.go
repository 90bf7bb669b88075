package terrain

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash"

	"github.com/woozymasta/wang-tool/internal/wang"
)

// Stats counts what Fill did.
type Stats struct {
	Filled      int // cells that received a tile
	Exact       int // filled cells whose tile fits every known neighbour field
	Approximate int // filled cells placed with a non-zero penalty
	Unmatched   int // empty cells no registered tile could serve
}

// Placement describes one cell filled by Fill.
type Placement struct {
	X, Y    int
	Target  wang.ID // id required by the neighbours
	Placed  wang.ID // id of the chosen tile
	Penalty int     // transition penalty between the two
}

// Fill places a tile from s into every empty cell, row by row. Each cell gets
// the best match for the id its already placed neighbours require. Tie breaks
// between tiles sharing an id draw from a generator seeded with the seed and
// the cell position, so the result only depends on seed and the input grid.
// When report is not nil it is called for every filled cell.
func Fill(g *Grid, s *wang.Set, seed uint64, report func(Placement)) Stats {
	var st Stats

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Cell(x, y).IsEmpty() {
				continue
			}

			target := s.IDFromSurroundingCells(g.Surrounding(x, y))
			wt, ok := s.FindBestMatch(target, cellRand(seed, x, y))
			if !ok {
				st.Unmatched++
				continue
			}

			g.SetCell(x, y, wt.MakeCell())
			st.Filled++

			penalty, _ := s.Penalty(target, wt.ID)
			if penalty == 0 {
				st.Exact++
			} else {
				st.Approximate++
			}

			if report != nil {
				report(Placement{X: x, Y: y, Target: target, Placed: wt.ID, Penalty: penalty})
			}
		}
	}

	return st
}

// Mismatches returns the number of neighbour pairs whose shared fields
// disagree. Only fields set on both sides are compared; empty or foreign
// cells are skipped.
func Mismatches(g *Grid, s *wang.Set) int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			id := s.IDOfCell(g.Cell(x, y))
			if id == 0 {
				continue
			}

			// right and bottom neighbours, so each pair is seen once
			for _, i := range []wang.Index{wang.Right, wang.BottomRight, wang.Bottom, wang.BottomLeft} {
				nb := neighbours[i]
				other := s.IDOfCell(g.Cell(x+nb.dx, y+nb.dy))
				if other == 0 {
					continue
				}

				var want wang.ID
				want.UpdateToAdjacent(other, i)
				mask := want.Mask() & id.Mask() & s.Type().Mask()
				if id&mask != want&mask {
					n++
				}
			}
		}
	}

	return n
}

// cellRand returns the generator used for the cell at (x, y).
func cellRand(seed uint64, x, y int) *rand.Rand {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(x)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(y)))

	return rand.New(rand.NewSource(int64(xxhash.Sum64(buf[:]))))
}
