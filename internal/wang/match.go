package wang

import (
	"math/rand"
	"sort"
)

// Candidate is a registered id ranked against a target id.
type Candidate struct {
	ID      ID  // registered id
	Penalty int // summed transition penalty, 0 for a perfect fit
}

// Penalty returns how far candidate is from target: the sum of the transition
// penalties of every applicable field where target has a color. It reports
// ok=false when one of those fields cannot transition at all.
func (s *Set) Penalty(target, candidate ID) (int, bool) {
	mask := s.typ.Mask()
	total := 0
	for i := Index(0); i < NumIndexes; i++ {
		if i.Mask()&mask == 0 {
			continue
		}

		want := target.IndexColor(i)
		if want == 0 {
			continue
		}

		got := candidate.IndexColor(i)
		if got == want {
			continue
		}

		p := s.TransitionPenalty(want, got)
		if p == Unreachable {
			return 0, false
		}
		total += p
	}

	return total, true
}

// Candidates ranks every registered id against target, lowest penalty first.
// Equal penalties keep registration order. Ids that cannot transition are left out.
func (s *Set) Candidates(target ID) []Candidate {
	var out []Candidate
	for _, id := range s.tiles.order {
		if p, ok := s.Penalty(target, id); ok {
			out = append(out, Candidate{ID: id, Penalty: p})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Penalty < out[j].Penalty })

	return out
}

// FindBestMatch returns a tile for target: a tile registered under target
// itself, else one under the lowest-penalty id (the earliest registered on
// ties). Among tiles sharing that id one is drawn with rng, weighted by
// TileProbability; a nil rng takes the first. An empty or unmatched set
// reports ok=false.
func (s *Set) FindBestMatch(target ID, rng *rand.Rand) (Tile, bool) {
	if s.tiles.has(target) {
		return s.pickTile(s.tiles.byID[target], rng), true
	}

	best := ID(0)
	bestPenalty := -1
	for _, id := range s.tiles.order {
		p, ok := s.Penalty(target, id)
		if !ok {
			continue
		}
		if bestPenalty < 0 || p < bestPenalty {
			best, bestPenalty = id, p
		}
	}

	if bestPenalty < 0 {
		return Tile{}, false
	}

	return s.pickTile(s.tiles.byID[best], rng), true
}

// pickTile draws one of tiles weighted by probability.
func (s *Set) pickTile(tiles []Tile, rng *rand.Rand) Tile {
	if rng == nil || len(tiles) == 1 {
		return tiles[0]
	}

	weights := make([]float64, len(tiles))
	total := 0.0
	for i, t := range tiles {
		weights[i] = s.TileProbability(t)
		total += weights[i]
	}
	if total <= 0 {
		return tiles[0]
	}

	r := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return tiles[i]
		}
	}

	return tiles[len(tiles)-1]
}
