package wang

import "github.com/woozymasta/wang-tool/internal/tileset"

// IDFromSurrounding returns the id a tile needs to fit the ids of its eight
// neighbours, given in Index order:
//
//	7|0|1
//	6|X|2
//	5|4|3
//
// Each edge comes from the neighbour across it. Each corner comes from the
// diagonal neighbour, or else from one of the two edge neighbours sharing it.
// Missing neighbours (zero ids) leave wildcards, and fields not applicable to
// the set type are always zero.
func (s *Set) IDFromSurrounding(surrounding [NumIndexes]ID) ID {
	var id ID

	for i := 0; i < NumEdges; i++ {
		id.SetEdgeColor(i, surrounding[i*2].EdgeColor((i+2)%NumEdges))
	}

	for i := 0; i < NumCorners; i++ {
		c := surrounding[i*2+1].CornerColor((i + 2) % NumCorners)
		if c == 0 {
			c = surrounding[i*2].CornerColor((i + 1) % NumCorners)
		}
		if c == 0 {
			c = surrounding[(i*2+2)%NumIndexes].CornerColor((i + 3) % NumCorners)
		}
		id.SetCornerColor(i, c)
	}

	return id & s.typ.Mask()
}

// IDFromSurroundingCells is IDFromSurrounding for placed cells. Cells without
// a registration in this set count as missing.
func (s *Set) IDFromSurroundingCells(cells [NumIndexes]tileset.Cell) ID {
	var ids [NumIndexes]ID
	for i, c := range cells {
		ids[i] = s.IDOfCell(c)
	}

	return s.IDFromSurrounding(ids)
}
