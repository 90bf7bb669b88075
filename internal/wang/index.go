package wang

// tileIndex maps IDs to the Wang tiles registered under them and tile info
// keys back to their ID. Both directions only change through insert and remove.
type tileIndex struct {
	byID  map[ID][]Tile // registered tiles per id, in registration order
	byKey map[uint32]ID // tile info key -> id
	order []ID          // distinct ids in first registration order
	count int           // number of registered tiles
}

func newTileIndex() tileIndex {
	return tileIndex{byID: map[ID][]Tile{}, byKey: map[uint32]ID{}}
}

// idOf returns the id registered for a tile info key.
func (x *tileIndex) idOf(key uint32) (ID, bool) {
	id, ok := x.byKey[key]
	return id, ok
}

// has reports whether any tile is registered under id.
func (x *tileIndex) has(id ID) bool {
	return len(x.byID[id]) > 0
}

// insert registers t and reports whether its id was not registered before.
// The tile info key of t must not be registered.
func (x *tileIndex) insert(t Tile) bool {
	list, existed := x.byID[t.ID]
	if !existed {
		x.order = append(x.order, t.ID)
	}

	x.byID[t.ID] = append(list, t)
	x.byKey[t.key()] = t.ID
	x.count++

	return !existed
}

// remove unregisters the tile stored under key. It returns the removed tile
// and whether its id has no tiles left.
func (x *tileIndex) remove(key uint32) (Tile, bool, bool) {
	id, ok := x.byKey[key]
	if !ok {
		return Tile{}, false, false
	}
	delete(x.byKey, key)

	list := x.byID[id]
	var removed Tile
	for i, t := range list {
		if t.key() == key {
			removed = t
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	x.count--

	if len(list) > 0 {
		x.byID[id] = list
		return removed, true, false
	}

	delete(x.byID, id)
	for i, o := range x.order {
		if o == id {
			x.order = append(x.order[:i:i], x.order[i+1:]...)
			break
		}
	}

	return removed, true, true
}

// tiles returns a copy of the tiles registered under id.
func (x *tileIndex) tiles(id ID) []Tile {
	return append([]Tile(nil), x.byID[id]...)
}

// ids returns the distinct registered ids in first registration order.
func (x *tileIndex) ids() []ID {
	return append([]ID(nil), x.order...)
}

// all returns every registered tile, grouped by id in registration order.
func (x *tileIndex) all() []Tile {
	out := make([]Tile, 0, x.count)
	for _, id := range x.order {
		out = append(out, x.byID[id]...)
	}

	return out
}
