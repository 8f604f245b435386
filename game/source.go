package game

// SourceID addresses a tile source: 0..len(Displays)-1 for displays,
// PoolSource for the shared pool.
type SourceID int

const PoolSource SourceID = -1

// SourceTiles returns the tiles currently in the given source.
func (g *GameState) SourceTiles(id SourceID) []Color {
	if id == PoolSource {
		return g.Pool
	}
	return g.Displays[id]
}

// SourceColors returns the distinct draftable colors in a source. The
// marker token is never draftable by itself.
func (g *GameState) SourceColors(id SourceID) []Color {
	var seen [NumColors]bool
	var colors []Color
	for _, c := range g.SourceTiles(id) {
		if c == Marker || seen[c] {
			continue
		}
		seen[c] = true
		colors = append(colors, c)
	}
	return colors
}

func countColor(tiles []Color, c Color) int {
	n := 0
	for _, t := range tiles {
		if t == c {
			n++
		}
	}
	return n
}

func removeColor(tiles []Color, c Color) (taken int, rest []Color) {
	rest = tiles[:0]
	for _, t := range tiles {
		if t == c {
			taken++
		} else {
			rest = append(rest, t)
		}
	}
	return taken, rest
}

// draft removes every tile of the requested color from the source. A
// display routes its leftover tiles to the pool; a pool draft also claims
// the marker token when it is still there.
func (g *GameState) draft(id SourceID, c Color) (taken int, marker bool, err error) {
	if c < 0 || c >= NumColors {
		return 0, false, ErrInvalidDraft
	}
	if id == PoolSource {
		if countColor(g.Pool, c) == 0 {
			return 0, false, ErrInvalidDraft
		}
		taken, g.Pool = removeColor(g.Pool, c)
		if g.MarkerInPool {
			var n int
			n, g.Pool = removeColor(g.Pool, Marker)
			g.MarkerInPool = false
			marker = n > 0
		}
		return taken, marker, nil
	}
	display := g.Displays[id]
	if countColor(display, c) == 0 {
		return 0, false, ErrInvalidDraft
	}
	for _, t := range display {
		if t == c {
			taken++
		} else {
			g.Pool = append(g.Pool, t)
		}
	}
	g.Displays[id] = display[:0]
	return taken, false, nil
}

// refillDisplays deals tiles from the bag into every display at round
// start, reshuffling the discard into the bag when it runs dry. The pool
// receives the marker token.
func (g *GameState) refillDisplays() {
	for i := range g.Displays {
		g.Displays[i] = g.Displays[i][:0]
		for len(g.Displays[i]) < DisplaySize {
			if len(g.Bag) == 0 {
				if len(g.Discard) == 0 {
					break
				}
				g.Bag = append(g.Bag, g.Discard...)
				g.Discard = g.Discard[:0]
				g.shuffleBag()
			}
			last := len(g.Bag) - 1
			g.Displays[i] = append(g.Displays[i], g.Bag[last])
			g.Bag = g.Bag[:last]
		}
	}
	g.Pool = g.Pool[:0]
	g.MarkerInPool = true
	g.Pool = append(g.Pool, Marker)
}

func (g *GameState) shuffleBag() {
	g.rng.Shuffle(len(g.Bag), func(i, j int) {
		g.Bag[i], g.Bag[j] = g.Bag[j], g.Bag[i]
	})
}
