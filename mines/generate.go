package mines

import "math/rand/v2"

// reservedCells is the size of the safe zone around the first click.
// It is subtracted from the mine budget even when the zone is clipped
// by the board edge.
const reservedCells = 9

func minesToPlace(s Settings) int {
	return min(s.Mines, s.Area()-reservedCells)
}

// placeMines lays out mines so that (sx, sy) and every cell within one
// square of it stay clear, then fills in the neighbour counts. Returns
// the number of mines placed.
func (b *board) placeMines(s Settings, sx, sy int, r *rand.Rand) int {
	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, len(b.cells))
	for y := range b.height {
		for x := range b.width {
			if absDiff(sy, y) > 1 || absDiff(sx, x) > 1 {
				candidates = append(candidates, y*b.width+x)
			}
		}
	}

	n := minesToPlace(s)
	if n > len(candidates) {
		panic(AssertionError{"not enough room for mines"})
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range max(n, 0) {
		i := r.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countNeighbors()

	if b.at(sx, sy).Mine {
		panic(AssertionError{"mine in starting cell"})
	}

	return max(n, 0)
}
