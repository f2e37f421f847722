package match

// LevenshteinDistance returns the number of single-rune insertions,
// deletions and substitutions needed to turn a into b. It keeps two rows of
// length min(|a|,|b|)+1 rather than the full matrix.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for j := range previous {
		previous[j] = j
	}

	for i, ca := range ra {
		current[0] = i + 1
		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}
			current[j+1] = min3(
				previous[j+1]+1, // deletion
				current[j]+1,    // insertion
				previous[j]+cost,
			)
		}
		previous, current = current, previous
	}

	return previous[len(rb)]
}

func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
