package ofc

// Drive loads every cell of the grid by fOut. It runs once per tick before
// relaxation.
func Drive(g *StressGrid, fOut float64) {
	for i := range g.data {
		g.data[i] += fOut
	}
}
