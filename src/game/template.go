package game

import "math/rand"

//Template represents a named seeding pattern which can be used to settle
//the board with predefined data
type Template struct {
	Name        string
	Descr       string
	Coordinates []Position
}

//Templates holds the built-in seeding patterns, keyed by name
var Templates = map[string]Template{
	"diagonal": {
		"diagonal",
		"a diagonal line of up to 25 cells from the top-left corner",
		diagonal(25),
	},
	"glider": {
		"glider",
		"the classic glider travelling down-right",
		[]Position{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"blinker": {
		"blinker",
		"a period-2 oscillator",
		[]Position{{1, 2}, {2, 2}, {3, 2}},
	},
	"block": {
		"block",
		"a 2x2 still life",
		[]Position{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	},
}

//Settle brings the template's cells alive on the board
//coordinates outside the board are skipped
func (b *Board) Settle(t Template) {
	for _, p := range t.Coordinates {
		if b.CheckIndex(p) {
			b.Set(p, Live)
		}
	}
}

//SettleRandom populates the board with random live cells
func (b *Board) SettleRandom() {
	for i := 0; i < b.width*b.height; i++ {
		b.Set(Position{rand.Intn(b.width), rand.Intn(b.height)}, Live)
	}
}

func diagonal(n int) []Position {
	vc := make([]Position, n)
	for i := range vc {
		vc[i] = Position{i, i}
	}
	return vc
}
