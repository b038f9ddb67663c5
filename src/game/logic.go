package game

//Lifecycle marks the transition a cell went through during the latest generation
type Lifecycle int

const (
	Died Lifecycle = iota
	Born
)

//LifeLog records which cells were born or died during the most recent
//Advance call, keyed by position
//it only carries rendering emphasis, the board itself stays two-state
type LifeLog map[Position]Lifecycle

//Advance computes the next generation in place and reports whether any
//cell changed state
//the new state of every cell depends only on a snapshot taken before the
//first write, so all cells update simultaneously
//when log is not nil it is cleared and refilled with this generation's
//births and deaths
func Advance(b *Board, log LifeLog) bool {
	for p := range log {
		delete(log, p)
	}
	snapshot := b.Clone()
	for it := snapshot.Iter(); ; {
		e, ok := it.Next()
		if !ok {
			break
		}
		liveNeighbours := countLiveNeighbours(snapshot, e.Pos)
		next := e.Cell
		switch {
		case e.Cell == Dead && liveNeighbours == 3:
			next = Live
			if log != nil {
				log[e.Pos] = Born
			}
		case e.Cell == Live && (liveNeighbours < 2 || liveNeighbours > 3):
			next = Dead
			if log != nil {
				log[e.Pos] = Died
			}
		}
		b.Set(e.Pos, next)
	}
	return !b.Equal(snapshot)
}

//Resize rebuilds the board at the new dimensions
//live cells that still fit are kept, the rest are silently dropped
func Resize(b *Board, width int, height int) (*Board, error) {
	resized, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	for it := b.Iter(); ; {
		e, ok := it.Next()
		if !ok {
			break
		}
		if e.Cell == Live && resized.CheckIndex(e.Pos) {
			resized.Set(e.Pos, Live)
		}
	}
	return resized, nil
}

//countLiveNeighbours counts the live cells among the 8 positions around p
//neighbour coordinates wrap over the board edges, so the field behaves
//as a torus, p itself is excluded
func countLiveNeighbours(b *Board, p Position) (live int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{
				X: wrap(p.X+dx, b.width),
				Y: wrap(p.Y+dy, b.height),
			}
			if b.Get(n) == Live {
				live++
			}
		}
	}
	return
}

//wrap maps v onto [0, size) keeping the remainder non-negative
func wrap(v int, size int) int {
	return (v%size + size) % size
}
