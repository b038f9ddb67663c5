package game

import "fmt"

//Cell is the state of a single board position
type Cell bool

const (
	Dead Cell = false
	Live Cell = true
)

//Flip inverts the cell state
func (c *Cell) Flip() {
	*c = !*c
}

//String renders the cell as a one-character marker, "O" for live, "X" for dead
func (c Cell) String() string {
	if c == Live {
		return "O"
	}
	return "X"
}

//Position is a board coordinate, zero-based from the top-left corner
type Position struct {
	X int
	Y int
}

//Entry couples a board position with the cell found there
type Entry struct {
	Pos  Position
	Cell Cell
}

//Board is a fixed-size field of cells
//cells are stored in one dense buffer, row by row
type Board struct {
	cells  []Cell
	width  int
	height int
}

//NewBoard creates an all-dead board
//both dimensions must be at least 1
func NewBoard(width int, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board cannot be zero sized: %vx%v", width, height)
	}
	return &Board{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

//CheckIndex reports whether the position lies inside the board
func (b *Board) CheckIndex(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

//Get returns the cell at p, panics when p is outside the board
func (b *Board) Get(p Position) Cell {
	b.mustContain(p)
	return b.cells[p.Y*b.width+p.X]
}

//Set stores the cell at p, panics when p is outside the board
func (b *Board) Set(p Position, c Cell) {
	b.mustContain(p)
	b.cells[p.Y*b.width+p.X] = c
}

//Flip inverts the cell at p, panics when p is outside the board
func (b *Board) Flip(p Position) {
	b.mustContain(p)
	b.cells[p.Y*b.width+p.X] = !b.cells[p.Y*b.width+p.X]
}

func (b *Board) mustContain(p Position) {
	if !b.CheckIndex(p) {
		panic(fmt.Sprintf("position %v,%v is out of bound in board %vx%v", p.X, p.Y, b.width, b.height))
	}
}

//Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{cells: cells, width: b.width, height: b.height}
}

//Equal reports whether both boards have the same dimensions and cell states
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

//LiveCells counts the alive cells on the board
func (b *Board) LiveCells() (live int) {
	for _, c := range b.cells {
		if c == Live {
			live++
		}
	}
	return
}

//String dumps the board one row per line using the cell markers
func (b *Board) String() string {
	var s string
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			s += b.Get(Position{x, y}).String()
		}
		s += "\n"
	}
	return s
}

//Iter starts a fresh traversal over every board position
//the order is column by column: all cells of column 0 top to bottom,
//then column 1, and so on
func (b *Board) Iter() *BoardIter {
	return &BoardIter{board: b}
}

//BoardIter walks every board position exactly once
type BoardIter struct {
	board *Board
	x     int
	y     int
}

//Next returns the following entry, ok is false once the traversal is done
func (it *BoardIter) Next() (e Entry, ok bool) {
	if it.x >= it.board.width {
		return Entry{}, false
	}
	p := Position{it.x, it.y}
	e = Entry{Pos: p, Cell: it.board.Get(p)}
	it.y++
	if it.y >= it.board.height {
		it.y = 0
		it.x++
	}
	return e, true
}
