package layout

import "strings"

// CellStatus is what a grid cell may hold.
type CellStatus uint8

const (
	CellAllowed  CellStatus = iota // free, may receive an obstacle
	CellPath                       // part of the carved corridor, never an obstacle
	CellOccupied                   // holds an obstacle
)

// Cell addresses one grid cell.
type Cell struct {
	Row, Col int
}

// Grid is a rows×cols matrix of cell statuses.
type Grid struct {
	rows, cols int
	cells      []CellStatus
}

// NewGrid creates a grid with every cell allowed.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]CellStatus, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the status of a cell. Out-of-range cells read as occupied.
func (g *Grid) At(row, col int) CellStatus {
	if !g.inside(row, col) {
		return CellOccupied
	}
	return g.cells[row*g.cols+col]
}

// Set changes the status of a cell. Out-of-range cells are ignored.
func (g *Grid) Set(row, col int, s CellStatus) {
	if g.inside(row, col) {
		g.cells[row*g.cols+col] = s
	}
}

// Reset marks every cell allowed.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Count returns how many cells have the given status.
func (g *Grid) Count(s CellStatus) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Cells lists the cells with the given status in row-major order.
func (g *Grid) Cells(s CellStatus) []Cell {
	var out []Cell
	for i, c := range g.cells {
		if c == s {
			out = append(out, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Reachable reports whether some cell in the first column connects to some
// cell in the last column through non-occupied cells, moving in four
// directions.
func (g *Grid) Reachable() bool {
	seen := make([]bool, len(g.cells))
	queue := make([]Cell, 0, len(g.cells))
	for r := 0; r < g.rows; r++ {
		if g.At(r, 0) != CellOccupied {
			seen[r*g.cols] = true
			queue = append(queue, Cell{Row: r, Col: 0})
		}
	}

	steps := [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Col == g.cols-1 {
			return true
		}
		for _, s := range steps {
			r, c := cur.Row+s.Row, cur.Col+s.Col
			if !g.inside(r, c) || seen[r*g.cols+c] || g.At(r, c) == CellOccupied {
				continue
			}
			seen[r*g.cols+c] = true
			queue = append(queue, Cell{Row: r, Col: c})
		}
	}
	return false
}

// String draws the grid: X for path, O for obstacles, '.' for free cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			switch g.At(r, c) {
			case CellPath:
				sb.WriteByte('X')
			case CellOccupied:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
