package main

import (
	"math"

	"github.com/automoto/lurk/shared/grid"
	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"
)

// NavGrid is the scripted player's own view of the walkable cells. It is
// stricter than the agents' grid: diagonal steps need both orthogonal cells
// open, so a sliding hitbox never snags on a corner.
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // 2D grid of nodes
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool
	Grid     *NavGrid
}

var navDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

func (g *NavGrid) walkable(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && g.Nodes[y][x].Walkable
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range navDirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if !n.Grid.walkable(nx, ny) {
			continue
		}
		if d.dx != 0 && d.dy != 0 && (!n.Grid.walkable(n.X+d.dx, n.Y) || !n.Grid.walkable(n.X, n.Y+d.dy)) {
			continue
		}
		neighbors = append(neighbors, n.Grid.Nodes[ny][nx])
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// CreateNavGrid probes the barrier bodies of space cell by cell.
func CreateNavGrid(space *resolv.Space, size int, cellSize float64) *NavGrid {
	g := &NavGrid{
		Width:    size,
		Height:   size,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, size),
	}

	for y := 0; y < size; y++ {
		g.Nodes[y] = make([]*NavNode, size)
		for x := 0; x < size; x++ {
			g.Nodes[y][x] = &NavNode{X: x, Y: y, Walkable: true, Grid: g}
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			worldX := float64(x) * cellSize
			worldY := float64(y) * cellSize

			testObj := resolv.NewObject(worldX+2, worldY+2, cellSize-4, cellSize-4)
			space.Add(testObj)
			if c := testObj.Check(0, 0, grid.TagBarrier); c != nil {
				for _, o := range c.Objects {
					if n, ok := o.Data.(*grid.Node); ok && n.Col == x && n.Row == y {
						g.Nodes[y][x].Walkable = false
					}
				}
			}
			space.Remove(testObj)
		}
	}

	return g
}

// FindPath uses go-astar to find a path between world coordinates. The
// result runs from start to goal; nil means no path.
func (g *NavGrid) FindPath(startX, startY, goalX, goalY float64) []*NavNode {
	sx := clampInt(int(startX/g.CellSize), 0, g.Width-1)
	sy := clampInt(int(startY/g.CellSize), 0, g.Height-1)
	gx := clampInt(int(goalX/g.CellSize), 0, g.Width-1)
	gy := clampInt(int(goalY/g.CellSize), 0, g.Height-1)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]
	if !startNode.Walkable || !goalNode.Walkable {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns the path goal first.
	result := make([]*NavNode, len(path))
	for i, p := range path {
		result[len(path)-1-i] = p.(*NavNode)
	}
	return result
}

// GridToWorld converts grid coordinates to world coordinates (center of cell)
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
