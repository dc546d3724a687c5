// Package wire describes the grounded source wire laid on the surface.
package wire

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooFewNodes = errors.New("wire: path needs at least two nodes")
	ErrNoLength    = errors.New("wire: path has zero total length")
)

// Node is a vertex of the wire path, m, origin at the wellhead.
type Node struct {
	X float64 `csv:"x" json:"x" yaml:"x"`
	Y float64 `csv:"y" json:"y" yaml:"y"`
}

// Segment is one straight piece of wire from A to B.
type Segment struct {
	A, B Node
}

func (s Segment) Length() float64 {
	return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
}

// Path is an ordered sequence of nodes; the current enters at the first node
// and returns through the ground at the last.
type Path struct {
	Nodes []Node
}

func NewPath(nodes ...Node) Path {
	return Path{Nodes: append([]Node(nil), nodes...)}
}

// Straight returns the two-node path from (x1, y1) to (x2, y2).
func Straight(x1, y1, x2, y2 float64) Path {
	return NewPath(Node{X: x1, Y: y1}, Node{X: x2, Y: y2})
}

func (p Path) Validate() error {
	if len(p.Nodes) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewNodes, len(p.Nodes))
	}
	for i, n := range p.Nodes {
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsInf(n.X, 0) || math.IsInf(n.Y, 0) {
			return fmt.Errorf("wire: node %d is not finite: (%g, %g)", i, n.X, n.Y)
		}
	}
	return nil
}

func (p Path) First() Node { return p.Nodes[0] }
func (p Path) Last() Node { return p.Nodes[len(p.Nodes)-1] }

// Segments returns every consecutive node pair, zero-length ones included.
func (p Path) Segments() []Segment {
	if len(p.Nodes) < 2 {
		return nil
	}
	segs := make([]Segment, len(p.Nodes)-1)
	for i := range segs {
		segs[i] = Segment{A: p.Nodes[i], B: p.Nodes[i+1]}
	}
	return segs
}

/*
Compact removes zero-length segments

A node is dropped when the segment leaving it has zero length. The last node
is always kept, so a repeated final node collapses onto the one before it.
*/
func (p Path) Compact() Path {
	if len(p.Nodes) == 0 {
		return Path{}
	}
	out := make([]Node, 0, len(p.Nodes))
	for i := 0; i < len(p.Nodes)-1; i++ {
		if (Segment{A: p.Nodes[i], B: p.Nodes[i+1]}).Length() > 0 {
			out = append(out, p.Nodes[i])
		}
	}
	out = append(out, p.Last())
	return Path{Nodes: out}
}

// SegmentLengths returns the lengths of the non-zero segments, m.
func (p Path) SegmentLengths() []float64 {
	segs := p.Compact().Segments()
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.Length()
	}
	return out
}

// Length is the total wire length, m.
func (p Path) Length() float64 {
	return floats.Sum(p.SegmentLengths())
}

// Load reads a path from a CSV file with x and y columns.
func Load(path string) (Path, error) {
	file, err := os.Open(path)
	if err != nil {
		return Path{}, err
	}
	defer file.Close()

	var nodes []Node
	if err := gocsv.UnmarshalFile(file, &nodes); err != nil {
		return Path{}, fmt.Errorf("wire: reading %s: %w", path, err)
	}
	p := Path{Nodes: nodes}
	if err := p.Validate(); err != nil {
		return Path{}, err
	}
	return p, nil
}

// Save writes the path as CSV with x and y columns.
func (p Path) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&p.Nodes, file)
}
