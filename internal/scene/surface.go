// Package scene is the rendering surface the wire and its lightbulbs are
// added to.
package scene

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// WireNodeName tags the wire node.
const WireNodeName = "wireNode"

const lightbulbPrefix = "lightbulbNode_"

// LightbulbName returns the tag of the lightbulb at index.
func LightbulbName(index int) string {
	return lightbulbPrefix + strconv.Itoa(index)
}

// IsLightbulbName reports whether name tags a lightbulb.
func IsLightbulbName(name string) bool {
	rest, ok := strings.CutPrefix(name, lightbulbPrefix)
	if !ok || rest == "" {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

// Node is anything that can be added to a Surface.
type Node interface {
	Name() string
	// Stop cancels any pending animation. The surface stops a node before
	// removing it.
	Stop()
}

// Size is the scene extent in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Surface holds the visible nodes in insertion order. It is mutated from a
// single goroutine.
type Surface struct {
	size  Size
	nodes []Node
}

// NewSurface creates an empty surface of the given size.
func NewSurface(size Size) *Surface {
	return &Surface{size: size}
}

// Size returns the surface extent.
func (s *Surface) Size() Size { return s.size }

// SetSize changes the surface extent. Existing nodes are left in place.
func (s *Surface) SetSize(size Size) { s.size = size }

// AddVisual appends n to the surface.
func (s *Surface) AddVisual(n Node) {
	s.nodes = append(s.nodes, n)
}

// RemoveVisual stops n and removes it. It reports whether n was present.
func (s *Surface) RemoveVisual(n Node) bool {
	for i, c := range s.nodes {
		if c == n {
			c.Stop()
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveWhere stops and removes every node for which match returns true, and
// returns how many were removed.
func (s *Surface) RemoveWhere(match func(Node) bool) int {
	kept := s.nodes[:0]
	removed := 0
	for _, n := range s.nodes {
		if match(n) {
			n.Stop()
			removed++
			continue
		}
		kept = append(kept, n)
	}
	clear(s.nodes[len(kept):])
	s.nodes = kept
	return removed
}

// Children returns the nodes in insertion order.
func (s *Surface) Children() []Node {
	return append([]Node(nil), s.nodes...)
}

// ChildNamed returns the first node tagged name.
func (s *Surface) ChildNamed(name string) (Node, bool) {
	for _, n := range s.nodes {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// Len returns the number of nodes.
func (s *Surface) Len() int { return len(s.nodes) }

// WireNode is the drawn wire: the sampled polyline of the path.
type WireNode struct {
	Points []r2.Vec
}

// Name implements Node.
func (w *WireNode) Name() string { return WireNodeName }

// Stop implements Node. The wire does not animate.
func (w *WireNode) Stop() {}
