package export

import (
	"fmt"
	"math"
)

// All geometry is EMU. 1 inch = 914400 EMU.
const emuPerInch = 914400

// inch converts inches to EMU.
func inch(v float64) int64 {
	return int64(math.Round(v * emuPerInch))
}

// Theme colors (ARGB). The alpha byte carries the panel/hairline
// transparency of the original deck design.
const (
	colorInk        = "FFEAF2FF" // near-white body text
	colorMuted      = "FFBECDE6" // secondary text
	colorBackground = "FF0B1020" // slide background
	colorPanel      = "BF020617" // deep navy panel, 25% transparent
	colorCardPanel  = "D1020617" // deep navy card, 18% transparent
	colorHairline   = "26FFFFFF" // white outline, 85% transparent
	colorCardLine   = "24FFFFFF" // white outline, 86% transparent

	colorCyan   = "FF6EE7FF"
	colorPurple = "FFA78BFA"
	colorGreen  = "FF34D399"
	colorAmber  = "FFF59E0B"
)

// Point is a position on the slide in EMU.
type Point struct {
	X int64
	Y int64
}

// Rect is a shape placement in EMU.
type Rect struct {
	X int64
	Y int64
	W int64
	H int64
}

// Edge names a side of a Rect. Connectors attach at edge midpoints.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// EdgeMid returns the midpoint of the given edge.
func (r Rect) EdgeMid(e Edge) Point {
	switch e {
	case EdgeLeft:
		return Point{X: r.X, Y: r.Y + r.H/2}
	case EdgeRight:
		return Point{X: r.X + r.W, Y: r.Y + r.H/2}
	case EdgeTop:
		return Point{X: r.X + r.W/2, Y: r.Y}
	default:
		return Point{X: r.X + r.W/2, Y: r.Y + r.H}
	}
}

// MetricCard is a summary card with a colored accent bar and a
// heading/value text pair.
type MetricCard struct {
	Heading string
	Value   string
	Accent  string // ARGB accent color
	Box     Rect
}

// FlowBox is a process-diagram step: a filled box with an accent outline
// and one or more centered bold text lines.
type FlowBox struct {
	ID     string
	Lines  []string
	Accent string // ARGB outline color
	Box    Rect
}

// BulletBlock is a plain text block, one paragraph per item.
type BulletBlock struct {
	Items    []string
	Box      Rect
	FontSize int
}

// ImagePlacement places a named image asset on the slide.
type ImagePlacement struct {
	Asset string
	Box   Rect
}

// Arrow is a straight connector between two flow boxes, attached at the
// midpoints of the named edges. Color defaults to the muted theme color.
type Arrow struct {
	From     string
	To       string
	FromEdge Edge
	ToEdge   Edge
	Color    string
}

// SlideContent is the full declarative content of one slide. Every field
// is a literal constant; nothing is computed at build time except the
// connector endpoints derived from flow-box geometry.
type SlideContent struct {
	Title    string
	Subtitle string
	Footer   string
	Cover    string // asset drawn full-bleed behind the title block
	Images   []ImagePlacement
	Cards    []MetricCard
	Boxes    []FlowBox
	Arrows   []Arrow
	Bullets  []BulletBlock
}

// DeckContent is an ordered sequence of slides plus document properties.
type DeckContent struct {
	Title  string
	Author string
	Slides []SlideContent
}

// FindBox returns the flow box with the given ID.
func (s *SlideContent) FindBox(id string) (FlowBox, bool) {
	for _, b := range s.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return FlowBox{}, false
}

// ResolveArrow computes the connector endpoints from the geometry of the
// referenced flow boxes.
func (s *SlideContent) ResolveArrow(a Arrow) (Point, Point, error) {
	from, ok := s.FindBox(a.From)
	if !ok {
		return Point{}, Point{}, fmt.Errorf("arrow references unknown box %q", a.From)
	}
	to, ok := s.FindBox(a.To)
	if !ok {
		return Point{}, Point{}, fmt.Errorf("arrow references unknown box %q", a.To)
	}
	return from.Box.EdgeMid(a.FromEdge), to.Box.EdgeMid(a.ToEdge), nil
}
