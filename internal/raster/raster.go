// Package raster implements a minimal scanline polygon rasterizer for
// the software rendering fallback: just enough to fill the triangles,
// sprite quads, and stroked lines the CPU path needs when no GPU device
// is available, not a general vector graphics rasterizer.
package raster

import "math"

// RGBA is a straight-alpha color in [0,1] per channel. Defined locally
// so this package never has to import back up into the module for a
// color type.
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is the write surface a Rasterizer draws into.
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// SpanFiller lets a Pixmap fill a whole horizontal run at once instead of
// one SetPixel call per x; Rasterizer uses it opportunistically.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c RGBA)
}

// FillRule selects how overlapping sub-paths combine into a filled area.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Rasterizer fills and strokes closed polygons onto a Pixmap via
// scanline sweep, reusing one ActiveEdgeTable across calls to avoid
// reallocating per draw.
type Rasterizer struct {
	width, height int
	aet           *ActiveEdgeTable
}

// NewRasterizer creates a rasterizer sized for a target width x height
// Pixmap; width/height only bound the scanline sweep, not the polygons
// passed to Fill/Stroke.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height, aet: NewActiveEdgeTable()}
}

// Fill rasterizes a closed polygon given as a sequence of points (the
// last point need not repeat the first; Fill treats the path as closed
// regardless).
func (r *Rasterizer) Fill(pm Pixmap, points []Point, rule FillRule, c RGBA) {
	edges := buildEdges(points)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := edgeYBounds(edges)
	y0, y1 := clampRows(yMin, yMax, pm.Height())
	for y := y0; y < y1; y++ {
		r.scanline(pm, edges, float64(y)+0.5, rule, c)
	}
}

// Stroke approximates a polyline as a chain of rectangular quads, one
// per segment, each filled independently — adequate for the thin debug
// and geometry-command lines this renderer draws, not a general stroker
// with joins or caps.
func (r *Rasterizer) Stroke(pm Pixmap, points []Point, width float64, c RGBA) {
	if width < 1 {
		width = 1
	}
	for i := 0; i+1 < len(points); i++ {
		r.fillSegmentQuad(pm, points[i], points[i+1], width, c)
	}
}

func (r *Rasterizer) fillSegmentQuad(pm Pixmap, p0, p1 Point, width float64, c RGBA) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length < 0.001 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.Fill(pm, quad, FillRuleNonZero, c)
}

// buildEdges turns a (possibly open) point sequence into the closed set
// of non-horizontal edges a scanline sweep needs; horizontal segments
// never contribute a crossing and are dropped.
func buildEdges(points []Point) []Edge {
	if len(points) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		if math.Abs(p1.Y-p0.Y) < 0.001 {
			continue
		}
		edges = append(edges, NewEdge(p0, p1))
	}
	// Close the path if the caller didn't repeat the first point.
	last, first := points[len(points)-1], points[0]
	if last != first && math.Abs(first.Y-last.Y) >= 0.001 {
		edges = append(edges, NewEdge(last, first))
	}
	return edges
}

func edgeYBounds(edges []Edge) (yMin, yMax float64) {
	yMin, yMax = math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	return yMin, yMax
}

func clampRows(yMin, yMax float64, height int) (int, int) {
	y0, y1 := int(math.Floor(yMin)), int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > height {
		y1 = height
	}
	return y0, y1
}

func (r *Rasterizer) scanline(pm Pixmap, edges []Edge, y float64, rule FillRule, c RGBA) {
	r.aet.Clear()
	for _, e := range edges {
		if e.y0 <= y && y < e.y1 {
			r.aet.Add(e)
			r.aet.edges[len(r.aet.edges)-1].x = e.XAtY(y)
		}
	}
	active := r.aet.Edges()
	if len(active) == 0 {
		return
	}
	r.aet.Sort()

	row := int(y)
	if rule == FillRuleNonZero {
		fillNonZero(pm, active, row, c)
	} else {
		fillEvenOdd(pm, active, row, c)
	}
}

func fillNonZero(pm Pixmap, edges []ActiveEdge, y int, c RGBA) {
	winding, x1 := 0, 0.0
	for _, e := range edges {
		if winding == 0 {
			x1 = e.x
		}
		winding += e.dir
		if winding == 0 {
			fillSpan(pm, int(x1), int(e.x), y, c)
		}
	}
}

func fillEvenOdd(pm Pixmap, edges []ActiveEdge, y int, c RGBA) {
	for i := 0; i+1 < len(edges); i += 2 {
		fillSpan(pm, int(edges[i].x), int(edges[i+1].x), y, c)
	}
}

func fillSpan(pm Pixmap, x1, x2, y int, c RGBA) {
	if y < 0 || y >= pm.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > pm.Width() {
		x2 = pm.Width()
	}
	if sf, ok := pm.(SpanFiller); ok {
		sf.FillSpan(x1, x2, y, c)
		return
	}
	for x := x1; x < x2; x++ {
		pm.SetPixel(x, y, c)
	}
}
