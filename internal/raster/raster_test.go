// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "testing"

type recordingPixmap struct {
	w, h  int
	spans map[[2]int]RGBA // (x,y) -> color, one entry per touched pixel
}

func newRecordingPixmap(w, h int) *recordingPixmap {
	return &recordingPixmap{w: w, h: h, spans: make(map[[2]int]RGBA)}
}

func (p *recordingPixmap) Width() int  { return p.w }
func (p *recordingPixmap) Height() int { return p.h }
func (p *recordingPixmap) SetPixel(x, y int, c RGBA) {
	p.spans[[2]int{x, y}] = c
}

func TestFillSquareNonZero(t *testing.T) {
	pm := newRecordingPixmap(10, 10)
	r := NewRasterizer(10, 10)
	red := RGBA{R: 1, A: 1}

	square := []Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}, {X: 2, Y: 2}}
	r.Fill(pm, square, FillRuleNonZero, red)

	if _, ok := pm.spans[[2]int{4, 4}]; !ok {
		t.Error("expected center pixel filled")
	}
	if _, ok := pm.spans[[2]int{0, 0}]; ok {
		t.Error("expected pixel outside the square to be untouched")
	}
}

func TestFillDegenerateShapeIsNoop(t *testing.T) {
	pm := newRecordingPixmap(4, 4)
	r := NewRasterizer(4, 4)

	r.Fill(pm, []Point{{X: 1, Y: 1}}, FillRuleNonZero, RGBA{A: 1})
	if len(pm.spans) != 0 {
		t.Errorf("expected no pixels touched for a single-point path, got %d", len(pm.spans))
	}

	horizontal := []Point{{X: 0, Y: 2}, {X: 4, Y: 2}}
	r.Fill(pm, horizontal, FillRuleNonZero, RGBA{A: 1})
	if len(pm.spans) != 0 {
		t.Errorf("expected a purely horizontal path to contribute no edges, got %d pixels", len(pm.spans))
	}
}

func TestFillClampsToPixmapBounds(t *testing.T) {
	pm := newRecordingPixmap(4, 4)
	r := NewRasterizer(4, 4)

	// A quad that extends well past every edge of the 4x4 target.
	oversized := []Point{{X: -10, Y: -10}, {X: 20, Y: -10}, {X: 20, Y: 20}, {X: -10, Y: 20}, {X: -10, Y: -10}}
	r.Fill(pm, oversized, FillRuleNonZero, RGBA{A: 1})

	for k := range pm.spans {
		if k[0] < 0 || k[0] >= 4 || k[1] < 0 || k[1] >= 4 {
			t.Fatalf("pixel %v written outside pixmap bounds", k)
		}
	}
	if _, ok := pm.spans[[2]int{0, 0}]; !ok {
		t.Error("expected the clamped fill to still cover in-bounds corners")
	}
}

func TestStrokeDrawsAlongSegments(t *testing.T) {
	pm := newRecordingPixmap(20, 20)
	r := NewRasterizer(20, 20)

	r.Stroke(pm, []Point{{X: 2, Y: 10}, {X: 18, Y: 10}}, 4, RGBA{G: 1, A: 1})
	if _, ok := pm.spans[[2]int{10, 10}]; !ok {
		t.Error("expected a pixel along the stroked line to be touched")
	}
}

func TestEdgeXAtY(t *testing.T) {
	e := NewEdge(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if got := e.XAtY(5); got != 5 {
		t.Errorf("XAtY(5) = %v, want 5", got)
	}
}

func TestActiveEdgeTableSortsByX(t *testing.T) {
	aet := NewActiveEdgeTable()
	aet.Add(NewEdge(Point{X: 8, Y: 0}, Point{X: 8, Y: 10}))
	aet.Add(NewEdge(Point{X: 2, Y: 0}, Point{X: 2, Y: 10}))
	aet.Sort()

	edges := aet.Edges()
	if len(edges) != 2 || edges[0].x > edges[1].x {
		t.Errorf("Sort did not order edges by x: %+v", edges)
	}
}

func TestActiveEdgeTableRemoveExpired(t *testing.T) {
	aet := NewActiveEdgeTable()
	aet.Add(NewEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 5}))
	aet.Remove(6) // past the edge's yMax
	if len(aet.Edges()) != 0 {
		t.Errorf("expected expired edge removed, got %d", len(aet.Edges()))
	}
}
