// seehuhn.de/go/maskfont - fonts for masking sensitive text
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package maskfont

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sfnt/cff"
)

// An Outline describes the shape and the advance width of a glyph.
// Coordinates are given in font design units.
type Outline struct {
	Name  string
	Width float64
	Cmds  []Cmd
}

// Cmd is a single drawing operation of an Outline.
// MoveTo and LineTo take one point, QuadTo takes two (control point and end
// point), CubeTo takes three, and Close takes none.
type Cmd struct {
	Op  path.Command
	Pts []vec.Vec2
}

// NewOutline allocates a new, empty outline.
func NewOutline(name string, width float64) *Outline {
	return &Outline{Name: name, Width: width}
}

// MoveTo starts a new contour.
func (o *Outline) MoveTo(x, y float64) {
	o.Cmds = append(o.Cmds, Cmd{Op: path.CmdMoveTo, Pts: []vec.Vec2{{X: x, Y: y}}})
}

// LineTo adds a straight line segment to the current contour.
func (o *Outline) LineTo(x, y float64) {
	o.Cmds = append(o.Cmds, Cmd{Op: path.CmdLineTo, Pts: []vec.Vec2{{X: x, Y: y}}})
}

// QuadTo adds a quadratic Bézier segment to the current contour.
func (o *Outline) QuadTo(x1, y1, x2, y2 float64) {
	o.Cmds = append(o.Cmds, Cmd{
		Op:  path.CmdQuadTo,
		Pts: []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}},
	})
}

// CurveTo adds a cubic Bézier segment to the current contour.
func (o *Outline) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	o.Cmds = append(o.Cmds, Cmd{
		Op:  path.CmdCubeTo,
		Pts: []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}},
	})
}

// ClosePath closes the current contour.
func (o *Outline) ClosePath() {
	o.Cmds = append(o.Cmds, Cmd{Op: path.CmdClose})
}

// IsBlank reports whether the outline draws nothing.
func (o *Outline) IsBlank() bool {
	for _, c := range o.Cmds {
		if c.Op != path.CmdMoveTo && c.Op != path.CmdClose {
			return false
		}
	}
	return true
}

// Path returns the drawing commands of the outline.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range o.Cmds {
			if !yield(c.Op, c.Pts) {
				return
			}
		}
	}
}

// BBox returns the bounding box of all points of the outline,
// including Bézier control points.
// For a blank outline, the zero rectangle is returned.
func (o *Outline) BBox() rect.Rect {
	var bbox rect.Rect
	first := true
	for _, c := range o.Cmds {
		for _, p := range c.Pts {
			if first {
				bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			bbox.LLx = math.Min(bbox.LLx, p.X)
			bbox.LLy = math.Min(bbox.LLy, p.Y)
			bbox.URx = math.Max(bbox.URx, p.X)
			bbox.URy = math.Max(bbox.URy, p.Y)
		}
	}
	return bbox
}

// LeftSideBearing returns the left side bearing of the glyph, i.e. the
// minimum x coordinate of the outline.  Blank outlines have side bearing 0.
func (o *Outline) LeftSideBearing() float64 {
	if o.IsBlank() {
		return 0
	}
	return o.BBox().LLx
}

// Scaled returns a copy of the outline, where all coordinates and the
// advance width are multiplied by q and rounded to integers.
func (o *Outline) Scaled(q float64) *Outline {
	res := &Outline{
		Name:  o.Name,
		Width: math.Round(o.Width * q),
		Cmds:  make([]Cmd, len(o.Cmds)),
	}
	for i, c := range o.Cmds {
		pts := make([]vec.Vec2, len(c.Pts))
		for j, p := range c.Pts {
			pts[j] = vec.Vec2{X: math.Round(p.X * q), Y: math.Round(p.Y * q)}
		}
		res.Cmds[i] = Cmd{Op: c.Op, Pts: pts}
	}
	return res
}

// CFFGlyph converts the outline into a CFF glyph.
//
// Quadratic segments are converted into cubic ones.  CFF contours are closed
// implicitly, so a final line segment which returns to the start of the
// contour is omitted.
func (o *Outline) CFFGlyph() *cff.Glyph {
	g := cff.NewGlyph(o.Name, o.Width)

	var start, cur vec.Vec2
	for i, c := range o.Cmds {
		switch c.Op {
		case path.CmdMoveTo:
			start = c.Pts[0]
			cur = start
			g.MoveTo(cur.X, cur.Y)
		case path.CmdLineTo:
			p := c.Pts[0]
			if p == start && closesContour(o.Cmds, i+1) {
				cur = p
				continue
			}
			g.LineTo(p.X, p.Y)
			cur = p
		case path.CmdQuadTo:
			q, p := c.Pts[0], c.Pts[1]
			c1 := elevate(cur, q)
			c2 := elevate(p, q)
			g.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			cur = p
		case path.CmdCubeTo:
			g.CurveTo(c.Pts[0].X, c.Pts[0].Y, c.Pts[1].X, c.Pts[1].Y, c.Pts[2].X, c.Pts[2].Y)
			cur = c.Pts[2]
		case path.CmdClose:
			cur = start
		}
	}
	return g
}

// elevate returns the cubic control point which corresponds to the
// quadratic control point q next to the on-curve point p.
func elevate(p, q vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.X + 2*(q.X-p.X)/3,
		Y: p.Y + 2*(q.Y-p.Y)/3,
	}
}

// closesContour reports whether the command at position i ends the current
// contour.
func closesContour(cmds []Cmd, i int) bool {
	return i >= len(cmds) || cmds[i].Op == path.CmdClose || cmds[i].Op == path.CmdMoveTo
}

// NotdefGlyph returns the outline of the ".notdef" glyph: a hollow
// rectangle.  The inner contour runs in the opposite direction of the
// outer one.
func NotdefGlyph(width float64) *Outline {
	o := NewOutline(NotdefName, width)

	o.MoveTo(50, 0)
	o.LineTo(550, 0)
	o.LineTo(550, 700)
	o.LineTo(50, 700)
	o.ClosePath()

	o.MoveTo(100, 50)
	o.LineTo(100, 650)
	o.LineTo(500, 650)
	o.LineTo(500, 50)
	o.ClosePath()

	return o
}

// CrossGlyph returns a hand-drawn replacement for the asterisk, used when no
// system font provides one.  The glyph consists of a vertical and a
// horizontal bar.
func CrossGlyph(width float64) *Outline {
	o := NewOutline(AsteriskName, width)

	o.MoveTo(280, 150)
	o.LineTo(320, 150)
	o.LineTo(320, 650)
	o.LineTo(280, 650)
	o.ClosePath()

	o.MoveTo(100, 380)
	o.LineTo(500, 380)
	o.LineTo(500, 420)
	o.LineTo(100, 420)
	o.ClosePath()

	return o
}

// SpaceGlyph returns the blank outline used for the space character.
func SpaceGlyph(width float64) *Outline {
	return NewOutline(SpaceName, width)
}
