/*
Copyright (C) 2022-2024 ApeCloud Co., Ltd

This file is part of gemini-koordinaten project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package plot

import (
	"strconv"
	"strings"
)

type PathOp byte

const (
	OpMove  PathOp = 'M'
	OpLine  PathOp = 'L'
	OpCubic PathOp = 'C'
)

// PathSegment is one drawing command. Cubic segments carry two control
// points followed by the end point, the others carry only the end point.
type PathSegment struct {
	Op     PathOp
	Points []Point
}

// Path connects consecutive points in input order.
type Path []PathSegment

// BuildPath connects points with straight segments (sharp) or with cubic
// curves whose control points sit on the horizontal midpoint between two
// neighbours (smooth). Fewer than two points yield an empty path.
// BuildPath works in any coordinate space; the curve construction is
// preserved by per-axis affine maps such as the viewport transform.
func BuildPath(points []Point, style LineStyle) Path {
	if len(points) < 2 {
		return nil
	}
	path := make(Path, 0, len(points))
	path = append(path, PathSegment{Op: OpMove, Points: []Point{points[0]}})
	for i := 0; i < len(points)-1; i++ {
		cur, next := points[i], points[i+1]
		if style == LineStyleSharp {
			path = append(path, PathSegment{Op: OpLine, Points: []Point{next}})
			continue
		}
		midX := (cur.X + next.X) / 2
		path = append(path, PathSegment{
			Op: OpCubic,
			Points: []Point{
				{X: midX, Y: cur.Y},
				{X: midX, Y: next.Y},
				next,
			},
		})
	}
	return path
}

// SVG renders the path as SVG path data.
func (p Path) SVG() string {
	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(seg.Op))
		for j, pt := range seg.Points {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
		}
	}
	return sb.String()
}

// Flatten approximates the path by a polyline, sampling every cubic
// segment at n evenly spaced parameter values.
func (p Path) Flatten(n int) []Point {
	if n < 1 {
		n = 1
	}
	var r []Point
	var cur Point
	for _, seg := range p {
		switch seg.Op {
		case OpMove, OpLine:
			cur = seg.Points[0]
			r = append(r, cur)
		case OpCubic:
			c1, c2, end := seg.Points[0], seg.Points[1], seg.Points[2]
			for i := 1; i <= n; i++ {
				r = append(r, cubic(cur, c1, c2, end, float64(i)/float64(n)))
			}
			cur = end
		}
	}
	return r
}

func cubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
