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
	"strings"

	"k8s.io/klog/v2"
)

const noHover = -1

// Option is used to set options when initializing a Viewer.
type Option func(*Viewer)

// WithLayout sets the responsive padding and tick settings.
func WithLayout(l Layout) Option {
	return func(v *Viewer) {
		v.layout = l
	}
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return func(v *Viewer) {
		v.xLabel, v.yLabel = x, y
	}
}

// WithLineStyle sets how points are connected.
func WithLineStyle(ls LineStyle) Option {
	return func(v *Viewer) {
		v.lineStyle = ls
	}
}

// WithOnHover sets the callback invoked with the hovered point, or nil
// when nothing is hovered.
func WithOnHover(fn func(*Point)) Option {
	return func(v *Viewer) {
		v.onHover = fn
	}
}

// Viewer owns the viewport and selection state of one plot.
// At most one of the hovered point and the clicked axis query is active.
// The reference indicator is independent of both.
// A Viewer is driven from a single event loop and is not safe for concurrent use.
type Viewer struct {
	layout    Layout
	xLabel    string
	yLabel    string
	lineStyle LineStyle
	onHover   func(*Point)

	points  []Point
	extent  Extent
	hasData bool

	size         Size
	pending      *Size
	cancelResize func()

	viewport  Viewport
	laidOut   bool
	initial   *InitialView
	navigated bool

	hovered   int
	query     *AxisQueryResult
	reference *AxisQueryResult
}

// NewViewer returns a Viewer without points.
func NewViewer(opts ...Option) *Viewer {
	v := &Viewer{
		layout:    DefaultLayout(),
		lineStyle: LineStyleSmooth,
		hovered:   noHover,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetPoints replaces the point set. The slice is copied; points with
// non-finite coordinates are dropped. The viewport is refitted and any
// user selection is cleared.
func (v *Viewer) SetPoints(points []Point) {
	finite := finitePoints(points)
	if dropped := len(points) - len(finite); dropped > 0 {
		klog.V(1).Infof("dropped %d points with non-finite coordinates", dropped)
	}
	v.points = finite
	v.extent, v.hasData = ComputeExtent(finite)
	v.query = nil
	v.navigated = false
	v.clearHover()
	if !v.hasData {
		v.laidOut = false
		v.initial = nil
		v.reference = nil
		return
	}
	v.refit()
	v.updateReference()
}

// SetLabels sets the axis labels and re-derives the reference indicator.
func (v *Viewer) SetLabels(x, y string) {
	v.xLabel, v.yLabel = x, y
	v.updateReference()
}

// SetLineStyle sets how points are connected.
func (v *Viewer) SetLineStyle(ls LineStyle) {
	v.lineStyle = ls
}

// Observe subscribes to container size notifications, replacing any
// previous subscription.
func (v *Viewer) Observe(src ResizeSource) {
	v.Close()
	v.cancelResize = src.Subscribe(v.Resize)
}

// Close cancels the resize subscription.
func (v *Viewer) Close() {
	if v.cancelResize != nil {
		v.cancelResize()
		v.cancelResize = nil
	}
}

// Resize records a container size. Sizes are coalesced and applied by
// the next Layout call.
func (v *Viewer) Resize(size Size) {
	v.pending = &size
}

// Layout applies the latest pending container size. While the user has
// zoomed or panned only the size and padding change; otherwise the
// viewport is refitted to the extent.
func (v *Viewer) Layout() {
	if v.pending == nil {
		return
	}
	v.size = *v.pending
	v.pending = nil
	if !v.hasData {
		return
	}
	if v.navigated && v.laidOut && !v.size.Empty() {
		v.viewport.Size = v.size
		v.viewport.Padding = v.layout.PaddingFor(v.size.Width)
		return
	}
	v.refit()
}

func (v *Viewer) refit() {
	if v.size.Empty() {
		v.laidOut = false
		return
	}
	v.viewport = Fit(v.extent, v.size, v.layout.PaddingFor(v.size.Width))
	v.laidOut = true
	if v.initial == nil {
		v.initial = &InitialView{Scale: v.viewport.Scale, Offset: v.viewport.Offset}
		klog.V(1).Infof("initial view captured: scale=%v offset=%v", v.initial.Scale, v.initial.Offset)
	}
}

func (v *Viewer) ready() bool {
	return v.hasData && v.laidOut && v.initial != nil
}

// Wheel zooms around the screen position (sx, sy). Negative deltaY zooms in.
func (v *Viewer) Wheel(sx, sy, deltaY float64) {
	if !v.ready() {
		return
	}
	if sx < 0 || sy < 0 || sx > v.size.Width || sy > v.size.Height {
		return
	}
	v.viewport = Zoom(v.viewport, *v.initial, sx, sy, deltaY)
	v.navigated = true
	v.clearHover()
}

// ZoomCenter zooms around the centre of the plot area.
func (v *Viewer) ZoomCenter(deltaY float64) {
	if !v.ready() {
		return
	}
	left, top, right, bottom := v.viewport.PlotArea()
	v.Wheel((left+right)/2, (top+bottom)/2, deltaY)
}

// Pan moves the plot content by (dx, dy) pixels.
func (v *Viewer) Pan(dx, dy float64) {
	if !v.ready() {
		return
	}
	v.viewport = Pan(v.viewport, dx, dy)
	v.navigated = true
	v.clearHover()
}

// ResetView refits the viewport to the extent and forgets user navigation.
func (v *Viewer) ResetView() {
	if !v.hasData {
		return
	}
	v.navigated = false
	v.refit()
	v.clearHover()
}

// HoverPoint selects the point at index i and clears the clicked axis query.
func (v *Viewer) HoverPoint(i int) {
	if !v.hasData || i < 0 || i >= len(v.points) {
		return
	}
	v.hovered = i
	v.query = nil
	p := v.points[i]
	v.notify(&p)
}

// LeavePoint clears the hovered point.
func (v *Viewer) LeavePoint() {
	if !v.hasData {
		return
	}
	v.hovered = noHover
	v.notify(nil)
}

// ClickTick starts an axis query for a click-enabled tick. Clicking a tick
// that is not click-enabled counts as a background click. A query that
// misses the curve clears the previous query.
func (v *Viewer) ClickTick(t Tick) {
	if !v.hasData {
		return
	}
	if !t.Clickable {
		v.ClickBackground()
		return
	}
	v.query = Query(v.points, t.Axis, t.Value, TriggerClick)
	if v.query == nil {
		klog.V(1).Infof("axis query %s=%g is outside the curve", t.Axis, t.Value)
		return
	}
	v.clearHover()
}

// ClickBackground clears the hovered point and the clicked axis query.
func (v *Viewer) ClickBackground() {
	if !v.hasData {
		return
	}
	v.hovered = noHover
	v.query = nil
	v.notify(nil)
}

func (v *Viewer) clearHover() {
	if v.hovered == noHover {
		return
	}
	v.hovered = noHover
	v.notify(nil)
}

func (v *Viewer) notify(p *Point) {
	if v.onHover != nil {
		v.onHover(p)
	}
}

func (v *Viewer) updateReference() {
	v.reference = nil
	if !v.hasData {
		return
	}
	a, ok := ReferenceAxis(v.xLabel, v.yLabel)
	if !ok {
		return
	}
	v.reference = Query(v.points, a, ReferenceValue, TriggerReference)
}

// ReferenceAxis returns the first axis, X before Y, whose label names a pH axis.
func ReferenceAxis(xLabel, yLabel string) (Axis, bool) {
	switch {
	case isPHLabel(xLabel):
		return AxisX, true
	case isPHLabel(yLabel):
		return AxisY, true
	}
	return AxisX, false
}

func isPHLabel(label string) bool {
	return strings.Contains(strings.ToLower(label), "ph")
}

// Empty reports whether the viewer has no points.
func (v *Viewer) Empty() bool {
	return !v.hasData
}

// Points returns a copy of the points in input order.
func (v *Viewer) Points() []Point {
	r := make([]Point, len(v.points))
	copy(r, v.points)
	return r
}

// Labels returns the X and Y axis labels.
func (v *Viewer) Labels() (string, string) {
	return v.xLabel, v.yLabel
}

func (v *Viewer) LineStyle() LineStyle {
	return v.lineStyle
}

// Extent returns the extent of the points, false if there are none.
func (v *Viewer) Extent() (Extent, bool) {
	return v.extent, v.hasData
}

// Viewport returns the current viewport, false before the first layout.
func (v *Viewer) Viewport() (Viewport, bool) {
	return v.viewport, v.laidOut && v.hasData
}

// InitialView returns the zoom reference, false before it is captured.
func (v *Viewer) InitialView() (InitialView, bool) {
	if v.initial == nil {
		return InitialView{}, false
	}
	return *v.initial, true
}

// Navigated reports whether the user zoomed or panned since the last fit.
func (v *Viewer) Navigated() bool {
	return v.navigated
}

// Hovered returns the hovered point index.
func (v *Viewer) Hovered() (int, bool) {
	return v.hovered, v.hovered != noHover
}

// Query returns the clicked axis query, or nil.
func (v *Viewer) Query() *AxisQueryResult {
	return v.query
}

// Reference returns the reference indicator, or nil.
func (v *Viewer) Reference() *AxisQueryResult {
	return v.reference
}

// TickCount returns the target tick count for the current container width.
func (v *Viewer) TickCount() int {
	return v.layout.TickCount(v.size.Width)
}
