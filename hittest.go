package arbor

// HitShape is used for custom hit testing regions, in local coordinates.
type HitShape interface {
	Contains(p Point) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect Region

// Contains reports whether p lies inside the rectangle.
func (r HitRect) Contains(p Point) bool {
	return Region(r).Contains(p)
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	Center Point
	Radius int
}

// Contains reports whether p lies inside or on the circle.
func (c HitCircle) Contains(p Point) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Point
}

// Contains reports whether p lies inside a convex polygon using cross-product sign test.
func (h HitPolygon) Contains(p Point) bool {
	n := len(h.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := h.Points[i]
		b := h.Points[(i+1)%n]

		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Hit testing ---

// opaqueAt reports whether the view accepts a hit at local point p, assuming p
// is already inside its frame.
func (v *View) opaqueAt(p Point) bool {
	if v.flags&IgnoreEvents != 0 {
		return false
	}
	if v.HitShape != nil {
		return v.HitShape.Contains(p)
	}
	return true
}

// SubviewAt returns the frontmost subview containing p, given in this view's
// local coordinates, or nil.
//
// When recursive is set the deepest descendant under p wins over its
// ancestors. When ignoreTransparency is false, views flagged IgnoreEvents and
// points outside a view's HitShape fall through to whatever lies behind.
// Invisible views are always skipped. Routing views (scroll content) are never
// returned, though their subviews are.
func (v *View) SubviewAt(p Point, ignoreTransparency, recursive bool) *View {
	for i := len(v.subviews) - 1; i >= 0; i-- {
		sub := v.subviews[i]
		if !sub.IsVisible() || !sub.frame.Contains(p) {
			continue
		}
		local := sub.ConvertPointFromSuper(p)
		if recursive {
			if hit := sub.SubviewAt(local, ignoreTransparency, true); hit != nil {
				return hit
			}
		}
		if sub.routing {
			continue
		}
		if !ignoreTransparency && !sub.opaqueAt(local) {
			continue
		}
		return sub
	}
	return nil
}
