package arbor

// Views only translate; a view's local space is its superview's space shifted
// by the frame origin.

// ConvertPointToSuper converts a point in this view's space to its superview's.
func (v *View) ConvertPointToSuper(p Point) Point {
	return p.Add(v.frame.Origin())
}

// ConvertPointFromSuper converts a point in the superview's space to this view's.
func (v *View) ConvertPointFromSuper(p Point) Point {
	return p.Sub(v.frame.Origin())
}

// LocalToWorld converts a local point to the coordinate space of the tree root's
// superview (window coordinates when the root sits at the window origin).
func (v *View) LocalToWorld(p Point) Point {
	for n := v; n != nil; n = n.superview {
		p = p.Add(n.frame.Origin())
	}
	return p
}

// WorldToLocal converts a window-space point to this view's local space.
func (v *View) WorldToLocal(p Point) Point {
	for n := v; n != nil; n = n.superview {
		p = p.Sub(n.frame.Origin())
	}
	return p
}

// WorldFrame returns the frame in window coordinates.
func (v *View) WorldFrame() Region {
	origin := Point{}
	if v.superview != nil {
		origin = v.superview.LocalToWorld(Point{})
	}
	return v.frame.Translate(origin)
}

// VisibleBounds returns the part of the view's frame, in window coordinates,
// left after clipping against every ancestor. Scrolled-out content yields an
// empty region.
func (v *View) VisibleBounds() Region {
	bounds := v.WorldFrame()
	for p := v.superview; p != nil; p = p.superview {
		bounds = bounds.Intersect(p.WorldFrame())
		if bounds.IsEmpty() {
			break
		}
	}
	return bounds
}
