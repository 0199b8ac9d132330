package script

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/arbor"
)

// Method is one entry of the bridge method table.
type Method struct {
	Name  string
	Arity int
	Doc   string
	fn    func(b *Bridge, args []any) (any, error)
}

var methodTable = []Method{
	{
		Name: "View_AddSubview", Arity: 3,
		Doc: "View_AddSubview(parent, child, back)\n\nInserts child into parent directly in front of back, or front-most when back is 0.",
		fn: func(b *Bridge, args []any) (any, error) {
			parent, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			child, err := viewArg(b, args, 1)
			if err != nil {
				return nil, err
			}
			bh, err := argHandle(args, 2)
			if err != nil {
				return nil, err
			}
			var back *arbor.View
			if bh != 0 {
				if back, err = b.View(bh); err != nil {
					return nil, err
				}
			}
			parent.AddSubviewInFrontOfView(child, back)
			return nil, nil
		},
	},
	{
		Name: "View_RemoveSubview", Arity: 2,
		Doc: "View_RemoveSubview(parent, child) -> handle\n\nDetaches child without destroying it. Returns 0 when child is not a subview.",
		fn: func(b *Bridge, args []any) (any, error) {
			parent, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			child, err := viewArg(b, args, 1)
			if err != nil {
				return nil, err
			}
			return b.handleFor(parent.RemoveSubview(child)), nil
		},
	},
	{
		Name: "View_SubviewAt", Arity: 5,
		Doc: "View_SubviewAt(view, x, y, ignoreTransparency, recursive) -> handle\n\nReturns the front-most subview at the point, in view coordinates, or 0.",
		fn: func(b *Bridge, args []any) (any, error) {
			v, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			p, err := argPoint(args, 1)
			if err != nil {
				return nil, err
			}
			ignore, err := argBool(args, 3)
			if err != nil {
				return nil, err
			}
			recursive, err := argBool(args, 4)
			if err != nil {
				return nil, err
			}
			return b.handleFor(v.SubviewAt(p, ignore, recursive)), nil
		},
	},
	{
		Name: "View_GetFrame", Arity: 1,
		Doc: "View_GetFrame(view) -> (x, y, w, h)",
		fn: func(b *Bridge, args []any) (any, error) {
			v, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			return v.Frame(), nil
		},
	},
	{
		Name: "View_SetFrame", Arity: 5,
		Doc: "View_SetFrame(view, x, y, w, h)\n\nMoves and resizes the view. Subviews follow their resize flags.",
		fn: func(b *Bridge, args []any) (any, error) {
			v, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			r, err := argRegion(args, 1)
			if err != nil {
				return nil, err
			}
			v.SetFrame(r)
			return nil, nil
		},
	},
	{
		Name: "View_SetFlags", Arity: 3,
		Doc: "View_SetFlags(view, flags, op) -> bool\n\nCombines flags with op (0 set, 1 or, 2 and, 3 nand, 4 xor). Returns false for an unknown op.",
		fn: func(b *Bridge, args []any) (any, error) {
			v, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			flags, err := argInt(args, 1)
			if err != nil {
				return nil, err
			}
			op, err := argInt(args, 2)
			if err != nil {
				return nil, err
			}
			return v.SetFlags(arbor.ViewFlags(flags), arbor.FlagOp(op)), nil
		},
	},
	{
		Name: "View_SetFocus", Arity: 1,
		Doc: "View_SetFocus(view)\n\nMakes view the target of key presses.",
		fn: func(b *Bridge, args []any) (any, error) {
			v, err := viewArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			b.scene.SetFocus(v)
			return nil, nil
		},
	},
	{
		Name: "ScrollView_Scroll", Arity: 3,
		Doc: "ScrollView_Scroll(scrollview, dx, dy)\n\nPans the content by the delta, clamped to the content bounds.",
		fn: func(b *Bridge, args []any) (any, error) {
			sv, err := scrollArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			d, err := argPoint(args, 1)
			if err != nil {
				return nil, err
			}
			sv.Scroll(d)
			return nil, nil
		},
	},
	{
		Name: "ScrollView_ScrollTo", Arity: 3,
		Doc: "ScrollView_ScrollTo(scrollview, x, y)\n\nSets the content offset, clamped to the content bounds.",
		fn: func(b *Bridge, args []any) (any, error) {
			sv, err := scrollArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			p, err := argPoint(args, 1)
			if err != nil {
				return nil, err
			}
			sv.ScrollTo(p)
			return nil, nil
		},
	},
	{
		Name: "ScrollView_AnimateScrollTo", Arity: 5,
		Doc: "ScrollView_AnimateScrollTo(scrollview, x, y, seconds, ease)\n\nTweens the content offset. ease is an easing name such as \"out-cubic\"; empty means linear.",
		fn: func(b *Bridge, args []any) (any, error) {
			sv, err := scrollArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			p, err := argPoint(args, 1)
			if err != nil {
				return nil, err
			}
			seconds, err := argFloat(args, 3)
			if err != nil {
				return nil, err
			}
			name, err := argString(args, 4)
			if err != nil {
				return nil, err
			}
			var fn ease.TweenFunc
			if name != "" {
				if fn, err = arbor.EaseByName(name); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrArgument, err)
				}
			}
			sv.AnimateScrollTo(p, float32(seconds), fn)
			return nil, nil
		},
	},
	{
		Name: "ScrollView_ScrollToVisible", Arity: 2,
		Doc: "ScrollView_ScrollToVisible(scrollview, view) -> bool\n\nScrolls the least distance that reveals view. Returns false when view is not inside the scroll view.",
		fn: func(b *Bridge, args []any) (any, error) {
			sv, err := scrollArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			v, err := viewArg(b, args, 1)
			if err != nil {
				return nil, err
			}
			return sv.ScrollViewToVisible(v), nil
		},
	},
	{
		Name: "ScrollView_GetOffset", Arity: 1,
		Doc: "ScrollView_GetOffset(scrollview) -> (x, y)",
		fn: func(b *Bridge, args []any) (any, error) {
			sv, err := scrollArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			return sv.ContentOffset(), nil
		},
	},
	{
		Name: "ScrollView_SetContentSize", Arity: 3,
		Doc: "ScrollView_SetContentSize(scrollview, w, h)\n\nResizes the scrollable content and re-clamps the offset.",
		fn: func(b *Bridge, args []any) (any, error) {
			sv, err := scrollArg(b, args, 0)
			if err != nil {
				return nil, err
			}
			w, err := argInt(args, 1)
			if err != nil {
				return nil, err
			}
			h, err := argInt(args, 2)
			if err != nil {
				return nil, err
			}
			if w < 0 || h < 0 {
				return nil, fmt.Errorf("%w: negative content size %dx%d", ErrArgument, w, h)
			}
			sv.SetContentSize(arbor.Size{W: w, H: h})
			return nil, nil
		},
	},
	{
		Name: "ScrollView_Dispose", Arity: 1,
		Doc: "ScrollView_Dispose(scrollview)\n\nDetaches the scroll view and its content view and releases the handle.",
		fn: func(b *Bridge, args []any) (any, error) {
			h, err := argHandle(args, 0)
			if err != nil {
				return nil, err
			}
			sv, err := b.ScrollView(h)
			if err != nil {
				return nil, err
			}
			sv.Dispose()
			b.Release(h)
			return nil, nil
		},
	},
	{
		Name: "Scene_SendKey", Arity: 1,
		Doc: "Scene_SendKey(key) -> bool\n\nDelivers a named key (\"up\", \"pagedown\", ...) to the focused view. Returns whether it was consumed.",
		fn: func(b *Bridge, args []any) (any, error) {
			name, err := argString(args, 0)
			if err != nil {
				return nil, err
			}
			k, ok := arbor.ParseKey(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown key %q", ErrArgument, name)
			}
			return b.scene.DispatchKey(arbor.KeyEvent{Key: k}), nil
		},
	},
}

var methodIndex = func() map[string]Method {
	m := make(map[string]Method, len(methodTable))
	for _, e := range methodTable {
		m[e.Name] = e
	}
	return m
}()

func viewArg(b *Bridge, args []any, i int) (*arbor.View, error) {
	h, err := argHandle(args, i)
	if err != nil {
		return nil, err
	}
	return b.View(h)
}

func scrollArg(b *Bridge, args []any, i int) (*arbor.ScrollView, error) {
	h, err := argHandle(args, i)
	if err != nil {
		return nil, err
	}
	return b.ScrollView(h)
}
