package script

import (
	"errors"
	"fmt"
	"sort"

	"github.com/phanxgames/arbor"
)

// Errors returned by Bridge operations. Callers match them with errors.Is.
var (
	ErrClosed        = errors.New("bridge closed")
	ErrUnknownMethod = errors.New("unknown method")
	ErrUnknownClass  = errors.New("unknown class")
	ErrArity         = errors.New("wrong number of arguments")
	ErrArgument      = errors.New("invalid argument")
	ErrInvalidHandle = errors.New("invalid handle")
)

// Handle is an opaque reference to a view owned by a Bridge. Zero is never
// a valid handle.
type Handle uint32

// Bridge exposes a scene's views to a script runtime through handles and a
// fixed method table. A Bridge is not safe for concurrent use.
type Bridge struct {
	scene   *arbor.Scene
	objects map[Handle]any
	handles map[*arbor.View]Handle
	next    Handle
	closed  bool
}

// NewBridge creates a bridge for scene. The scene root is registered
// immediately; see Root.
func NewBridge(scene *arbor.Scene) *Bridge {
	b := &Bridge{
		scene:   scene,
		objects: make(map[Handle]any),
		handles: make(map[*arbor.View]Handle),
	}
	b.Register(scene.Root())
	return b
}

// Close releases every handle. Later calls fail with ErrClosed.
func (b *Bridge) Close() {
	b.objects = nil
	b.handles = nil
	b.closed = true
}

// Root returns the handle of the scene's root view.
func (b *Bridge) Root() Handle {
	return b.handles[b.scene.Root()]
}

// Register returns the handle for obj, which must be a *arbor.View or a
// *arbor.ScrollView. Registering the same object twice returns the same
// handle. Returns 0 after Close or for unsupported objects.
func (b *Bridge) Register(obj any) Handle {
	if b.closed {
		return 0
	}
	var key *arbor.View
	switch o := obj.(type) {
	case *arbor.View:
		if o == nil {
			return 0
		}
		// A scroll view reached through its embedded view keeps its type.
		if sv := o.ScrollView(); sv != nil {
			obj = sv
		}
		key = o
	case *arbor.ScrollView:
		if o == nil {
			return 0
		}
		key = &o.View
	default:
		return 0
	}
	if h, ok := b.handles[key]; ok {
		return h
	}
	b.next++
	b.objects[b.next] = obj
	b.handles[key] = b.next
	return b.next
}

// Release forgets h. The view itself is untouched.
func (b *Bridge) Release(h Handle) {
	obj, ok := b.objects[h]
	if !ok {
		return
	}
	delete(b.objects, h)
	switch o := obj.(type) {
	case *arbor.View:
		delete(b.handles, o)
	case *arbor.ScrollView:
		delete(b.handles, &o.View)
	}
}

// View resolves h to its view. Scroll view handles resolve to the embedded
// view.
func (b *Bridge) View(h Handle) (*arbor.View, error) {
	if b.closed {
		return nil, ErrClosed
	}
	switch o := b.objects[h].(type) {
	case *arbor.View:
		return o, nil
	case *arbor.ScrollView:
		return &o.View, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
}

// ScrollView resolves h to a scroll view.
func (b *Bridge) ScrollView(h Handle) (*arbor.ScrollView, error) {
	if b.closed {
		return nil, ErrClosed
	}
	sv, ok := b.objects[h].(*arbor.ScrollView)
	if !ok {
		return nil, fmt.Errorf("%w: %d is not a ScrollView", ErrInvalidHandle, h)
	}
	return sv, nil
}

// handleFor returns the handle of v, registering it when needed. Views
// embedded in a scroll view map to the scroll view's handle.
func (b *Bridge) handleFor(v *arbor.View) Handle {
	if v == nil {
		return 0
	}
	if h, ok := b.handles[v]; ok {
		return h
	}
	return b.Register(v)
}

// constructor builds an object from script arguments.
type constructor struct {
	arity int
	fn    func(b *Bridge, args []any) (any, error)
}

var constructors = map[string]constructor{
	// View(name, x, y, w, h)
	"View": {5, func(b *Bridge, args []any) (any, error) {
		name, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		r, err := argRegion(args, 1)
		if err != nil {
			return nil, err
		}
		return arbor.NewView(name, r), nil
	}},
	// ScrollView(parent, x, y, w, h). A zero parent attaches to the root.
	"ScrollView": {5, func(b *Bridge, args []any) (any, error) {
		ph, err := argHandle(args, 0)
		if err != nil {
			return nil, err
		}
		if ph == 0 {
			ph = b.Root()
		}
		parent, err := b.View(ph)
		if err != nil {
			return nil, err
		}
		r, err := argRegion(args, 1)
		if err != nil {
			return nil, err
		}
		return arbor.NewScrollView(r, parent), nil
	}},
}

// Construct creates an object of the named class and returns its handle.
func (b *Bridge) Construct(class string, args ...any) (h Handle, err error) {
	if b.closed {
		return 0, ErrClosed
	}
	c, ok := constructors[class]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	if len(args) != c.arity {
		return 0, fmt.Errorf("%s: %w: got %d, want %d", class, ErrArity, len(args), c.arity)
	}
	defer recoverContract(class, &err)
	obj, err := c.fn(b, args)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", class, err)
	}
	return b.Register(obj), nil
}

// Call invokes the named method with args.
func (b *Bridge) Call(name string, args ...any) (result any, err error) {
	if b.closed {
		return nil, ErrClosed
	}
	m, ok := methodIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	if len(args) != m.Arity {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", name, ErrArity, len(args), m.Arity)
	}
	defer recoverContract(name, &err)
	result, err = m.fn(b, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

// recoverContract turns a tree contract panic into an ErrArgument error.
func recoverContract(name string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %w: %v", name, ErrArgument, r)
	}
}

// Methods lists the method table sorted by name.
func Methods() []Method {
	out := make([]Method, len(methodTable))
	copy(out, methodTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Doc returns the docstring of the named method.
func Doc(name string) (string, bool) {
	m, ok := methodIndex[name]
	return m.Doc, ok
}
