package script

import (
	"fmt"

	"github.com/phanxgames/arbor"
)

// Script runtimes hand numbers over as whatever their native type is, so
// the integer and float readers accept every Go numeric kind a binding is
// likely to produce.

func argInt(args []any, i int) (int, error) {
	switch v := args[i].(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case Handle:
		return int(v), nil
	case float32:
		if v == float32(int(v)) {
			return int(v), nil
		}
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: argument %d: want integer, got %T(%v)", ErrArgument, i, args[i], args[i])
}

func argFloat(args []any, i int) (float64, error) {
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: argument %d: want number, got %T", ErrArgument, i, args[i])
}

func argBool(args []any, i int) (bool, error) {
	switch v := args[i].(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	}
	return false, fmt.Errorf("%w: argument %d: want bool, got %T", ErrArgument, i, args[i])
}

func argString(args []any, i int) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d: want string, got %T", ErrArgument, i, args[i])
	}
	return s, nil
}

// argHandle accepts a Handle, a non-negative integer, or nil for 0.
func argHandle(args []any, i int) (Handle, error) {
	if args[i] == nil {
		return 0, nil
	}
	n, err := argInt(args, i)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: argument %d: negative handle %d", ErrArgument, i, n)
	}
	return Handle(n), nil
}

// argPoint reads two integers starting at i.
func argPoint(args []any, i int) (arbor.Point, error) {
	x, err := argInt(args, i)
	if err != nil {
		return arbor.Point{}, err
	}
	y, err := argInt(args, i+1)
	if err != nil {
		return arbor.Point{}, err
	}
	return arbor.Point{X: x, Y: y}, nil
}

// argRegion reads four integers starting at i.
func argRegion(args []any, i int) (arbor.Region, error) {
	p, err := argPoint(args, i)
	if err != nil {
		return arbor.Region{}, err
	}
	s, err := argPoint(args, i+2)
	if err != nil {
		return arbor.Region{}, err
	}
	if s.X < 0 || s.Y < 0 {
		return arbor.Region{}, fmt.Errorf("%w: negative size %dx%d", ErrArgument, s.X, s.Y)
	}
	return arbor.NewRegion(p.X, p.Y, s.X, s.Y), nil
}
