package engine

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/victor/vector"
	sqlite "modernc.org/sqlite"
)

type scalarFunction struct {
	name  string
	nArgs int32
	impl  func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error)
}

var functions = []scalarFunction{
	{name: "vec_add", nArgs: 2, impl: binaryVector("vec_add", func(a, b vector.Vector) (vector.Vector, error) { return vector.Add(a, b), nil })},
	{name: "vec_sub", nArgs: 2, impl: binaryVector("vec_sub", func(a, b vector.Vector) (vector.Vector, error) { return vector.Sub(a, b), nil })},
	{name: "vec_cross", nArgs: 2, impl: binaryVector("vec_cross", vector.Cross)},
	{name: "vec_dot", nArgs: 2, impl: binaryScalar("vec_dot", func(a, b vector.Vector) (float32, error) { return vector.Dot(a, b), nil })},
	{name: "vec_angle", nArgs: 2, impl: binaryScalar("vec_angle", vector.AngleBetween)},
	{name: "vec_scale", nArgs: 2, impl: vecScaleImpl},
	{name: "vec_norm", nArgs: 1, impl: vecNormImpl},
	{name: "vec_text", nArgs: 1, impl: vecTextImpl},
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers the vector scalar functions with the
// driver so they are available on new connections opened after this call.
// It is safe to call multiple times; only the first call registers.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() {
		for _, fn := range functions {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArgs, fn.impl); err != nil {
				// another package may have registered the same name on this driver
				if strings.Contains(err.Error(), "already registered") {
					continue
				}
				registerErr = fmt.Errorf("engine: register %s: %w", fn.name, err)
				return
			}
		}
	})
	return registerErr
}

// asVector decodes a BLOB argument; a NULL argument yields ok == false.
func asVector(fn string, arg driver.Value) (vector.Vector, bool, error) {
	switch v := arg.(type) {
	case nil:
		return vector.Vector{}, false, nil
	case []byte:
		vec, err := vector.Decode(v)
		if err != nil {
			return vector.Vector{}, false, fmt.Errorf("%s: %w", fn, err)
		}
		return vec, true, nil
	default:
		return vector.Vector{}, false, fmt.Errorf("%s: unsupported argument type %T for vector; want BLOB", fn, arg)
	}
}

func asScalar(fn string, arg driver.Value) (float32, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return float32(v), true, nil
	case float64:
		return float32(v), true, nil
	default:
		return 0, false, fmt.Errorf("%s: unsupported argument type %T for scalar; want REAL or INTEGER", fn, arg)
	}
}

func binaryVector(name string, op func(a, b vector.Vector) (vector.Vector, error)) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, b, ok, err := vectorPair(name, args)
		if err != nil || !ok {
			return nil, err
		}
		out, err := op(a, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return vector.Encode(out), nil
	}
}

func binaryScalar(name string, op func(a, b vector.Vector) (float32, error)) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, b, ok, err := vectorPair(name, args)
		if err != nil || !ok {
			return nil, err
		}
		out, err := op(a, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return float64(out), nil
	}
}

func vectorPair(name string, args []driver.Value) (vector.Vector, vector.Vector, bool, error) {
	if len(args) != 2 {
		return vector.Vector{}, vector.Vector{}, false, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	a, okA, err := asVector(name, args[0])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, false, err
	}
	b, okB, err := asVector(name, args[1])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, false, err
	}
	return a, b, okA && okB, nil
}

func vecScaleImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_scale: expected 2 arguments, got %d", len(args))
	}
	v, ok, err := asVector("vec_scale", args[0])
	if err != nil || !ok {
		return nil, err
	}
	k, ok, err := asScalar("vec_scale", args[1])
	if err != nil || !ok {
		return nil, err
	}
	return vector.Encode(vector.ScalarMul(v, k)), nil
}

func vecNormImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_norm: expected 1 argument, got %d", len(args))
	}
	v, ok, err := asVector("vec_norm", args[0])
	if err != nil || !ok {
		return nil, err
	}
	return float64(vector.Norm(v)), nil
}

func vecTextImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_text: expected 1 argument, got %d", len(args))
	}
	v, ok, err := asVector("vec_text", args[0])
	if err != nil || !ok {
		return nil, err
	}
	return v.String(), nil
}
