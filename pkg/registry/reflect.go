package registry

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FromMethods builds a Registry from the exported, zero-argument methods of v.
//
// Accepted signatures:
//   - func()              registered as an action
//   - func() error        registered as an action
//   - func() bool         registered as a guard
//   - func() (bool, error) registered as a guard
//
// Each method is registered under its Go name and under the name with a
// lowercase first letter, so a method Patrol serves the identifier "patrol"
// and CanPatrol serves the guard "canPatrol". Methods of other shapes are ignored.
func FromMethods(v any) (*Registry, error) {
	if v == nil {
		return nil, fmt.Errorf("registry: nil actor")
	}
	r := NewRegistry()
	val := reflect.ValueOf(v)
	typ := val.Type()

	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !m.IsExported() {
			continue
		}
		fn := val.Method(i)
		ft := fn.Type()
		if ft.NumIn() != 0 {
			continue
		}

		var (
			action ActionFunc
			guard  GuardFunc
		)
		switch {
		case ft.NumOut() == 0:
			action = func() error {
				fn.Call(nil)
				return nil
			}
		case ft.NumOut() == 1 && ft.Out(0) == errorType:
			action = func() error {
				return asError(fn.Call(nil)[0])
			}
		case ft.NumOut() == 1 && ft.Out(0).Kind() == reflect.Bool:
			guard = func() (bool, error) {
				return fn.Call(nil)[0].Bool(), nil
			}
		case ft.NumOut() == 2 && ft.Out(0).Kind() == reflect.Bool && ft.Out(1) == errorType:
			guard = func() (bool, error) {
				out := fn.Call(nil)
				return out[0].Bool(), asError(out[1])
			}
		default:
			continue
		}

		for _, name := range methodNames(m.Name) {
			if action != nil {
				r.Action(name, action)
			} else {
				r.Guard(name, guard)
			}
		}
	}
	return r, nil
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

func methodNames(name string) []string {
	first, size := utf8.DecodeRuneInString(name)
	lower := string(unicode.ToLower(first)) + name[size:]
	if lower == name {
		return []string{name}
	}
	return []string{name, lower}
}
