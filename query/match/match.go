// Package match provides structural equality and partial-match helpers
// used by query filter registration. They operate on Go's native value
// model via reflection and are usable as standalone utilities.
package match

import "reflect"

// DeepEqual reports whether a and b are structurally equal. It is
// reflect.DeepEqual with one extra rule: an untyped nil matches a typed
// nil pointer, map, slice, channel, func or interface, so callers
// comparing against literal nil get the answer they expect.
func DeepEqual(a, b any) bool {
	if a == nil || b == nil {
		return IsNil(a) && IsNil(b)
	}
	return reflect.DeepEqual(a, b)
}

// IsNil reports whether v is nil, including typed nils boxed in an
// interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Partial reports whether value matches the shape described by partial.
// Only the parts present in partial are compared:
//
//   - a map partial requires every key to exist in value (as a map key
//     or an exported struct field of the same name) and to match
//     recursively;
//   - a struct partial compares exported fields only, skipping fields
//     left at their zero value;
//   - anything else is compared with DeepEqual.
//
// Pointers on either side are dereferenced before comparison; a nil
// pointer matches only nil.
func Partial(partial, value any) bool {
	return partialValue(reflect.ValueOf(partial), reflect.ValueOf(value))
}

func partialValue(p, v reflect.Value) bool {
	p = indirect(p)
	v = indirect(v)
	if !p.IsValid() {
		return !v.IsValid() || IsNil(v.Interface())
	}
	if !v.IsValid() {
		return false
	}

	switch p.Kind() {
	case reflect.Map:
		for _, key := range p.MapKeys() {
			field, ok := lookup(v, key)
			if !ok {
				return false
			}
			if !partialValue(p.MapIndex(key), field) {
				return false
			}
		}
		return true

	case reflect.Struct:
		t := p.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || p.Field(i).IsZero() {
				continue
			}
			field, ok := lookup(v, reflect.ValueOf(f.Name))
			if !ok {
				return false
			}
			if !partialValue(p.Field(i), field) {
				return false
			}
		}
		return true

	default:
		return DeepEqual(p.Interface(), v.Interface())
	}
}

// lookup resolves key against v: a map index for map values, an exported
// field of the same name for struct values.
func lookup(v reflect.Value, key reflect.Value) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Map:
		got := v.MapIndex(key)
		if !got.IsValid() {
			return reflect.Value{}, false
		}
		return got, true
	case reflect.Struct:
		if key.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		got := v.FieldByName(key.String())
		if !got.IsValid() {
			return reflect.Value{}, false
		}
		return got, true
	}
	return reflect.Value{}, false
}

// indirect unwraps interfaces and pointers down to the concrete value.
// A nil pointer or interface yields an invalid Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
