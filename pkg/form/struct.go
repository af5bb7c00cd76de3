package form

import (
	"reflect"
	"strings"
)

// FromStruct flattens the exported fields of a struct (or pointer to struct) into a
// map usable by Validate. Keys come from the `form` tag, then the `json` tag, then
// the lower-cased field name; a tag of "-" skips the field. Nested structs are kept
// as values, not flattened. Anything that is not a struct yields an empty map.
func FromStruct(v any) map[string]any {
	out := make(map[string]any)

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return out
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return out
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}
		out[name] = rv.Field(i).Interface()
	}
	return out
}

func fieldName(sf reflect.StructField) (string, bool) {
	for _, tagName := range []string{"form", "json"} {
		tag := sf.Tag.Get(tagName)
		if tag == "" {
			continue
		}
		if tag == "-" {
			return "", true
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, false
		}
	}
	return strings.ToLower(sf.Name), false
}
