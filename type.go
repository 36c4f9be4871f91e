package caltime

import (
	"reflect"
)

// EnsureStructType returns struct type for struct or pointer types, nil otherwise
func EnsureStructType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return EnsureStructType(t.Elem())
	}
	return nil
}
