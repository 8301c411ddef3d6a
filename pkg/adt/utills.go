package adt

import "reflect"

// IsNil reports whether i holds one of Go's two absence forms: the untyped
// nil or a typed nil pointer boxed in a non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func equalData(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
