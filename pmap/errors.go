package pmap

import (
	"errors"
	"reflect"

	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/hamt"
)

// ErrInvalidArgument is matched by every ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrBuilderSealed is raised when a Builder is used after Map.
var ErrBuilderSealed = hamt.ErrSealed

// ArgumentError reports a nil key or value passed to Op.
type ArgumentError struct {
	Op  string
	Arg string
}

func (e *ArgumentError) Error() string {
	return "pmap: " + e.Op + ": " + e.Arg + " must not be nil"
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func isAbsent(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func checkKey(op string, key interface{}) {
	if isAbsent(key) {
		panic(&ArgumentError{Op: op, Arg: "key"})
	}
}

func checkValue(op string, value interface{}) {
	if isAbsent(value) {
		panic(&ArgumentError{Op: op, Arg: "value"})
	}
}
