package contracts

import (
	"fmt"
	"reflect"
)

// CallbackMessage is a notification message carrying a reply callback. The
// publisher attaches any func value; the recipient executes it manually via
// Execute. The messenger itself never invokes the callback.
type CallbackMessage struct {
	NotificationMessage
	callback reflect.Value
}

// NewCallbackMessage creates a callback message. The callback must be a
// non-nil func value; its signature is validated at Execute time, not here.
func NewCallbackMessage(sender any, notification string, callback any) (*CallbackMessage, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}
	fn := reflect.ValueOf(callback)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %T, want a func", ErrNilCallback, callback)
	}
	return &CallbackMessage{
		NotificationMessage: NotificationMessage{
			MessageBase:  NewMessageBase(sender),
			Notification: notification,
		},
		callback: fn,
	}, nil
}

// Execute invokes the attached callback with args and returns its results.
// The argument list must match the callback signature in arity and
// assignability; a mismatch returns an error wrapping ErrInvalidInvocation
// without calling the callback.
func (m *CallbackMessage) Execute(args ...any) ([]any, error) {
	ft := m.callback.Type()

	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("%w: callback takes at least %d arguments, got %d",
				ErrInvalidInvocation, ft.NumIn()-1, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("%w: callback takes %d arguments, got %d",
			ErrInvalidInvocation, ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if ft.IsVariadic() && i >= ft.NumIn()-1 {
			want = ft.In(ft.NumIn() - 1).Elem()
		} else {
			want = ft.In(i)
		}
		if arg == nil {
			if !nilAssignable(want) {
				return nil, fmt.Errorf("%w: argument %d is nil, want %s",
					ErrInvalidInvocation, i, want)
			}
			in[i] = reflect.Zero(want)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: argument %d is %s, want %s",
				ErrInvalidInvocation, i, av.Type(), want)
		}
		in[i] = av
	}

	out := m.callback.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// nilAssignable reports whether an untyped nil argument can stand in for a
// parameter of type t.
func nilAssignable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
