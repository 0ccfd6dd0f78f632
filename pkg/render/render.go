// Package render turns decoded LLRP parameter and message values into
// a hierarchical textual representation for logging (LLRP
// Specification parameter trees have no canonical text form; this is
// a debugging convenience only, never parsed back — spec.md §1
// Non-goals).
package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pion/logging"
)

// Renderer walks a decoded value and produces a hierarchical text
// dump, in the struct's declared field order. A nil LeveledLogger
// disables the trace-level walk log.
type Renderer struct {
	log logging.LeveledLogger
}

// NewRenderer creates a Renderer. log may be nil.
func NewRenderer(log logging.LeveledLogger) *Renderer {
	return &Renderer{log: log}
}

// Render renders v to its hierarchical text form.
func (r *Renderer) Render(v interface{}) string {
	var b strings.Builder
	r.write(&b, reflect.ValueOf(v), 0)
	return b.String()
}

// Render renders v using a disabled logger, for callers that don't
// need walk tracing.
func Render(v interface{}) string {
	return NewRenderer(nil).Render(v)
}

func (r *Renderer) write(b *strings.Builder, v reflect.Value, depth int) {
	indent := strings.Repeat("  ", depth)

	if !v.IsValid() {
		b.WriteString(indent + "nil\n")
		return
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			b.WriteString(indent + "nil\n")
			return
		}
		r.write(b, v.Elem(), depth)

	case reflect.Struct:
		t := v.Type()
		if r.log != nil {
			r.log.Tracef("render: entering %s", t.Name())
		}
		b.WriteString(fmt.Sprintf("%s%s:\n", indent, t.Name()))
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fv := v.Field(i)
			if isEmpty(fv) {
				continue
			}
			b.WriteString(fmt.Sprintf("%s  %s: ", indent, field.Name))
			if isScalar(fv) {
				b.WriteString(fmt.Sprintf("%v\n", scalarValue(fv)))
				continue
			}
			b.WriteString("\n")
			r.write(b, fv, depth+2)
		}

	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b.WriteString(fmt.Sprintf("%s%x\n", indent, v.Interface()))
			return
		}
		for i := 0; i < v.Len(); i++ {
			b.WriteString(fmt.Sprintf("%s[%d]:\n", indent, i))
			r.write(b, v.Index(i), depth+1)
		}

	default:
		b.WriteString(fmt.Sprintf("%s%v\n", indent, v.Interface()))
	}
}

func isScalar(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Ptr, reflect.Interface:
		return false
	default:
		return true
	}
}

func scalarValue(v reflect.Value) interface{} {
	return v.Interface()
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return false
	}
}
