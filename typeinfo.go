package dout

import (
	"fmt"
	"reflect"
	"strings"

	"dout/internal/demangle"
)

// TypeName returns the readable name of the compile-time type T.
func TypeName[T any]() string {
	return renderType(reflect.TypeOf((*T)(nil)).Elem())
}

// PrintType writes the readable name of the compile-time type T to p.
// (Go methods cannot carry type parameters, hence the free function.)
func PrintType[T any](p *Printer) {
	if !enabled {
		return
	}
	p.write(TypeName[T]() + "\n")
}

// Type prints the readable name of T on the default printer.
func Type[T any]() { PrintType[T](std) }

// TypeOf writes the readable runtime type of an evaluated expression, its
// value category (reference for pointer values, value otherwise) and,
// when the caller's source is available, the original text of the
// argument expression as an annotation.
func (p *Printer) TypeOf(value any) {
	if !enabled {
		return
	}
	p.typeOf(value, 3)
}

func (p *Printer) typeOf(value any, skip int) {
	category := "value"
	t := reflect.TypeOf(value)
	if t != nil && t.Kind() == reflect.Pointer {
		category = "reference"
	}
	line := renderType(t) + " (" + category + ")"
	if src := callArgText(skip, "TypeOf"); src != "" {
		line = src + ": " + line
	}
	p.write(line + "\n")
}

// runtimeTypeName names the dynamic type of a value for diagnostics.
func runtimeTypeName(v any) string {
	return renderType(reflect.TypeOf(v))
}

// renderType builds a readable type name. Every composite shape is a
// distinct case; only leaf names fall through to the demangler, which
// echoes already-readable Go names verbatim.
func renderType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + renderType(t.Elem())
	case reflect.Slice:
		return "[]" + renderType(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), renderType(t.Elem()))
	case reflect.Map:
		return "map[" + renderType(t.Key()) + "]" + renderType(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + renderType(t.Elem())
		case reflect.SendDir:
			return "chan<- " + renderType(t.Elem())
		default:
			return "chan " + renderType(t.Elem())
		}
	case reflect.Func:
		return renderFunc(t)
	default:
		name := t.String()
		if out, status := demangle.Demangle(name); status == demangle.StatusOK {
			return out
		}
		return name
	}
}

func renderFunc(t reflect.Type) string {
	var sb strings.Builder
	sb.WriteString("func(")
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			sb.WriteString("..." + renderType(t.In(i).Elem()))
			continue
		}
		sb.WriteString(renderType(t.In(i)))
	}
	sb.WriteString(")")
	switch t.NumOut() {
	case 0:
	case 1:
		sb.WriteString(" " + renderType(t.Out(0)))
	default:
		sb.WriteString(" (")
		for i := 0; i < t.NumOut(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(renderType(t.Out(i)))
		}
		sb.WriteString(")")
	}
	return sb.String()
}
