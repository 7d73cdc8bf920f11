package dout

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// defaultLabel is used by the single-argument print form.
const defaultLabel = ">>>"

// Print writes the highlighted value under the fixed ">>>" label. It is
// the single-argument form of PrintLabeled.
func (p *Printer) Print(value any) {
	if !enabled {
		return
	}
	p.printLabeled(defaultLabel, value, " ")
}

// PrintLabeled writes "label: value" wrapped in the highlight escapes,
// followed by a newline, as one write. A different separator may be given
// as an optional third argument. Values without print support degrade to
// a diagnostic naming the offending type; printing never fails.
func (p *Printer) PrintLabeled(label, value any, sep ...string) {
	if !enabled {
		return
	}
	s := ": "
	if len(sep) > 0 {
		s = sep[0]
	}
	p.printLabeled(label, value, s)
}

func (p *Printer) printLabeled(label, value any, sep string) {
	if !printable(label) {
		p.printUnsupported("label", label)
		return
	}
	if !printable(value) {
		p.printUnsupported("value", value)
		return
	}
	p.write(p.hcol + p.stringify(label) + sep + p.stringify(value) + p.hcolR + "\n")
}

// PrintVar writes "name = value" without highlighting, the form used for
// variable dumps. The same capability check and diagnostic fallback apply.
func (p *Printer) PrintVar(name string, value any) {
	if !enabled {
		return
	}
	if !printable(value) {
		p.printUnsupported("value", value)
		return
	}
	p.write(name + " = " + p.stringify(value) + "\n")
}

// printUnsupported reports a capability mismatch instead of the value.
// This is deliberately not an error: the call site is often generic code
// where failing would be disproportionate.
func (p *Printer) printUnsupported(arg string, v any) {
	p.write(fmt.Sprintf("dout error: %s of type %s\n            has no print support for destination %s\n",
		arg, runtimeTypeName(v), runtimeTypeName(p.out)))
}

// printable is the duck-type probe deciding whether a value has a
// formatted-output capability: a string conversion the value's author
// intended, or a basic kind with an unambiguous rendering. Composite
// kinds without such a conversion take the diagnostic path.
func printable(v any) bool {
	switch v.(type) {
	case fmt.Stringer, fmt.Formatter, error, encoding.TextMarshaler:
		return true
	case nil:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String,
		reflect.Pointer, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// stringify renders a printable value, applying the configured precision
// to floats.
func (p *Printer) stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case float64:
		return strconv.FormatFloat(t, 'f', p.prec, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', p.prec, 32)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		// Named float types reach here.
		return strconv.FormatFloat(rv.Float(), 'f', p.prec, 64)
	}
	return fmt.Sprintf("%v", v)
}
