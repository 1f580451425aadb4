package descriptor

import (
	"fmt"
	"strings"
)

// Translator resolves a class internal name (e.g. "pkg/SomeClass") to its
// name in another namespace. Returning false keeps the original name: missing
// mappings are common (JDK classes, classes outside the mapped program) and
// never fail the descriptor.
type Translator func(internalName string) (string, bool)

// InvalidDescriptorError reports a structurally malformed descriptor. No
// partial output is ever produced alongside one of these.
type InvalidDescriptorError struct {
	// Offset is the byte offset of the offending character.
	Offset int
	// Reason is the human-readable detail.
	Reason string
}

// Error implements the error interface.
func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor at offset %d: %s", e.Offset, e.Reason)
}

// Remap rewrites desc with every embedded class name passed through tr.
// Method descriptors (leading '(') and field-type descriptors are both
// accepted; the whole input must be consumed.
func Remap(desc string, tr Translator) (string, error) {
	if strings.HasPrefix(desc, "(") {
		return RemapMethod(desc, tr)
	}

	return RemapField(desc, tr)
}

// RemapField rewrites a single field-type descriptor (primitive, array, or
// object type).
func RemapField(desc string, tr Translator) (string, error) {
	w := walker{src: desc, tr: tr}

	if err := w.fieldType(); err != nil {
		return "", err
	}

	if err := w.expectEnd(); err != nil {
		return "", err
	}

	return w.out.String(), nil
}

// RemapMethod rewrites a method descriptor of the form `(<params>)<return>`.
// Parameter order is preserved exactly; each parameter's class tokens are
// remapped independently.
func RemapMethod(desc string, tr Translator) (string, error) {
	w := walker{src: desc, tr: tr}

	if err := w.methodType(); err != nil {
		return "", err
	}

	if err := w.expectEnd(); err != nil {
		return "", err
	}

	return w.out.String(), nil
}

// Validate checks desc for structural validity without translating anything.
func Validate(desc string) error {
	_, err := Remap(desc, func(name string) (string, bool) { return name, false })
	return err
}

// walker is the recursive-descent state: input cursor plus accumulated
// output. Output is only surfaced after the whole input parses.
type walker struct {
	src string
	pos int
	tr  Translator
	out strings.Builder
}

func (w *walker) errorf(offset int, format string, args ...any) error {
	return &InvalidDescriptorError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func (w *walker) expectEnd() error {
	if w.pos != len(w.src) {
		return w.errorf(w.pos, "trailing characters after descriptor")
	}

	return nil
}

// fieldType parses one type: primitive, array, or object reference.
func (w *walker) fieldType() error {
	if w.pos >= len(w.src) {
		return w.errorf(w.pos, "unexpected end of descriptor")
	}

	switch c := w.src[w.pos]; c {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'V':
		w.pos++
		w.out.WriteByte(c)

		return nil
	case '[':
		w.pos++
		w.out.WriteByte('[')

		return w.fieldType()
	case 'L':
		return w.objectType()
	default:
		return w.errorf(w.pos, "unknown type code %q", c)
	}
}

// objectType parses `L<internal/name>;`, translating the enclosed name.
func (w *walker) objectType() error {
	start := w.pos

	end := strings.IndexByte(w.src[w.pos:], ';')
	if end < 0 {
		return w.errorf(start, "unterminated object type")
	}

	name := w.src[w.pos+1 : w.pos+end]
	if name == "" {
		return w.errorf(start, "empty class name in object type")
	}

	if mapped, ok := w.tr(name); ok {
		name = mapped
	}

	w.pos += end + 1
	w.out.WriteByte('L')
	w.out.WriteString(name)
	w.out.WriteByte(';')

	return nil
}

// methodType parses `(<param-types>*)<return-type>`.
func (w *walker) methodType() error {
	if w.pos >= len(w.src) || w.src[w.pos] != '(' {
		return w.errorf(w.pos, "expected '('")
	}

	w.pos++
	w.out.WriteByte('(')

	for {
		if w.pos >= len(w.src) {
			return w.errorf(w.pos, "unbalanced parentheses")
		}

		if w.src[w.pos] == ')' {
			w.pos++
			w.out.WriteByte(')')

			break
		}

		if err := w.fieldType(); err != nil {
			return err
		}
	}

	return w.fieldType()
}
