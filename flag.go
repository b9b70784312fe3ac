package cmdex

import (
	"strings"

	"github.com/vedranvuk/strconvex"
)

const (
	// ShortPrefix is the prefix of a short flag identifier on command line.
	ShortPrefix = "-"
	// LongPrefix is the prefix of a long flag identifier on command line.
	LongPrefix = "--"
)

// Kind defines the kind of a flag Value.
type Kind int

const (
	// KindBool marks a boolean Value. Boolean flags are presence-only;
	// seeing the flag on command line sets the value to true.
	KindBool Kind = iota
	// KindText marks a text Value.
	KindText
	// KindInt marks a 32-bit signed integer Value.
	KindInt
	// KindFloat marks a 32-bit floating point Value.
	KindFloat
)

// String implements stringer on Kind.
func (k Kind) String() (s string) {
	switch k {
	case KindBool:
		s = "bool"
	case KindText:
		s = "text"
	case KindInt:
		s = "int"
	case KindFloat:
		s = "float"
	}
	return
}

// Value is a flag value. Its kind is fixed when the owning Flag is
// constructed and never changes afterwards; only the payload of the
// active kind is ever written. Reading a kind other than the active one
// returns that kind's zero value, there is no cross-kind coercion.
type Value struct {
	kind     Kind
	boolval  bool
	textval  string
	intval   int32
	floatval float32
}

// Kind returns the active kind of the Value.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Returns false if kind is not KindBool.
func (v *Value) Bool() bool { return v.kind == KindBool && v.boolval }

// Text returns the text payload. Returns an empty string if kind is not
// KindText.
func (v *Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.textval
}

// Int returns the integer payload. Returns 0 if kind is not KindInt.
func (v *Value) Int() int32 {
	if v.kind != KindInt {
		return 0
	}
	return v.intval
}

// Float returns the float payload. Returns 0 if kind is not KindFloat.
func (v *Value) Float() float32 {
	if v.kind != KindFloat {
		return 0
	}
	return v.floatval
}

// set parses raw into the payload of the active kind. Boolean values are
// presence-only and are set to true regardless of raw.
func (v *Value) set(raw string) error {
	switch v.kind {
	case KindBool:
		v.boolval = true
		return nil
	case KindText:
		return strconvex.StringToInterface(raw, &v.textval)
	case KindInt:
		return strconvex.StringToInterface(raw, &v.intval)
	case KindFloat:
		return strconvex.StringToInterface(raw, &v.floatval)
	}
	return nil
}

// reset restores the payloads to their declaration defaults.
func (v *Value) reset() {
	v.boolval = false
	v.textval = ""
	v.intval = 0
	v.floatval = 0
}

// Flag is a single flag declaration owned by a Command. It is matched on
// command line by its short identifier prefixed with "-" or its long
// identifier prefixed with "--", exact and case-sensitive.
type Flag struct {
	// short is the short flag identifier, e.g. "f".
	short string
	// long is the long flag identifier, e.g. "ferris".
	long string
	// description is the flag help text.
	description string
	// value is the typed flag value.
	value Value
	// parsed indicates if the flag was seen during the last Execute.
	parsed bool
}

// newFlag returns a new *Flag with given identifiers, description and kind.
func newFlag(short, long, description string, kind Kind) *Flag {
	return &Flag{
		short:       short,
		long:        long,
		description: description,
		value:       Value{kind: kind},
	}
}

// NewBoolFlag returns a new boolean *Flag, false by default. Boolean flags
// are presence-only; they never consume a following argument.
func NewBoolFlag(short, long, description string) *Flag {
	return newFlag(short, long, description, KindBool)
}

// NewTextFlag returns a new text *Flag, empty by default. When matched the
// immediately following argument is taken as the flag value.
func NewTextFlag(short, long, description string) *Flag {
	return newFlag(short, long, description, KindText)
}

// NewIntFlag returns a new integer *Flag, 0 by default. When matched the
// immediately following argument is parsed as the flag value.
func NewIntFlag(short, long, description string) *Flag {
	return newFlag(short, long, description, KindInt)
}

// NewFloatFlag returns a new float *Flag, 0 by default. When matched the
// immediately following argument is parsed as the flag value.
func NewFloatFlag(short, long, description string) *Flag {
	return newFlag(short, long, description, KindFloat)
}

// Short returns the short flag identifier.
func (f *Flag) Short() string { return f.short }

// Long returns the long flag identifier.
func (f *Flag) Long() string { return f.long }

// Description returns the flag help text.
func (f *Flag) Description() string { return f.description }

// Value returns the flag value.
func (f *Flag) Value() *Value { return &f.value }

// Parsed returns if the flag was seen during the last Execute.
func (f *Flag) Parsed() bool { return f.parsed }

// Match returns if token addresses this flag, i.e. if token equals the
// prefixed short or the prefixed long identifier. Matching is exact and
// case-sensitive; there is no prefix matching and no "=value" splitting.
func (f *Flag) Match(token string) bool {
	return token == ShortPrefix+f.short || token == LongPrefix+f.long
}

// String implements stringer on Flag. It returns the flag's help line.
func (f *Flag) String() string {
	return "  " + ShortPrefix + f.short + ", " + LongPrefix + f.long + "\t" + f.description
}

// isFlag returns if token is addressed as a flag, i.e. starts with a flag
// prefix. The long prefix begins with the short prefix character so a token
// satisfying both branches is still a single match.
func isFlag(token string) bool {
	return strings.HasPrefix(token, ShortPrefix) || strings.HasPrefix(token, LongPrefix)
}
