package argp

import (
	"fmt"
	"reflect"
	"strings"
)

// Usage renders the help text: program name and description, a usage
// line, then one row per option in registration order.
//
//	  --count  -c  <integer>      Number of greetings (Type: int) [Default: 1]
//
// For non-file options the default shown is whatever the target holds
// right now, so callers should initialize targets before parsing.
func (r *Registry) Usage() string {
	var b strings.Builder
	var name, description string
	var descriptors []*Descriptor
	if r != nil {
		name, description = r.name, r.description
		if r.usable() {
			descriptors = r.descriptors
		}
	}
	fmt.Fprintf(&b, "\n%s\n", orDefault(name, "Program Name"))
	fmt.Fprintf(&b, "%s\n\n", orDefault(description, "No description provided."))
	fmt.Fprintf(&b, "Usage: %s [OPTIONS]\n\n", orDefault(name, "program"))
	b.WriteString("Options:\n")

	var longWidth, shortWidth int
	for _, d := range descriptors {
		if len(d.longKey) > longWidth {
			longWidth = len(d.longKey)
		}
		if len(d.shortKey) > shortWidth {
			shortWidth = len(d.shortKey)
		}
	}
	for _, d := range descriptors {
		fmt.Fprintf(&b, "  %-*s  %-*s%-15s%s",
			longWidth+2, d.longKey,
			shortWidth+2, d.shortKey,
			d.typ.Token(),
			orDefault(d.description, "No description"))
		fmt.Fprintf(&b, " (Type: %s)", d.typ)
		if d.required {
			b.WriteString(" [Required]")
		}
		if dflt, ok := d.currentValue(); ok {
			fmt.Fprintf(&b, " [Default: %s]", dflt)
		}
		b.WriteRune('\n')
	}
	b.WriteRune('\n')
	return b.String()
}

// currentValue formats what the target holds for the help text. File
// options have no meaningful default.
func (d *Descriptor) currentValue() (string, bool) {
	if !d.isScalar() {
		return "", false
	}
	switch d.typ {
	case Int:
		return fmt.Sprintf("%d", d.value.Int()), true
	case Float:
		return fmt.Sprintf("%.2f", d.value.Float()), true
	case Bool:
		return fmt.Sprintf("%t", d.value.Bool()), true
	case String:
		return orDefault(d.value.String(), "None"), true
	case Char:
		var c rune
		if d.value.Kind() == reflect.Uint8 {
			c = rune(d.value.Uint())
		} else {
			c = rune(d.value.Int())
		}
		if c == 0 {
			return "None", true
		}
		return string(c), true
	}
	return "", false
}
