package argp

import (
	"reflect"
)

// Descriptor describes one registered option. Everything except the
// bound state is fixed at registration.
type Descriptor struct {
	longKey     string
	shortKey    string
	description string
	typ         TypeTag
	target      interface{}
	value       reflect.Value // target's element, checked against typ by bindTarget
	required    bool
	bound       bool
}

// LongKey is the "--name" form, or "" if only a short key was given.
func (d *Descriptor) LongKey() string { return d.longKey }

// ShortKey is the "-n" form, or "" if none was given.
func (d *Descriptor) ShortKey() string { return d.shortKey }

func (d *Descriptor) Description() string { return d.description }
func (d *Descriptor) Type() TypeTag       { return d.typ }
func (d *Descriptor) Required() bool      { return d.required }

// Target returns the pointer that was passed to Register.
func (d *Descriptor) Target() interface{} { return d.target }

// Bound is true once a value from the command line has been written
// through the target. Values from a config file do not count.
func (d *Descriptor) Bound() bool { return d.bound }

// Name is the key used in diagnostics: the long key when there is one.
func (d *Descriptor) Name() string {
	if d.longKey != "" {
		return d.longKey
	}
	return d.shortKey
}

func (d *Descriptor) matches(token string) bool {
	return (d.longKey != "" && d.longKey == token) ||
		(d.shortKey != "" && d.shortKey == token)
}
