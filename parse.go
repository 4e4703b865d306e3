package argp

import (
	"fmt"
	"os"
	"reflect"

	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
)

// Parse makes one left-to-right pass over args, which must not include
// the program name.
//
// If "--help" or "-h" appears anywhere, the help text is written and
// the process exits with status 0 before anything else is looked at.
//
// Tokens that match no option are skipped; see Remaining. The first
// occurrence of an option wins and later ones, under either key, are
// ignored. Bool options take no value. Every other option consumes the
// following token; when there is none the option is left unbound. The
// first coercion failure stops the scan and is returned as is. After a
// complete scan, required options that were never bound are reported
// together as ArgumentMissing.
func (r *Registry) Parse(args []string) error {
	if !r.usable() {
		return nullParser("Parse")
	}
	if debugging {
		debug("parse", len(r.descriptors), "options", args)
	}
	if len(r.descriptors) == 0 {
		return newError(NoArgumentsRegistered, "", errors.New("no options are registered"))
	}
	for _, token := range args {
		if isHelp(token) {
			debugf("help requested with %s", token)
			r.help()
			return nil
		}
	}
	if err := r.applyDefaults(); err != nil {
		return err
	}

	r.remainder = nil
	var undo []func()
	for i := 0; i < len(args); i++ {
		token := args[i]
		d := r.Lookup(token)
		if d == nil {
			r.remainder = append(r.remainder, token)
			continue
		}
		if d.bound {
			debugf("at %d, %s already bound, ignoring", i, token)
			continue
		}
		var value string
		if d.typ.takesValue() {
			if i+1 >= len(args) {
				debugf("at %d, %s has no value following it", i, token)
				continue
			}
			i++
			value = args[i]
		}
		if r.rollback {
			undo = append(undo, d.snapshot())
		}
		if err := d.coerce(value); err != nil {
			debugf("at %d, %s failed: %s", i, token, err)
			if r.rollback {
				for j := len(undo) - 1; j >= 0; j-- {
					undo[j]()
				}
			}
			return err
		}
		d.bound = true
		debugf("at %d, %s bound", i, token)
	}

	missing := r.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, d := range missing {
		names[i] = d.Name()
	}
	err := newError(ArgumentMissing, names[0], errors.Errorf("required %s not supplied", joinNames(names)))
	err.Missing = names
	return err
}

// ParseOSArgs is Parse(os.Args[1:]).
func (r *Registry) ParseOSArgs() error {
	if len(os.Args) == 0 {
		return r.Parse(nil)
	}
	return r.Parse(os.Args[1:])
}

// Remaining returns the tokens from the last Parse that matched no
// option, in order. Values consumed by options are not included, but
// values following an option that was already bound are.
func (r *Registry) Remaining() []string {
	if !r.usable() {
		return nil
	}
	return r.remainder
}

// Missing returns the required options that are not bound.
func (r *Registry) Missing() []*Descriptor {
	if !r.usable() {
		return nil
	}
	var missing []*Descriptor
	for _, d := range r.descriptors {
		if d.required && !d.bound {
			missing = append(missing, d)
		}
	}
	return missing
}

func (r *Registry) help() {
	fmt.Fprint(r.helpOutput, r.Usage())
	r.Release()
	r.exit(0)
}

// snapshot captures the target so that a failed Parse can put it back.
// A file opened since the snapshot is closed on restore.
func (d *Descriptor) snapshot() func() {
	bound := d.bound
	if d.typ.IsFile() {
		prev, _ := d.value.Interface().(*os.File)
		return func() {
			if f, _ := d.value.Interface().(*os.File); f != nil && f != prev {
				debugf("rollback closing %s for %s", f.Name(), d.Name())
				_ = f.Close()
			}
			d.value.Set(reflect.ValueOf(prev))
			d.bound = bound
		}
	}
	prev := deepcopy.Copy(d.value.Interface())
	return func() {
		d.value.Set(reflect.ValueOf(prev))
		d.bound = bound
	}
}
