package argp

import (
	"io"
	"os"
	"strings"

	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

// Registry is the ordered set of options for one parsing session. It is
// not safe for concurrent use; callers that need that should use
// independent Registries.
type Registry struct {
	descriptors []*Descriptor
	name        string
	description string
	helpOutput  io.Writer
	exit        func(int)
	rollback    bool
	released    bool
	defaults    nflex.Source
	remainder   []string
}

type RegistryFuncArg func(*Registry)

// WithName sets the program name shown by the help text.
func WithName(name string) RegistryFuncArg {
	return func(r *Registry) {
		r.name = name
	}
}

// WithDescription sets the program description shown by the help text.
func WithDescription(description string) RegistryFuncArg {
	return func(r *Registry) {
		r.description = description
	}
}

// WithHelpOutput overrides where help text is written. The default
// is os.Stdout.
func WithHelpOutput(w io.Writer) RegistryFuncArg {
	return func(r *Registry) {
		r.helpOutput = w
	}
}

// WithExit replaces os.Exit for the help short-circuit. If the
// replacement returns, Parse returns nil.
func WithExit(exit func(int)) RegistryFuncArg {
	return func(r *Registry) {
		r.exit = exit
	}
}

// WithFileRollback controls what happens when a coercion fails partway
// through Parse. By default, files already opened for earlier options
// stay open and belong to the caller. With rollback, Parse closes them,
// restores every target it wrote in that call, and clears their bound
// state before returning the error.
func WithFileRollback(rollback bool) RegistryFuncArg {
	return func(r *Registry) {
		r.rollback = rollback
	}
}

func NewRegistry(options ...RegistryFuncArg) *Registry {
	r := &Registry{
		helpOutput: os.Stdout,
		exit:       os.Exit,
	}
	for _, f := range options {
		f(r)
	}
	return r
}

func (r *Registry) usable() bool {
	return r != nil && !r.released
}

func nullParser(op string) *Error {
	return newError(NullParser, "", errors.Errorf("%s called on a nil or released Registry", op))
}

// Register adds an option. At least one of shortKey ("-x") and longKey
// ("--name") must be given; pass "" for an absent key or description.
// The target must be a pointer matching typ, see TypeTag.
//
// Registration is all-or-nothing: on error the Registry is unchanged.
func (r *Registry) Register(
	shortKey string,
	longKey string,
	typ TypeTag,
	target interface{},
	description string,
	required bool,
) error {
	if !r.usable() {
		return nullParser("Register")
	}
	if err := checkKeys(shortKey, longKey); err != nil {
		return err
	}
	for _, key := range []string{longKey, shortKey} {
		if key == "" {
			continue
		}
		if existing := r.Lookup(key); existing != nil {
			return newError(DuplicateArgument, key, errors.Errorf("%s is already registered for %s", key, existing.Name()))
		}
	}
	if !typ.Valid() {
		return newError(UnknownType, longKey+shortKey, errors.Errorf("type tag %d is not defined", int(typ)))
	}
	value, err := bindTarget(typ, target)
	if err != nil {
		return newError(UnknownType, longKey+shortKey, err)
	}
	d := &Descriptor{
		longKey:     strings.Clone(longKey),
		shortKey:    strings.Clone(shortKey),
		description: strings.Clone(description),
		typ:         typ,
		target:      target,
		value:       value,
		required:    required,
	}
	r.descriptors = append(r.descriptors, d)
	debugf("register %s %s %s required=%v", d.longKey, d.shortKey, typ, required)
	return nil
}

// Lookup finds the option registered under token, long or short. The
// scan is linear: option counts are small.
func (r *Registry) Lookup(token string) *Descriptor {
	if i := r.Index(token); i >= 0 {
		return r.descriptors[i]
	}
	return nil
}

// Index is the registration position of the option matching token, or -1.
func (r *Registry) Index(token string) int {
	if !r.usable() || token == "" {
		return -1
	}
	for i, d := range r.descriptors {
		if d.matches(token) {
			return i
		}
	}
	return -1
}

// Len is the number of registered options.
func (r *Registry) Len() int {
	if !r.usable() {
		return 0
	}
	return len(r.descriptors)
}

// Descriptors returns the options in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	if !r.usable() {
		return nil
	}
	n := make([]*Descriptor, len(r.descriptors))
	copy(n, r.descriptors)
	return n
}

// Release drops everything the Registry owns. It is safe to call more
// than once; after the first call every other method behaves as it
// would on a nil Registry. Targets and any files opened into them
// belong to the caller and are not touched.
//
//	r := argp.NewRegistry()
//	defer r.Release()
func (r *Registry) Release() {
	if !r.usable() {
		return
	}
	debugf("release %d options", len(r.descriptors))
	for i := range r.descriptors {
		r.descriptors[i] = nil
	}
	r.descriptors = nil
	r.defaults = nil
	r.remainder = nil
	r.released = true
}
