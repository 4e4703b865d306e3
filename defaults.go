package argp

import (
	"strings"

	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

// ConfigFile adds a YAML or JSON file of defaults. When Parse runs,
// every non-file option with a long key whose name (without the
// leading dashes) is present in the file, under prefix if given, gets
// that value written to its target before the command line is scanned:
//
//	count: 3
//	name: world
//	verbose: true
//
// Command line values still win. Values from a file never count as
// bound, so they do not satisfy required options. When several files
// are added, the first one that has a key is used.
func (r *Registry) ConfigFile(path string, prefix ...string) error {
	if !r.usable() {
		return nullParser("ConfigFile")
	}
	source, err := nflex.UnmarshalFile(path)
	if err != nil {
		return newError(FileOpen, path, errors.Wrap(err, "config file"))
	}
	if len(prefix) > 0 {
		source = source.Recurse(prefix...)
		if source == nil {
			debugf("config file %s has nothing under %v", path, prefix)
			return nil
		}
	}
	debugf("config file %s added", path)
	r.defaults = nflex.CombineSources(r.defaults, source)
	return nil
}

func (r *Registry) applyDefaults() error {
	if r.defaults == nil {
		return nil
	}
	for _, d := range r.descriptors {
		if d.bound || !d.isScalar() || d.longKey == "" {
			continue
		}
		key := strings.TrimPrefix(d.longKey, "--")
		if !r.defaults.Exists(key) {
			continue
		}
		if err := d.setDefault(r.defaults, key); err != nil {
			return newError(InvalidValue, d.Name(), errors.Wrapf(err, "config file value for %s", d.Name()))
		}
		debugf("default for %s from config file", d.Name())
	}
	return nil
}

func (d *Descriptor) setDefault(source nflex.Source, key string) error {
	switch d.typ {
	case Int:
		n, err := source.GetInt(key)
		if err != nil {
			return err
		}
		if d.value.OverflowInt(n) {
			return errors.Errorf("%d overflows %s", n, d.value.Type())
		}
		d.value.SetInt(n)
	case Float:
		f, err := source.GetFloat(key)
		if err != nil {
			return err
		}
		if d.value.OverflowFloat(f) {
			return errors.Errorf("%g overflows %s", f, d.value.Type())
		}
		d.value.SetFloat(f)
	case Bool:
		b, err := source.GetBool(key)
		if err != nil {
			return err
		}
		d.value.SetBool(b)
	case String, Char:
		s, err := source.GetString(key)
		if err != nil {
			return err
		}
		if cerr := d.coerce(s); cerr != nil {
			return cerr
		}
	}
	return nil
}
