package argp

import (
	"os"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// coerce converts token according to the descriptor's type tag and
// writes it through the target. Bool ignores token. On failure the
// target is left as it was.
func (d *Descriptor) coerce(token string) *Error {
	switch d.typ {
	case Bool:
		d.value.SetBool(true)
	case String:
		d.value.SetString(token)
	case Char:
		if token == "" {
			return newError(InvalidValue, d.Name(), errors.Errorf("empty value for %s", d.Name()))
		}
		if d.value.Kind() == reflect.Uint8 {
			d.value.SetUint(uint64(token[0]))
		} else {
			r, _ := utf8.DecodeRuneInString(token)
			d.value.SetInt(int64(r))
		}
	case Int:
		n, err := strconv.ParseInt(token, 10, d.value.Type().Bits())
		if err != nil {
			return newError(InvalidValue, d.Name(), errors.Wrapf(err, "value for %s", d.Name()))
		}
		d.value.SetInt(n)
	case Float:
		f, err := strconv.ParseFloat(token, d.value.Type().Bits())
		if err != nil {
			return newError(InvalidValue, d.Name(), errors.Wrapf(err, "value for %s", d.Name()))
		}
		d.value.SetFloat(f)
	default:
		flag, ok := d.typ.openFlags()
		if !ok {
			return newError(UnknownType, d.Name(), errors.Errorf("no coercion for type tag %d", int(d.typ)))
		}
		f, err := os.OpenFile(token, flag, 0o666)
		if err != nil {
			return newError(FileOpen, d.Name(), errors.Wrapf(err, "open %s for %s", token, d.Name()))
		}
		d.value.Set(reflect.ValueOf(f))
	}
	return nil
}
