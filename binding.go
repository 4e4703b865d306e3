package argp

import (
	"os"
	"reflect"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

var filePtrType = reflect.TypeOf((*os.File)(nil))

// bindTarget checks, once, that target is a pointer the coercion for
// typ can write through. The returned element is trusted from then on.
//
//	Float                 *float32, *float64
//	Int                   *int, *int8, *int16, *int32, *int64
//	String                *string
//	Char                  *rune (first rune), *byte (first byte)
//	Bool                  *bool
//	all six file types    **os.File
//
// Named types with those underlying kinds are fine.
func bindTarget(typ TypeTag, target interface{}) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, errors.New("binding target is nil")
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, errors.Errorf("binding target must be a non-nil pointer, not %T", target)
	}
	elem := v.Elem()
	var ok bool
	switch typ {
	case Float:
		switch elem.Kind() {
		case reflect.Float32, reflect.Float64:
			ok = true
		}
	case Int:
		switch elem.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ok = true
		}
	case String:
		ok = elem.Kind() == reflect.String
	case Char:
		switch elem.Kind() {
		case reflect.Int32, reflect.Uint8:
			ok = true
		}
	case Bool:
		ok = elem.Kind() == reflect.Bool
	default:
		if !typ.IsFile() {
			return reflect.Value{}, errors.Errorf("type tag %d is not defined", int(typ))
		}
		ok = elem.Type() == filePtrType
	}
	if !ok {
		return reflect.Value{}, errors.Errorf("a %s option cannot bind to %T (%s)",
			typ, target, reflectutils.NonPointer(v.Type()))
	}
	return elem, nil
}

// isScalar is true for the types whose current value can be shown as a
// default and loaded from a config file.
func (d *Descriptor) isScalar() bool {
	return !d.typ.IsFile()
}
