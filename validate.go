package argp

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	helpLong  = "--help"
	helpShort = "-h"
)

var (
	longKeyRE  = regexp.MustCompile(`^--[0-9A-Za-z]([_-]?[0-9A-Za-z]+)*$`)
	shortKeyRE = regexp.MustCompile(`^-[A-Za-z]$`)
)

// keyPair is checked with the validator. The "ne" rules reserve the
// help keys and are reported as DuplicateArgument, everything else as
// InvalidKey.
type keyPair struct {
	Short string `validate:"omitempty,shortkey,ne=-h"`
	Long  string `validate:"omitempty,longkey,ne=--help"`
}

var keyValidator = newKeyValidator()

func newKeyValidator() *validator.Validate {
	v := validator.New()
	for tag, re := range map[string]*regexp.Regexp{
		"longkey":  longKeyRE,
		"shortkey": shortKeyRE,
	} {
		re := re
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(err.Error())
		}
	}
	return v
}

func isHelp(token string) bool {
	return token == helpLong || token == helpShort
}

// checkKeys validates the format of the keys given to Register.
// Collisions with already registered keys are checked by the Registry.
func checkKeys(shortKey, longKey string) *Error {
	if shortKey == "" && longKey == "" {
		return newError(InvalidKey, "", errors.New("at least one of the long and short keys is required"))
	}
	err := keyValidator.Struct(keyPair{
		Short: shortKey,
		Long:  longKey,
	})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return newError(InvalidKey, longKey, errors.Wrap(err, "validate keys"))
	}
	var reserved *Error
	for _, fe := range fieldErrs {
		key := longKey
		if fe.Field() == "Short" {
			key = shortKey
		}
		if fe.Tag() == "ne" {
			if reserved == nil {
				reserved = newError(DuplicateArgument, key, errors.Errorf("%s is reserved for help", key))
			}
			continue
		}
		return newError(InvalidKey, key, errors.Errorf("%q is not a valid %s key", key, strings.ToLower(fe.Field())))
	}
	return reserved
}
