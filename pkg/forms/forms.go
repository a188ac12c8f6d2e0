// Package forms holds the plain HTML forms of the site together with their
// validation rules. Rules that need storage (uniqueness, existence) are
// checked by the service layer and reported through the same Errors value.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonField is the key for errors that do not belong to a single field.
const NonField = "__all__"

var ErrInvalid = errors.New("form is invalid")

const (
	msgRequired = "This field is required."
	msgUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgMismatch = "The two password fields didn't match."
	msgChoice   = "Select a valid choice. That choice is not one of the available choices."
)

type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Get(field string) []string {
	return e[field]
}

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("license_number", func(fl validator.FieldLevel) bool {
		return LicenseNumberError(fl.Field().String()) == ""
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}

// check runs the struct tags of form and records every failure in errs.
func check(form interface{}, errs Errors) {
	err := validate.Struct(form)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add(NonField, err.Error())
		return
	}

	for _, fe := range verrs {
		// dive rules report "drivers[0]"; errors belong to the whole field.
		field, _, _ := strings.Cut(fe.Field(), "[")
		errs.Add(field, message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), len([]rune(fmt.Sprint(fe.Value()))))
	case "min":
		return fmt.Sprintf("This password is too short. It must contain at least %s characters.", fe.Param())
	case "eqfield":
		return msgMismatch
	case "username":
		return msgUsername
	case "license_number":
		return LicenseNumberError(fmt.Sprint(fe.Value()))
	case "numeric":
		return msgChoice
	}
	return fmt.Sprintf("Invalid value for %s.", fe.Field())
}
