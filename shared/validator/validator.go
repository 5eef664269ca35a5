package validator

import (
	val "github.com/go-playground/validator/v10"

	"todonotes/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

// ValidateStruct runs the `validate` tags of data, descending into nested
// structs. The first failing rule is reported as an invalid input failure.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.InvalidInputFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.InvalidInputFromString(msg) //nolint:wrapcheck
	}

	return nil
}
