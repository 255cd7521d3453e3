package validator

import (
	"encoding/json"
	"eventzone/shared/failure"
	"eventzone/shared/timezone"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerTimezoneValidation(field val.FieldLevel) bool {
	id, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return timezone.IsValidTimezone(id)
}

func registerInstantValidation(field val.FieldLevel) bool {
	instant, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseInstant(instant)

	return err == nil
}

// jsonFieldName reports fields by their json name so messages match what the client sent.
func jsonFieldName(field reflect.StructField) string {
	name := strings.Split(field.Tag.Get("json"), ",")[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("timezone", registerTimezoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("instant", registerInstantValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads the JSON body into data without validating it, for callers that check the fields
// themselves before ValidateStruct.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err, "")

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, such as a query parameter, reporting failures under name.
func ValidateVar(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err, name)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
