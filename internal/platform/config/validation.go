package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their config keys, so errors read
// "storage.driver" rather than "Storage.Driver".
var validate = newValidator()

// hints explain what a key controls, appended to its validation error.
var hints = map[string]string{
	"storage.driver":   "file keeps a .json or .yaml document, sqlite a database file",
	"storage.path":     "where contacts are loaded from and saved to",
	"log.level":        "trace also logs every dispatched command",
	"log.format":       "pretty is meant for an interactive terminal",
	"metrics.textfile": "the node_exporter textfile collector only reads *.prom files",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v
}

// Validate validates the configuration and returns an error if invalid.
// The assistant does not start with an invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors converts validator errors to a readable format.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	var msg string
	switch e.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "required_if":
		msg = fmt.Sprintf("%s is required when %s", field, formatCondition(field, e.Param()))
	case "min":
		msg = fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of %s, got %q",
			field, strings.ReplaceAll(e.Param(), " ", ", "), fmt.Sprint(e.Value()))
	case "endswith":
		msg = fmt.Sprintf("%s must end with %s, got %q", field, e.Param(), fmt.Sprint(e.Value()))
	default:
		msg = fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}

	if hint, ok := hints[field]; ok {
		msg += " (" + hint + ")"
	}

	return msg
}

// formatCondition turns a required_if param such as "Enabled true" into
// "log.file.enabled is true" for the field log.file.path.
func formatCondition(field, param string) string {
	sibling, value, ok := strings.Cut(param, " ")
	if !ok {
		return param
	}

	parent := field
	if i := strings.LastIndex(field, "."); i >= 0 {
		parent = field[:i]
	}

	return fmt.Sprintf("%s.%s is %s", parent, strings.ToLower(sibling), value)
}

// formatFieldPath converts "Config.storage.driver" to "storage.driver".
func formatFieldPath(namespace string) string {
	// Remove the root struct name (Config.)
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
