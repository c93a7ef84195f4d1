package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their koanf keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})

	// cronspec accepts standard 5-field expressions and @descriptors.
	_ = v.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})

	return v
}

// fieldMessages renders a failed tag; %s is the tag parameter.
var fieldMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required when %s",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"oneof":       "must be one of: %s",
	"url":         "must be a valid URL",
	"timezone":    "must be an IANA time zone",
	"cronspec":    "must be a cron expression",
}

// Validate checks the configuration. The service refuses to start on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, fieldPath(fe.Namespace())+" "+fieldMessage(fe))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func fieldMessage(fe validator.FieldError) string {
	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		return "failed validation: " + fe.Tag()
	}

	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, fe.Param())
	}

	return msg
}

// fieldPath turns "Config.server.port" into "server.port".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
