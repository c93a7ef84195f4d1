package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// redactedFields are attribute and struct field names whose values never
// reach the logs.
var redactedFields = []string{
	"password",
	"secret",
	"token",
	"apiKey",
	"api_key",
	"accessToken",
	"access_token",
	"refreshToken",
	"refresh_token",
	"authorization",
	"cookie",
	"session",
	"privateKey",
	"private_key",
}

var (
	jwtValue    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerValue = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
)

// RedactOptions returns the masq options applied to every JSON and text
// log record.
func RedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+4)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtValue),
		masq.WithRegex(bearerValue),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts with RedactOptions
// plus extra.
func NewReplaceAttr(extra ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(RedactOptions(), extra...)...)
}
