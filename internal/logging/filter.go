// Package logging provides zerolog helpers that keep key material out of logs.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns match key material and secrets as they tend to show up in
// log lines: assignments, hex dumps and PEM blocks.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// Assignments of secret-looking values (secret=..., seed: ..., password=...)
	regexp.MustCompile(`(?i)(secret|seed|password|passwd|private[_-]?key|signing[_-]?key)\s*[:=]\s*["']?[^\s"',}]{8,}["']?`),

	// Hex dumps of 32-byte keys or seeds
	regexp.MustCompile(`\b[0-9a-fA-F]{64}\b`),

	// PEM private keys
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]*PRIVATE KEY-----`),
}

// sensitiveFieldNames are log field names whose values are always redacted.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // Package-level patterns for reuse
	"secret",
	"seed",
	"password",
	"passwd",
	"private_key",
	"privatekey",
	"private-key",
	"signing_key",
	"key_material",
	"key_bytes",
}

// SensitiveDataHook is a zerolog hook that flags log entries whose message
// looks like it carries key material.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
// zerolog does not let hooks rewrite the message, so the hook marks the
// event and FilteringWriter does the redaction on the way out.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns [REDACTED] for sensitive field names and a filtered value
// otherwise.
//
//	logger.Debug().Str("path", logging.SafeValue("path", keyPath)).Msg("loading key")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and redacts sensitive data before it
// reaches the underlying writer. It wraps the rotating log file.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success even when the
// redacted output is shorter.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
