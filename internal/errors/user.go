package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice (not a map) because wrapped errors need errors.Is() traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Signing & keys
	// ===================
	{
		err: ErrFormatParse,
		info: ErrorInfo{
			Message: "Unknown signing format.",
			Action:  "Use --format blake3 or --format ed25519.",
		},
	},
	{
		err: ErrKeyFormat,
		info: ErrorInfo{
			Message: "The key file does not contain valid key material.",
			Action:  "Keys must be at least 32 bytes. Run 'seal text generate' to create a new key.",
		},
	},
	{
		err: ErrSignatureFormat,
		info: ErrorInfo{
			Message: "The signature could not be decoded.",
			Action:  "Pass the URL-safe base64 text printed by 'seal text sign'.",
		},
	},
	{
		err: ErrSignatureNotVerified,
		info: ErrorInfo{
			Message: "Signature not verified.",
			Action:  "Check that the message, key and --format match the ones used for signing.",
		},
	},
	{
		err: ErrEntropySource,
		info: ErrorInfo{
			Message: "The system random source is unavailable.",
		},
	},
	{
		err: ErrKeyFileExists,
		info: ErrorInfo{
			Message: "A key file already exists in the output directory.",
			Action:  "Choose another directory with --output-dir or pass --force to overwrite.",
		},
	},

	// ===================
	// Passwords
	// ===================
	{
		err: ErrPasswordTooShort,
		info: ErrorInfo{
			Message: "The password is too short for the enabled character classes.",
			Action:  "Increase --length or disable some character classes.",
		},
	},
	{
		err: ErrNoCharacterClass,
		info: ErrorInfo{
			Message: "All character classes are disabled.",
			Action:  "Enable at least one of upper case, lower case, numbers or symbols.",
		},
	},

	// ===================
	// Input & flags
	// ===================
	{
		err: ErrFileNotFound,
		info: ErrorInfo{
			Message: "The input file does not exist.",
			Action:  "Check the path, or use '-' to read from standard input.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidBase64Format,
		info: ErrorInfo{
			Message: "Invalid base64 format.",
			Action:  "Use --format standard or --format urlsafe.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but no terminal is attached.",
			Action:  "Pass --force to skip the confirmation.",
		},
	},
	{
		err: ErrConfigInvalid,
		info: ErrorInfo{
			Message: "The configuration file contains an invalid value.",
			Action:  "Run 'seal config show' and fix ~/.seal/config.yaml or .seal/config.yaml.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error, first by direct
// match, then through the wrap chain. Unknown errors keep their own message.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action. The action is empty when there is nothing the user can do.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
