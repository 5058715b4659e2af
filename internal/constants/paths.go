package constants

// Directory and file names used by seal for configuration and logs.
const (
	// SealHome is the hidden directory name where seal stores config and logs.
	// It is created in the user's home directory, or in the project root for
	// project-level configuration.
	SealHome = ".seal"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file (~/.seal/logs/seal.log).
	CLILogFileName = "seal.log"

	// ConfigFileName is the name of both the global and the project config file.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides (SEAL_TEXT_FORMAT, ...).
	EnvPrefix = "SEAL"

	// HomeEnvVar overrides the location of the seal home directory.
	HomeEnvVar = "SEAL_HOME"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of rotated files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
