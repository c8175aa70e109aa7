package config

const (
	// EnvLogLevel is the environment variable holding the logrus level.
	EnvLogLevel = "LOG_LEVEL"
	// EnvSource is the environment variable selecting the resolution source.
	EnvSource = "TICKRES_SOURCE"
	// EnvMeasureRounds is the environment variable holding the calibration sample count.
	EnvMeasureRounds = "TICKRES_MEASURE_ROUNDS"
	// DefaultEnvFile is the env file loaded when none is given.
	DefaultEnvFile = ".env"
	// DefaultLogLevel is used when LOG_LEVEL is unset or invalid.
	DefaultLogLevel = "info"
)
