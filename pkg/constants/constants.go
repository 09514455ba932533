// Package constants provides shared constants used throughout the ttscatalog codebase.
// This includes timeouts, retry limits, file permissions, and the discovery
// defaults that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for a single Hub API request
	DefaultHTTPTimeout = 30 * time.Second

	// RefreshTimeout bounds a full catalog refresh
	RefreshTimeout = 30 * time.Minute
)

// Retry constants describe the linear backoff used for Hub listing calls
const (
	// MaxAttempts is the number of tries for a single Hub request, first try included
	MaxAttempts = 4

	// RetryBackoff is the per-attempt backoff step (attempt n sleeps n*RetryBackoff)
	RetryBackoff = 350 * time.Millisecond
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Discovery defaults used when no configuration overrides them
const (
	// DefaultAuthor is the Hub account that publishes sherpa-onnx TTS models
	DefaultAuthor = "csukuangfj"

	// DefaultSearchLimit is the page size requested per search term
	DefaultSearchLimit = 1000

	// DefaultRevision is the git revision pinned in every dynamic entry
	DefaultRevision = "main"

	// DefaultHubEndpoint is the Hugging Face Hub base URL
	DefaultHubEndpoint = "https://huggingface.co"

	// UserAgent identifies the generator to the Hub
	UserAgent = "android-offline-tts-eval/1.0"

	// DefaultOutputPath is where the catalog artifact is written
	DefaultOutputPath = "VoicePingAndroidOfflineTtsEval/app/src/main/assets/model_catalog.json"

	// DefaultCacheSize bounds the per-run repository listing cache
	DefaultCacheSize = 4096
)

// DefaultSearchTerms returns the keywords used to discover candidate repositories.
func DefaultSearchTerms() []string {
	return []string{"vits", "matcha", "kokoro", "kitten"}
}

// Logging constants
const (
	// LogRotationSizeMB is the maximum size of a log file before rotation
	LogRotationSizeMB = 10

	// LogRotationAgeDays is the maximum age of rotated log files
	LogRotationAgeDays = 7

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)
