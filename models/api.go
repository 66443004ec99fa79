package models

import "time"

// APIConfig holds connection parameters for the monitoring REST backend.
// Interval fields are kept in milliseconds to match the stored
// configuration tree.
type APIConfig struct {
	// BaseURL is the root endpoint of the backend API.
	BaseURL string `json:"baseUrl"`

	// TimeoutMs is the per-request timeout in milliseconds.
	TimeoutMs int `json:"timeoutMs"`

	// RetryAttempts is the number of retries for a failed request.
	RetryAttempts int `json:"retryAttempts"`

	// RetryDelayMs is the pause between retries in milliseconds.
	RetryDelayMs int `json:"retryDelayMs"`
}

// TimeoutDuration returns the request timeout as a time.Duration.
func (a APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.TimeoutMs) * time.Millisecond
}

// RetryDelayDuration returns the retry pause as a time.Duration.
func (a APIConfig) RetryDelayDuration() time.Duration {
	return time.Duration(a.RetryDelayMs) * time.Millisecond
}
