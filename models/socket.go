package models

import "time"

// SocketConfig holds live-data channel parameters for the dashboard.
type SocketConfig struct {
	// URL is the websocket endpoint for live sensor readings.
	URL string `json:"url"`

	// ReconnectDelayMs is the pause before a reconnect attempt
	// in milliseconds.
	ReconnectDelayMs int `json:"reconnectDelayMs"`

	// MaxReconnectAttempts caps consecutive reconnect attempts
	// before the channel is declared down.
	MaxReconnectAttempts int `json:"maxReconnectAttempts"`

	// PingIntervalMs is the keep-alive ping period in milliseconds.
	PingIntervalMs int `json:"pingIntervalMs"`
}

// ReconnectDelayDuration returns the reconnect pause as a time.Duration.
func (s SocketConfig) ReconnectDelayDuration() time.Duration {
	return time.Duration(s.ReconnectDelayMs) * time.Millisecond
}

// PingIntervalDuration returns the keep-alive period as a time.Duration.
func (s SocketConfig) PingIntervalDuration() time.Duration {
	return time.Duration(s.PingIntervalMs) * time.Millisecond
}
