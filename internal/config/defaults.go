package config

// defaultTree returns the compiled-in configuration for the given
// environment. Environments differ only in endpoint addresses; every other
// value is shared.
//
// The tree is written with natural Go literals and normalized to canonical
// JSON form by [NewStore], so numeric types here are not significant.
func defaultTree(env Environment) map[string]any {
	apiBaseURL := "https://reef.example.com/api"
	socketURL := "wss://reef.example.com/ws"
	if env == EnvDevelopment {
		apiBaseURL = "http://localhost:8080/api"
		socketURL = "ws://localhost:8080/ws"
	}

	return map[string]any{
		"api": map[string]any{
			"baseUrl":       apiBaseURL,
			"timeoutMs":     10000,
			"retryAttempts": 3,
			"retryDelayMs":  2000,
		},
		"socket": map[string]any{
			"url":                  socketURL,
			"reconnectDelayMs":     5000,
			"maxReconnectAttempts": 10,
			"pingIntervalMs":       30000,
		},
		"intervals": map[string]any{
			"sensorPollMs":   5000,
			"chartRefreshMs": 60000,
			"statusCheckMs":  15000,
			"fullSyncMs":     300000,
		},
		"charts": map[string]any{
			"maxDataPoints":        500,
			"defaultTimespanHours": 24,
			"smoothing":            true,
			"palette":              []any{"#0ea5e9", "#22c55e", "#f97316", "#e11d48"},
		},
		"thresholds": map[string]any{
			"ph": map[string]any{
				"min":       6.8,
				"max":       8.0,
				"targetMin": 7.2,
				"targetMax": 7.6,
			},
			"temperature": map[string]any{
				"min":       22.0,
				"max":       30.0,
				"targetMin": 24.5,
				"targetMax": 26.5,
			},
			// ORP has no preferred band, only alarm bounds.
			"orp": map[string]any{
				"min": 300.0,
				"max": 450.0,
			},
			"salinity": map[string]any{
				"min":       1.020,
				"max":       1.028,
				"targetMin": 1.024,
				"targetMax": 1.026,
			},
			"alkalinity": map[string]any{
				"min":       7.0,
				"max":       12.0,
				"targetMin": 8.0,
				"targetMax": 9.5,
			},
		},
		"pumps": map[string]any{
			"defaults": map[string]any{
				"flowRatePercent": 60,
				"rampSeconds":     5,
			},
			"calibrationIntervalDays": 30,
			"maxRuntimeSeconds":       900,
		},
		"ui": map[string]any{
			"theme":        "dark",
			"locale":       "en-US",
			"dateFormat":   "2006-01-02 15:04",
			"showTooltips": true,
		},
		"features": map[string]any{
			"enableWebSocket":     true,
			"enableNotifications": true,
			"enablePumpControl":   false,
			"enableExport":        false,
		},
		"validation": map[string]any{
			"maxNameLength": 64,
			"maxNoteLength": 500,
			"allowedProbeTypes": []any{
				"ph", "temperature", "orp", "salinity", "alkalinity",
			},
		},
	}
}
