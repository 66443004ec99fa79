package config

import "strings"

// Environment selects which compiled-in default tree the [Store] starts from.
type Environment string

const (
	// EnvDevelopment targets a locally running backend.
	EnvDevelopment Environment = "development"

	// EnvProduction targets the deployed backend.
	EnvProduction Environment = "production"
)

// DetectEnvironment maps a hostname to the environment it most likely runs
// in. Local names (localhost, loopback addresses, *.local, empty) mean
// development; everything else is treated as production.
func DetectEnvironment(hostname string) Environment {
	host := strings.ToLower(strings.TrimSpace(hostname))

	switch {
	case host == "":
		return EnvDevelopment
	case host == "localhost":
		return EnvDevelopment
	case host == "127.0.0.1" || host == "::1":
		return EnvDevelopment
	case strings.HasSuffix(host, ".local"):
		return EnvDevelopment
	default:
		return EnvProduction
	}
}
