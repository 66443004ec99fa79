// Package config holds the runtime configuration of the reef monitoring
// dashboard.
//
// Two layers live here. [Settings] is the small bootstrap layer read once at
// startup from environment variables, command-line flags, and an optional
// JSON file (later sources fill fields the earlier ones left empty). [Store]
// is the live configuration tree: compiled-in defaults for the detected
// environment, overlaid with persisted user overrides from a key-value
// store, queried and updated by the rest of the application for the whole
// process lifetime.
//
// The main entry points are [GetSettings] for bootstrap configuration and
// [NewStore] for the configuration tree.
package config
