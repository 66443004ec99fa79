package config

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-reef-monitor/models"
)

// Typed section views decode one top-level tree section into its models
// struct. They fail soft: a missing or type-corrupted section is logged and
// yields a zero (or partially filled) value, so a single broken section
// degrades one widget instead of the whole dashboard.

// API returns the backend connection section.
func (s *Store) API() models.APIConfig {
	var out models.APIConfig
	s.sectionInto("api", &out)
	return out
}

// Socket returns the live-data channel section.
func (s *Store) Socket() models.SocketConfig {
	var out models.SocketConfig
	s.sectionInto("socket", &out)
	return out
}

// Intervals returns the polling and refresh periods section.
func (s *Store) Intervals() models.IntervalsConfig {
	var out models.IntervalsConfig
	s.sectionInto("intervals", &out)
	return out
}

// Charts returns the chart presentation section.
func (s *Store) Charts() models.ChartsConfig {
	var out models.ChartsConfig
	s.sectionInto("charts", &out)
	return out
}

// Pumps returns the dosing pump section.
func (s *Store) Pumps() models.PumpsConfig {
	var out models.PumpsConfig
	s.sectionInto("pumps", &out)
	return out
}

// UI returns the cosmetic preferences section.
func (s *Store) UI() models.UIConfig {
	var out models.UIConfig
	s.sectionInto("ui", &out)
	return out
}

// Validation returns the input limits section.
func (s *Store) Validation() models.ValidationRules {
	var out models.ValidationRules
	s.sectionInto("validation", &out)
	return out
}

// Thresholds returns every threshold block keyed by parameter name.
// Individual malformed blocks are logged and skipped.
func (s *Store) Thresholds() map[string]models.ThresholdBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.ThresholdBlock)

	section, ok := s.tree["thresholds"].(map[string]any)
	if !ok {
		s.log.Warn().Str("section", "thresholds").Msg("configuration section is missing or not a mapping")
		return out
	}

	for parameter, value := range section {
		raw, ok := value.(map[string]any)
		if !ok {
			s.log.Warn().Str("parameter", parameter).Msg("threshold block is not a mapping")
			continue
		}

		var block models.ThresholdBlock
		if err := decodeSection(raw, &block); err != nil {
			s.log.Warn().Err(err).Str("parameter", parameter).Msg("threshold block is malformed")
			continue
		}
		out[parameter] = block
	}

	return out
}

// Features returns every feature flag keyed by name. Non-boolean values
// count as disabled, matching [Store.FeatureEnabled].
func (s *Store) Features() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool)

	features, ok := s.tree["features"].(map[string]any)
	if !ok {
		return out
	}

	for name, value := range features {
		enabled, ok := value.(bool)
		out[name] = ok && enabled
	}

	return out
}

// sectionInto decodes the named top-level section into out under the read
// lock. Missing and malformed sections leave out as provided and are only
// logged.
func (s *Store) sectionInto(name string, out any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, ok := s.tree[name].(map[string]any)
	if !ok {
		s.log.Warn().Str("section", name).Msg("configuration section is missing or not a mapping")
		return
	}

	if err := decodeSection(section, out); err != nil {
		s.log.Warn().Err(err).Str("section", name).Msg("configuration section is malformed")
	}
}

// decodeSection round-trips a canonical mapping through encoding/json into
// the typed destination. Unmatched fields fill what they can; the first type
// mismatch is reported after decoding finishes.
func decodeSection(section map[string]any, out any) error {
	raw, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("error decoding configuration section: %w", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error decoding configuration section: %w", err)
	}

	return nil
}
