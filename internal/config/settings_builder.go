package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	settings []*Settings
	err      error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		settings: make([]*Settings, 0, 4),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, s := range b.settings {
		if err := mergo.Merge(settings, s); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return settings, settings.validate()
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.settings = append(b.settings, envSettings)
	return b
}

func (b *settingsBuilder) withFlags() *settingsBuilder {
	flags := ParseFlags()

	b.settings = append(b.settings, flags)
	return b
}

func (b *settingsBuilder) withJSON() *settingsBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, s := range b.settings {
		if s.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = s.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonSettings, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.settings = append(b.settings, jsonSettings)
	}

	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.settings = append(b.settings, defaultSettings())
	return b
}
