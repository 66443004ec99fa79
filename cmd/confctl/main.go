package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-reef-monitor/internal/config"
	"github.com/MKhiriev/go-reef-monitor/internal/logger"
	"github.com/MKhiriev/go-reef-monitor/internal/store"
	"github.com/MKhiriev/go-reef-monitor/internal/workers"
	"github.com/MKhiriev/go-reef-monitor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-reef-monitor")
	settings, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting settings")
	}

	log = logger.NewLoggerWithLevel("go-reef-monitor", settings.App.LogLevel)
	log.Debug().Any("settings", settings).Msg("received settings")

	env := settings.ResolveEnvironment()
	log.Info().Str("environment", string(env)).Msg("environment resolved")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := store.NewKeyValueStore(ctx, settings.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key-value store")
	}

	configStore, err := config.NewStore(ctx, kv, env, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating configuration store")
	}

	flusher := workers.NewConfigFlusher(configStore, settings.Flush, log)
	flusher.Start(ctx)
	defer flusher.Stop()

	if err := dumpEffectiveConfig(configStore); err != nil {
		log.Err(err).Msg("error dumping configuration")
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// effectiveDump is the JSON document confctl prints on startup: the merged
// configuration tree plus the resolved feature and threshold summaries.
type effectiveDump struct {
	Environment config.Environment       `json:"environment"`
	Revision    string                   `json:"revision"`
	Config      config.ConfigTree        `json:"config"`
	Features    map[string]bool          `json:"features"`
	Thresholds  map[string]thresholdInfo `json:"thresholds"`
}

type thresholdInfo struct {
	Target models.Range `json:"target"`
	Range  models.Range `json:"range"`
}

func dumpEffectiveConfig(configStore *config.Store) error {
	thresholds := make(map[string]thresholdInfo)
	for name := range configStore.Thresholds() {
		target := configStore.Threshold(name, config.ThresholdTarget)
		absolute := configStore.Threshold(name, config.ThresholdRange)
		if target == nil || absolute == nil {
			continue
		}
		thresholds[name] = thresholdInfo{Target: *target, Range: *absolute}
	}

	dump := effectiveDump{
		Environment: configStore.Environment(),
		Revision:    configStore.Revision(),
		Config:      configStore.Config(),
		Features:    configStore.Features(),
		Thresholds:  thresholds,
	}

	raw, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing effective configuration: %w", err)
	}

	fmt.Printf("%s\n", raw)
	return nil
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info.String())
}
