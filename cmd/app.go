package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hermes/internal/config"
	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/location"
	"github.com/UnknownOlympus/hermes/internal/metrics"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// app holds the wired components shared by the commands.
type app struct {
	cfg          *config.Config
	log          *slog.Logger
	registry     *prometheus.Registry
	messages     locale.Messages
	orchestrator *service.Orchestrator
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	messages, err := locale.Lookup(cfg.Locale)
	if err != nil {
		return nil, err
	}

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	source, err := location.NewSource(location.SourceConfig{
		Type:    location.SourceType(cfg.Location.Source),
		APIKey:  cfg.Location.APIKey,
		Timeout: cfg.HTTPTimeout,
		Static:  staticReading(cfg.Location),
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create location source: %w", err)
	}

	primary := geocoding.Disabled(string(geocoding.ResolverTypeGemini))
	if cfg.Gemini.APIKey != "" {
		primary, err = geocoding.NewResolver(ctx, geocoding.ResolverConfig{
			Type:     geocoding.ResolverTypeGemini,
			APIKey:   cfg.Gemini.APIKey,
			Model:    cfg.Gemini.Model,
			Timeout:  cfg.Gemini.Timeout,
			Messages: messages,
			Logger:   log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create primary resolver: %w", err)
		}
	} else {
		log.WarnContext(ctx, "Gemini API key is not set, every request will use the fallback resolver")
	}

	fallback, err := geocoding.NewResolver(ctx, geocoding.ResolverConfig{
		Type:      geocoding.ResolverType(cfg.Fallback.Resolver),
		APIKey:    cfg.Location.APIKey,
		BaseURL:   cfg.Fallback.BaseURL,
		UserAgent: cfg.Fallback.UserAgent,
		RateLimit: cfg.Fallback.Rate,
		Timeout:   cfg.HTTPTimeout,
		Messages:  messages,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback resolver: %w", err)
	}

	log.DebugContext(ctx, "Components initialized",
		"locale", messages.Language, "source", cfg.Location.Source, "fallback", cfg.Fallback.Resolver)

	return &app{
		cfg:          cfg,
		log:          log,
		registry:     reg,
		messages:     messages,
		orchestrator: service.NewOrchestrator(log, source, primary, fallback, messages, appMetrics, nil),
	}, nil
}

func staticReading(cfg config.LocationConfig) *models.Coordinates {
	if cfg.Latitude == nil || cfg.Longitude == nil {
		return nil
	}

	coords := models.NewCoordinates(*cfg.Latitude, *cfg.Longitude)
	if cfg.Accuracy != nil {
		coords = coords.WithAccuracy(*cfg.Accuracy)
	}

	return &coords
}
