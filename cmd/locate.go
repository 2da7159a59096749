package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/UnknownOlympus/hermes/internal/config"
	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/location"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/internal/share"
	"github.com/spf13/cobra"
)

type locateOptions struct {
	lat, lon, accuracy float64
	copy, share        bool
	json               bool
}

func newLocateCmd() *cobra.Command {
	var opts locateOptions

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Resolve the current location once and print the address",
		Long: `Acquires coordinates from the configured source, or from --lat/--lon, and
prints the resolved address.

$ hermes locate --lat 35.6892 --lon 51.3890 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("lat") != flags.Changed("lon") {
				return errors.New("--lat and --lon must be given together")
			}

			var src location.Source
			if flags.Changed("lat") {
				if err := location.Validate(opts.lat, opts.lon); err != nil {
					return err
				}
				coords := models.NewCoordinates(opts.lat, opts.lon)
				if flags.Changed("accuracy") {
					coords = coords.WithAccuracy(opts.accuracy)
				}
				src = location.NewStaticSource(coords)
			}

			return runLocate(cmd, src, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "latitude of the reading, overrides the configured source")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "longitude of the reading, overrides the configured source")
	cmd.Flags().Float64Var(&opts.accuracy, "accuracy", 0, "accuracy of the reading in meters")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the address summary to the clipboard")
	cmd.Flags().BoolVar(&opts.share, "share", false, "print the share payload and copy it to the clipboard")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the resulting state as JSON")

	return cmd
}

func runLocate(cmd *cobra.Command, src location.Source, opts locateOptions) error {
	ctx := cmd.Context()
	cfg := config.MustLoad()
	log := setupLogger(cfg.Env, os.Stderr)

	hermes, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snap, locateErr := hermes.orchestrator.Run(ctx, src)

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
	}

	if locateErr != nil {
		return errors.New(snap.Error)
	}

	if !opts.json {
		printAddress(out, hermes.messages, *snap.Address, *snap.Coordinates)
	}

	clip := share.SystemClipboard{}

	if opts.copy {
		if _, err = hermes.orchestrator.Copy(clip); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}

	if opts.share {
		payload, err := hermes.orchestrator.SharePayload()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n%s\n%s\n", payload.Title, payload.Text, payload.URL)

		// No share sheet in a terminal, so the summary lands in the clipboard.
		if err = hermes.orchestrator.Share(ctx, nil, clip); err != nil {
			return err
		}
	}

	return nil
}

func printAddress(out io.Writer, msgs locale.Messages, addr models.AddressDetails, coords models.Coordinates) {
	for _, field := range models.Fields() {
		if value := addr.Get(field); value != "" {
			fmt.Fprintf(out, "%s: %s\n", msgs.Labels[field], value)
		}
	}
	if addr.Country != "" {
		fmt.Fprintln(out, addr.Country)
	}
	fmt.Fprintln(out, share.MapURL(coords))
}
