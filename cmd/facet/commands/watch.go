package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openfacet/openfacet/pkg/telemetry"
	"github.com/openfacet/openfacet/pkg/value"
)

func newWatchCommand() *cobra.Command {
	var (
		metricsAddr string
		tracing     bool
		debounce    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <left> <right>",
		Short: "Watch two documents and re-compare on change",
		Long: `Watch two documents on disk and re-run the structural comparison
whenever either one changes.

Each reload and comparison is logged; with --metrics-addr the process
also exposes Prometheus metrics over HTTP for the load, comparison, and
reload counters.`,
		Example: `  # Watch and re-compare on save
  facet watch ./left.yaml ./right.yaml

  # Expose metrics while watching
  facet watch --metrics-addr :9090 ./left.cue ./right.cue`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leftPath, rightPath := args[0], args[1]

			tel, err := telemetry.NewTelemetry(telemetry.CLIConfig(logLevel, metricsAddr, tracing))
			if err != nil {
				return fmt.Errorf("failed to initialize telemetry: %w", err)
			}
			ctx := tel.WithContext(cmd.Context())
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tel.Shutdown(shutdownCtx); err != nil {
					log.Warn().Err(err).Msg("Telemetry shutdown failed")
				}
			}()

			// Surface watch events through the structured log
			tel.Events.Subscribe(func(event telemetry.Event) {
				log.Info().
					Str("type", event.Type).
					Str("document", event.Document).
					Msg(event.Message)
			}, telemetry.FilterByLevel(telemetry.EventLevelWarning))

			if metricsAddr != "" {
				if err := tel.StartMetricsServer(); err != nil {
					return fmt.Errorf("failed to start metrics server: %w", err)
				}
				log.Info().Str("addr", metricsAddr).Msg("Serving metrics")
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the parent directories: editors often replace files
			// on save, which drops a watch placed on the file itself.
			watched := map[string]bool{
				filepath.Clean(leftPath):  true,
				filepath.Clean(rightPath): true,
			}
			for dir := range map[string]bool{
				filepath.Dir(leftPath):  true,
				filepath.Dir(rightPath): true,
			} {
				if err := watcher.Add(dir); err != nil {
					return fmt.Errorf("failed to watch %s: %w", dir, err)
				}
			}

			tel.Metrics.SetActiveWatches(2)
			_ = tel.Events.PublishWatchStarted([]string{leftPath, rightPath})

			// Initial comparison
			compareOnce(ctx, tel, leftPath, rightPath)

			var timer *time.Timer
			pending := make(chan struct{}, 1)

			for {
				select {
				case <-ctx.Done():
					_ = tel.Events.PublishWatchStopped("interrupted")
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !watched[filepath.Clean(event.Name)] {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
						continue
					}
					_ = tel.Events.PublishDocumentReloaded(event.Name)
					// Debounce bursts of write events from a single save
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, func() {
						select {
						case pending <- struct{}{}:
						default:
						}
					})

				case <-pending:
					compareOnce(ctx, tel, leftPath, rightPath)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Warn().Err(err).Msg("Watcher error")
				}
			}
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to expose Prometheus metrics on (disabled when empty)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "emit OpenTelemetry spans to stdout")
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "delay before re-comparing after a change")

	return cmd
}

// compareOnce loads both documents and runs one instrumented comparison.
func compareOnce(ctx context.Context, tel *telemetry.Telemetry, leftPath, rightPath string) {
	loader, err := newLoader()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create loader")
		tel.Metrics.RecordWatchReload("failed")
		return
	}

	var left, right value.Value

	err = telemetry.RecordLoadOperation(ctx, leftPath, formatName, func() error {
		doc, err := loadDocument(ctx, loader, leftPath)
		if err != nil {
			return err
		}
		left = doc.Root
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("document", leftPath).Msg("Failed to load document")
		tel.Metrics.RecordWatchReload("failed")
		return
	}

	err = telemetry.RecordLoadOperation(ctx, rightPath, formatName, func() error {
		doc, err := loadDocument(ctx, loader, rightPath)
		if err != nil {
			return err
		}
		right = doc.Root
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("document", rightPath).Msg("Failed to load document")
		tel.Metrics.RecordWatchReload("failed")
		return
	}

	equal, changes, _ := telemetry.RecordCompareOperation(ctx, leftPath, rightPath,
		func() (bool, int, error) {
			eq := value.Equal(left, right)
			n := 0
			if !eq {
				n = len(value.Diff(left, right))
			}
			return eq, n, nil
		})

	tel.Metrics.RecordWatchReload("succeeded")

	if equal {
		log.Info().Msg("Documents are structurally equal")
	} else {
		log.Warn().Int("changes", changes).Msg("Documents diverged")
	}
}
