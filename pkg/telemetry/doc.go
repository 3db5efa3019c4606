// Package telemetry provides comprehensive observability instrumentation for facet.
//
// The telemetry package integrates structured logging (zerolog), distributed tracing
// (OpenTelemetry), metrics (Prometheus), and event publishing into a unified system
// for monitoring and debugging facet operations.
//
// # Architecture
//
// The telemetry system is built on four pillars:
//
//  1. Structured Logging - Context-aware logging with zerolog
//  2. Distributed Tracing - OpenTelemetry traces with multiple exporters
//  3. Metrics Collection - Prometheus metrics for operational insights
//  4. Event Publishing - Async event system for watch sessions and notifications
//
// # Usage
//
// Initialize telemetry at application startup:
//
//	cfg := telemetry.DefaultConfig()
//	cfg.ServiceName = "facet"
//	cfg.ServiceVersion = "1.0.0"
//
//	tel, err := telemetry.NewTelemetry(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tel.Shutdown(context.Background())
//
//	// Start metrics server
//	if err := tel.StartMetricsServer(); err != nil {
//	    log.Fatal(err)
//	}
//
// Add telemetry to context:
//
//	ctx = tel.WithContext(ctx)
//
// # Structured Logging
//
// The logger provides component-specific logging with automatic context propagation:
//
//	logger := tel.Logger.NewComponentLogger("loader")
//	logger = logger.WithDocument("config.yaml").WithFormat("yaml")
//	logger.Info("Parsing document")
//	logger.WithError(err).Error("Parse failed")
//
// Log levels: trace, debug, info, warn, error, fatal
//
// # Distributed Tracing
//
// Tracing provides visibility into load and comparison flow:
//
//	ctx, span := tel.Tracer.StartLoadSpan(ctx, "config.yaml", "yaml")
//	defer span.End()
//
//	// Record errors
//	if err != nil {
//	    telemetry.RecordError(span, err)
//	}
//
// Supported exporters: OTLP (production), Stdout (development)
//
// # Metrics
//
// Prometheus metrics track system behavior and performance:
//
//	// Record document loads
//	tel.Metrics.RecordDocumentLoaded("yaml", duration)
//	tel.Metrics.RecordLoadError("cue")
//
//	// Record comparisons
//	tel.Metrics.RecordComparison(false, 3, duration)
//
//	// Record value operations
//	tel.Metrics.RecordValueOperation("clone", duration)
//
// Metrics are exposed via HTTP at /metrics (default: :9090/metrics)
//
// # Event Publishing
//
// The event system provides async publishing with buffering and filtering:
//
//	// Publish events
//	tel.Events.PublishDocumentLoaded("config.yaml", "yaml", duration)
//	tel.Events.PublishComparison("a.json", "b.json", false, 3)
//
//	// Subscribe to events
//	tel.Events.Subscribe(func(event telemetry.Event) {
//	    fmt.Printf("Event: %s - %s\n", event.Type, event.Message)
//	}, telemetry.FilterByLevel("warning"))
//
// Event filters: FilterByLevel, FilterByType, FilterByDocument
//
// # Context Helpers
//
// High-level helpers simplify common instrumentation patterns:
//
//	// Instrument an operation
//	ic := telemetry.StartOperation(ctx, "diff.run",
//	    attribute.String("compare.left", leftPath))
//	defer ic.End(err)
//
//	ic.Logger.Info("Comparing documents")
//
//	// Document load
//	err := telemetry.RecordLoadOperation(ctx, path, "yaml", func() error {
//	    doc, err = loader.Load(ctx, path)
//	    return err
//	})
//
//	// Structural comparison
//	equal, changes, err := telemetry.RecordCompareOperation(ctx, left, right,
//	    func() (bool, int, error) {
//	        eq := value.Equal(a, b)
//	        return eq, len(value.Diff(a, b)), nil
//	    })
//
// # Configuration
//
// The package provides pre-configured setups for different environments:
//
//	// Development (verbose logging, stdout traces, full sampling)
//	cfg := telemetry.DevelopmentConfig()
//
//	// Production (JSON logs, OTLP traces, 10% sampling)
//	cfg := telemetry.ProductionConfig()
//
// # Graceful Shutdown
//
// Always shut down telemetry gracefully to flush pending data:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	if err := tel.Shutdown(ctx); err != nil {
//	    log.Printf("Telemetry shutdown error: %v", err)
//	}
//
// This ensures:
//   - All buffered events are published
//   - All pending traces are exported
//   - Metrics are finalized
//
// # Common Metrics
//
// Key metrics exposed:
//
//   - facet_documents_loaded_total{format}
//   - facet_document_load_duration_seconds{format}
//   - facet_document_load_errors_total{format}
//   - facet_comparisons_total{result}
//   - facet_compare_duration_seconds
//   - facet_changes_found
//   - facet_value_operations_total{operation}
//   - facet_value_operation_duration_seconds{operation}
//   - facet_watch_reloads_total{status}
//   - facet_active_watches
package telemetry
