package telemetry_test

import (
	"context"
	"fmt"
	"time"

	"github.com/openfacet/openfacet/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Example_basicSetup demonstrates basic telemetry setup.
func Example_basicSetup() {
	// Create configuration
	cfg := telemetry.DefaultConfig()
	cfg.ServiceName = "facet"
	cfg.ServiceVersion = "1.0.0"

	// Initialize telemetry
	tel, err := telemetry.NewTelemetry(cfg)
	if err != nil {
		panic(err)
	}
	defer tel.Shutdown(context.Background())

	// Start metrics server (non-blocking)
	if err := tel.StartMetricsServer(); err != nil {
		panic(err)
	}

	// Add telemetry to context
	ctx := tel.WithContext(context.Background())

	// Use telemetry
	logger := telemetry.FromContext(ctx)
	logger.Info("Application started")

	// Output can vary, so we don't specify output for this example
}

// Example_structuredLogging demonstrates structured logging features.
func Example_structuredLogging() {
	cfg := telemetry.DevelopmentConfig()
	cfg.Logging.Output = "stdout"

	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	// Component-specific logger
	logger := tel.Logger.NewComponentLogger("loader")

	// Add context fields
	logger = logger.WithDocument("config.yaml").WithFormat("yaml")

	// Log at different levels
	logger.Debug("Reading document from disk")
	logger.Info("Document parsed successfully")
	logger.Warn("Document contains no top-level fields")

	// Log with error
	err := fmt.Errorf("unexpected end of input")
	logger.WithError(err).Error("Failed to parse document")

	// Output varies, no output specified
}

// Example_distributedTracing demonstrates distributed tracing usage.
func Example_distributedTracing() {
	cfg := telemetry.DevelopmentConfig()
	cfg.Tracing.Exporter = "stdout"

	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	// Start a load span
	ctx, span := tel.Tracer.StartLoadSpan(ctx, "left.json", "json")
	defer span.End()

	// Add attributes
	span.SetAttributes(
		attribute.String("document.source", "left.json"),
		attribute.Int("document.bytes", 2048),
	)

	// Nested compare span
	_, childSpan := tel.Tracer.StartCompareSpan(ctx, "left.json", "right.json")
	defer childSpan.End()

	childSpan.SetAttributes(
		telemetry.AttrCompareResult.Bool(true),
		telemetry.AttrChangeCount.Int(0),
	)

	// Record success
	telemetry.RecordSuccess(childSpan)

	// Output varies, no output specified
}

// Example_metricsCollection demonstrates metrics collection.
func Example_metricsCollection() {
	cfg := telemetry.DefaultConfig()
	cfg.Metrics.Enabled = true

	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	// Record document loads
	tel.Metrics.RecordDocumentLoaded("yaml", 3*time.Millisecond)
	tel.Metrics.RecordDocumentLoaded("json", 1*time.Millisecond)
	tel.Metrics.RecordLoadError("cue")

	// Record comparisons
	tel.Metrics.RecordComparison(false, 3, 2*time.Millisecond)
	tel.Metrics.RecordComparison(true, 0, 1*time.Millisecond)

	// Record value operations
	tel.Metrics.RecordValueOperation("clone", 500*time.Microsecond)
	tel.Metrics.RecordValueOperation("freeze", 200*time.Microsecond)

	// Record watch activity
	tel.Metrics.RecordWatchReload("succeeded")
	tel.Metrics.SetActiveWatches(2)

	fmt.Println("Metrics recorded successfully")
	// Output: Metrics recorded successfully
}

// Example_eventPublishing demonstrates event publishing and subscription.
func Example_eventPublishing() {
	cfg := telemetry.DefaultConfig()
	cfg.Events.Enabled = true
	cfg.Events.EnableAsync = false // Synchronous for example

	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	// Subscribe to events
	tel.Events.Subscribe(func(event telemetry.Event) {
		fmt.Printf("Event: %s - %s\n", event.Type, event.Message)
	}, nil) // No filter, receive all events

	// Publish events
	tel.Events.PublishDocumentLoaded("config.yaml", "yaml", 3*time.Millisecond)
	tel.Events.PublishComparison("left.json", "right.json", false, 3)
	tel.Events.PublishDocumentReloaded("config.yaml")

	// Output varies due to async nature, no output specified
}

// Example_loadInstrumentation demonstrates instrumenting a document load.
func Example_loadInstrumentation() {
	cfg := telemetry.DevelopmentConfig()
	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	// Record a complete load operation with tracing, metrics, and events
	err := telemetry.RecordLoadOperation(ctx, "config.yaml", "yaml", func() error {
		// Simulate parsing work
		time.Sleep(5 * time.Millisecond)
		return nil
	})

	if err == nil {
		fmt.Println("Load instrumentation complete")
	}

	// Output: Load instrumentation complete
}

// Example_compareInstrumentation demonstrates instrumenting a comparison.
func Example_compareInstrumentation() {
	cfg := telemetry.DevelopmentConfig()
	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	equal, changes, err := telemetry.RecordCompareOperation(ctx, "left.json", "right.json",
		func() (bool, int, error) {
			// Simulate comparison work
			time.Sleep(2 * time.Millisecond)
			return false, 3, nil
		})

	if err == nil {
		fmt.Printf("equal=%v changes=%d\n", equal, changes)
	}

	// Output: equal=false changes=3
}

// Example_instrumentedOperation demonstrates using the InstrumentedContext helper.
func Example_instrumentedOperation() {
	cfg := telemetry.DevelopmentConfig()
	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	// Start instrumented operation
	ic := telemetry.StartOperation(ctx, "diff.run",
		attribute.String("compare.left", "left.json"),
	)
	defer ic.End(nil)

	// Use the instrumented context
	ic.Logger.Info("Comparing documents")

	// Simulate comparison
	time.Sleep(5 * time.Millisecond)

	ic.Logger.Debug("Comparison complete")

	fmt.Println("Operation instrumentation complete")
	// Output: Operation instrumentation complete
}

// Example_eventFiltering demonstrates event filtering.
func Example_eventFiltering() {
	cfg := telemetry.DefaultConfig()
	cfg.Events.Enabled = true
	cfg.Events.EnableAsync = false

	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	// Subscribe with level filter (only warnings and errors)
	tel.Events.Subscribe(func(event telemetry.Event) {
		fmt.Printf("Important event: %s\n", event.Type)
	}, telemetry.FilterByLevel(telemetry.EventLevelWarning))

	// Subscribe with type filter (only divergence events)
	tel.Events.Subscribe(func(event telemetry.Event) {
		fmt.Printf("Divergence: %s\n", event.Message)
	}, telemetry.FilterByType("comparison.diverged"))

	// Publish various events
	tel.Events.PublishDocumentLoaded("a.json", "json", time.Millisecond) // Info - filtered by level filter
	tel.Events.PublishComparison("a.json", "b.json", false, 3)           // Warning - passes level filter
	tel.Events.PublishParseError("c.cue", "incomplete value")            // Error - passes level filter

	// Output varies, no output specified
}

// Example_productionConfiguration demonstrates production-ready configuration.
func Example_productionConfiguration() {
	cfg := telemetry.ProductionConfig()

	// Customize for your environment
	cfg.ServiceName = "facet"
	cfg.ServiceVersion = "1.2.3"
	cfg.Environment = "production"

	// Configure OTLP exporter
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "otlp"
	cfg.Tracing.Endpoint = "otel-collector.monitoring.svc.cluster.local:4317"
	cfg.Tracing.SamplingRate = 0.1 // 10% sampling
	cfg.Tracing.Insecure = false   // Use TLS in production

	// Configure metrics
	cfg.Metrics.Enabled = true
	cfg.Metrics.ListenAddress = ":9090"
	cfg.Metrics.Namespace = "facet"

	// Configure events
	cfg.Events.BufferSize = 10000
	cfg.Events.FlushInterval = 5 * time.Second

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	fmt.Println("Production configuration validated")
	// Output: Production configuration validated
}

// Example_errorRecording demonstrates error recording on spans and logs.
func Example_errorRecording() {
	cfg := telemetry.DevelopmentConfig()
	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	// Start a span
	ctx, span := tel.Tracer.Start(ctx, "document.load")
	defer span.End()

	// Simulate an error
	err := fmt.Errorf("unexpected end of input")

	if err != nil {
		// Record error on span
		telemetry.RecordError(span, err)

		// Record error metric
		tel.Metrics.RecordLoadError("json")

		// Log error
		logger := telemetry.FromContext(ctx)
		logger.WithError(err).Error("Load failed")
	}

	fmt.Println("Error recording complete")
	// Output: Error recording complete
}

// Example_multipleComponents demonstrates telemetry in a multi-component system.
func Example_multipleComponents() {
	cfg := telemetry.DevelopmentConfig()
	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	// Component-specific loggers
	loaderLogger := tel.Logger.NewComponentLogger("loader")
	comparerLogger := tel.Logger.NewComponentLogger("comparer")
	watcherLogger := tel.Logger.NewComponentLogger("watcher")

	loaderLogger.Info("Loader initialized")
	comparerLogger.Info("Comparing document pair")
	watcherLogger.Info("Watching for changes")

	fmt.Println("Multi-component logging complete")
	// Output: Multi-component logging complete
}
