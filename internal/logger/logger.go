// Package logger configure the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/chainfolio/chainfolio/internal/config"
)

// LoggerService owns the optional New Relic application instance. When New
// Relic is not configured the service exists but carries a nil application,
// and every consumer degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes buffered telemetry. Safe to call with New Relic
// disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and the observability service from
// config.
//
// With a New Relic license key present, log output goes through the
// zerologWriter integration so entries carry linking metadata and get
// forwarded. Without one, plain stderr output is used.
func New(cfg *config.Config) (zerolog.Logger, *LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	service := &LoggerService{}

	var out io.Writer = os.Stderr
	if obs.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		service.nrApp = nrApp

		writer := zerologWriter.New(os.Stderr, nrApp)
		out = writer
	}

	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return logger, service, nil
}

// WithTraceContext returns a child logger carrying the trace and span ids
// of the given transaction, so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}
	metadata := txn.GetTraceMetadata()
	builder := logger.With()
	if metadata.TraceID != "" {
		builder = builder.Str("trace.id", metadata.TraceID)
	}
	if metadata.SpanID != "" {
		builder = builder.Str("span.id", metadata.SpanID)
	}
	return builder.Logger()
}
