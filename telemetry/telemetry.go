package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/armon/go-metrics"
	prometheussink "github.com/armon/go-metrics/prometheus"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

const metricsServiceName = "bridge_relay"

type TelemetryConfig struct {
	PrometheusAddr string `json:"prometheusAddr"` // empty disables the scrape endpoint
	DataDogAddr    string `json:"dataDogAddr"`    // empty disables the datadog profiler and tracer
}

// Telemetry exposes the relay metrics: a prometheus scrape endpoint and an
// optional DataDog profiler/tracer. Metric helpers in this package write to
// the global go-metrics sink Start registers.
type Telemetry struct {
	config           TelemetryConfig
	prometheusServer *http.Server
	logger           hclog.Logger
}

func NewTelemetry(config TelemetryConfig, logger hclog.Logger) *Telemetry {
	return &Telemetry{
		config: config,
		logger: logger,
	}
}

func (t *Telemetry) IsEnabled() bool {
	return t.config.PrometheusAddr != "" || t.config.DataDogAddr != ""
}

func (t *Telemetry) Start() error {
	if !t.IsEnabled() {
		return nil
	}

	if err := t.registerSinks(); err != nil {
		return err
	}

	if t.config.PrometheusAddr != "" {
		t.prometheusServer = &http.Server{
			Addr:              t.config.PrometheusAddr,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 60 * time.Second,
		}

		go func() {
			t.logger.Info("prometheus endpoint started", "addr", t.config.PrometheusAddr)

			if err := t.prometheusServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				t.logger.Error("prometheus endpoint error", "err", err)
			}
		}()
	}

	if t.config.DataDogAddr != "" {
		if err := t.startDataDog(); err != nil {
			return err
		}
	}

	return nil
}

func (t *Telemetry) Close(ctx context.Context) error {
	if t.prometheusServer != nil {
		t.logger.Info("prometheus endpoint stopping", "addr", t.prometheusServer.Addr)

		if err := t.prometheusServer.Shutdown(ctx); err != nil {
			return err
		}
	}

	if t.config.DataDogAddr != "" {
		profiler.Stop()
		tracer.Stop()
	}

	return nil
}

// registerSinks installs the global go-metrics fanout: an in-memory sink for
// SIGUSR1 dumps plus a prometheus sink when the endpoint is enabled.
func (t *Telemetry) registerSinks() error {
	inm := metrics.NewInmemSink(10*time.Second, time.Minute)
	metrics.DefaultInmemSignal(inm)

	sinks := metrics.FanoutSink{inm}

	if t.config.PrometheusAddr != "" {
		promSink, err := prometheussink.NewPrometheusSink()
		if err != nil {
			return fmt.Errorf("failed to create prometheus sink: %w", err)
		}

		sinks = append(sinks, promSink)
	}

	conf := metrics.DefaultConfig(metricsServiceName)
	conf.EnableHostname = false

	if _, err := metrics.NewGlobal(conf, sinks); err != nil {
		return fmt.Errorf("failed to register metrics sinks: %w", err)
	}

	return nil
}

func (t *Telemetry) startDataDog() error {
	err := profiler.Start(
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
			profiler.GoroutineProfile,
		),
		profiler.WithService(metricsServiceName),
		profiler.WithAgentAddr(t.config.DataDogAddr),
	)
	if err != nil {
		return fmt.Errorf("failed to start datadog profiler: %w", err)
	}

	tracer.Start(
		tracer.WithService(metricsServiceName),
		tracer.WithAgentAddr(t.config.DataDogAddr),
	)

	t.logger.Info("datadog telemetry started", "addr", t.config.DataDogAddr)

	return nil
}
