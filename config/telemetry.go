package config

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/odpf/salt/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const uptimeInterval = time.Second * 2

var (
	buildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "digits_build_info",
		Help: "Build of the running digits server, always 1",
	}, []string{"version", "commit"})

	uptime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "digits_uptime_seconds",
		Help: "Seconds since the digits server started",
	})
)

// InitTelemetry starts tracing when a jaeger address is set and the metrics
// server when a profile address is set. The returned func stops both.
func InitTelemetry(l log.Logger, conf TelemetryConfig) (func(), error) {
	var tp *tracesdk.TracerProvider
	if conf.JaegerAddr != "" {
		l.Debug("enabling jaeger traces", "addr", conf.JaegerAddr)
		var err error
		tp, err = tracerProvider(conf.JaegerAddr)
		if err != nil {
			return nil, err
		}
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}

	var metricServer *http.Server
	var stopUptime func()
	if conf.ProfileAddr != "" {
		l.Debug("enabling profile metrics", "addr", conf.ProfileAddr)
		buildInfo.WithLabelValues(BuildVersion, BuildCommit).Set(1)
		stopUptime = observeUptime(uptimeInterval)

		metricServer = MetricsServer(conf.ProfileAddr)
		go func() {
			if err := metricServer.ListenAndServe(); err != http.ErrServerClosed {
				l.Warn("failed while serving metrics", "err", err)
			}
		}()
	}

	return func() {
		if stopUptime != nil {
			stopUptime()
		}
		if metricServer != nil {
			if err := metricServer.Close(); err != nil {
				l.Warn("failed to shutdown metrics http server", "err", fmt.Errorf("metricServer.Close: %w", err))
			}
		}
		if tp != nil {
			if err := tp.Shutdown(context.Background()); err != nil {
				l.Warn("failed to shutdown trace provider", "err", err)
			}
		}
	}, nil
}

// observeUptime refreshes the uptime gauge every interval until the
// returned func is called, which waits for the refresh loop to exit
func observeUptime(interval time.Duration) func() {
	start := time.Now()
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				uptime.Set(time.Since(start).Seconds())
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		<-done
	}
}

func tracerProvider(url string) (*tracesdk.TracerProvider, error) {
	jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
	if err != nil {
		return nil, err
	}
	return tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(jaegerExporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(AppName()),
			semconv.ServiceVersionKey.String(BuildVersion),
			attribute.String("build_commit", BuildCommit),
			attribute.String("build_date", BuildDate),
		)),
	), nil
}

// MetricsServer serves prometheus metrics and pprof on addr
func MetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
