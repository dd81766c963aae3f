// Package telemetry exports the live race and hardware state as Prometheus
// metrics.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/sim"
)

const namespace = "overclock"

// Exporter holds the gauges updated from simulation snapshots.
type Exporter struct {
	registry *prometheus.Registry

	hardware *prometheus.GaugeVec
	car      *prometheus.GaugeVec
	race     *prometheus.GaugeVec
	sensorOK prometheus.Gauge
	finished *prometheus.CounterVec

	lastCause models.GameOverCause
}

// NewExporter creates an exporter with its own registry.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		hardware: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "hardware",
				Name:      "reading",
				Help:      "Latest hardware reading feeding the car (MHz, percent, Celsius or bytes)",
			},
			[]string{"metric"},
		),
		car: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "car",
				Name:      "status",
				Help:      "Derived car attribute",
			},
			[]string{"car", "attribute"},
		),
		race: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "race",
				Name:      "state",
				Help:      "Current run state",
			},
			[]string{"field"},
		),
		sensorOK: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "hardware",
				Name:      "sensor_ok",
				Help:      "1 when a CPU or GPU temperature sensor was read",
			},
		),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "race",
				Name:      "finished_total",
				Help:      "Runs finished, by cause",
			},
			[]string{"cause"},
		),
	}

	e.registry.MustRegister(e.hardware, e.car, e.race, e.sensorOK, e.finished)
	return e
}

// Registry returns the registry the gauges live in.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe copies a snapshot into the gauges. A run's finish is counted once.
func (e *Exporter) Observe(snap sim.Snapshot) {
	s := snap.Sample
	e.hardware.WithLabelValues("cpu_clock_mhz").Set(s.CPUClockMHz)
	e.hardware.WithLabelValues("cpu_usage_pct").Set(s.CPUUsagePct)
	e.hardware.WithLabelValues("cpu_temp_c").Set(s.CPUTempC)
	e.hardware.WithLabelValues("gpu_clock_mhz").Set(s.GPUClockMHz)
	e.hardware.WithLabelValues("gpu_usage_pct").Set(s.GPUUsagePct)
	e.hardware.WithLabelValues("gpu_temp_c").Set(s.GPUTempC)
	e.hardware.WithLabelValues("ram_used_bytes").Set(float64(s.RAMUsedBytes))
	e.hardware.WithLabelValues("ram_total_bytes").Set(float64(s.RAMTotalBytes))
	e.hardware.WithLabelValues("disk_available_bytes").Set(float64(s.DiskAvailableBytes))
	if s.SensorOK {
		e.sensorOK.Set(1)
	} else {
		e.sensorOK.Set(0)
	}

	st := snap.Status
	for attr, v := range map[string]float64{
		"max_speed":        st.MaxSpeed,
		"fuel_capacity":    st.FuelCapacity,
		"weight":           st.Weight,
		"fuel_consumption": st.FuelConsumption,
		"acceleration":     st.Acceleration,
		"braking":          st.Braking,
		"grip":             st.Grip,
		"handling":         st.Handling,
		"aerodynamics":     st.Aerodynamics,
		"drs_acceleration": st.DRSAcceleration,
		"drs_max_speed":    st.DRSMaxSpeed,
	} {
		e.car.WithLabelValues(snap.CarID, attr).Set(v)
	}

	sess := snap.Session
	e.race.WithLabelValues("speed_kmh").Set(sess.CurrentSpeedKmh)
	e.race.WithLabelValues("gear").Set(float64(sess.CurrentGear))
	e.race.WithLabelValues("fuel").Set(sess.CurrentFuel)
	e.race.WithLabelValues("temp_c").Set(sess.CurrentTemp)
	e.race.WithLabelValues("distance_m").Set(sess.DistanceTraveled)
	e.race.WithLabelValues("play_time_s").Set(sess.PlayTime)
	e.race.WithLabelValues("penalty_time_s").Set(sess.PenaltyTime)
	e.race.WithLabelValues("pace_gap_m").Set(snap.Gap())

	if sess.IsGameOver && e.lastCause == models.CauseNone {
		e.finished.WithLabelValues(sess.Cause.String()).Inc()
	}
	e.lastCause = sess.Cause
}

// Handler serves the registry in the Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on addr until ctx is cancelled.
func (e *Exporter) Serve(ctx context.Context, addr, path string) error {
	if path == "" {
		path = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(path, e.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}()

	log.Info().Str("address", addr).Str("path", path).Msg("serving metrics")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
