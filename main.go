package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/overclock/pkg/config"
	"github.com/golangdaddy/overclock/pkg/game"
	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/golangdaddy/overclock/pkg/logging"
	"github.com/golangdaddy/overclock/pkg/models/car"
	"github.com/golangdaddy/overclock/pkg/telemetry"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	fakeHardware := flag.Bool("fake-hardware", false, "use a fixed reference sample instead of reading sensors")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(config.GetString("logLevel"), config.GetString("logFormat"), os.Stdout)

	samplingCfg := config.GetSamplingConfig()
	var probe hardware.Probe
	if *fakeHardware || samplingCfg.Fake {
		log.Info().Msg("using reference hardware sample")
		probe = hardware.NewStaticProbe(hardware.ReferenceSample())
	} else {
		probe = hardware.NewSystemProbe(samplingCfg.NvidiaSMI)
	}
	sampler := hardware.NewSampler(probe, samplingCfg.Interval, samplingCfg.Timeout)

	carCfg := config.GetCarConfig()
	catalog, err := car.LoadCatalog(carCfg.Catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load car catalog")
	}
	log.Info().Int("cars", catalog.Len()).Msg("car catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var observer game.Observer
	if metricsCfg := config.GetMetricsConfig(); metricsCfg.Enabled {
		exporter := telemetry.NewExporter()
		observer = exporter
		go func() {
			if err := exporter.Serve(ctx, metricsCfg.Address, metricsCfg.Path); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	windowCfg := config.GetWindowConfig()
	courseCfg := config.GetCourseConfig()
	g := game.NewGame(game.Config{
		Width:        windowCfg.Width,
		Height:       windowCfg.Height,
		TickRate:     courseCfg.TickRate,
		CourseLength: courseCfg.Length,
		PaceSpeedKmh: courseCfg.PaceSpeedKmh,
		DefaultCar:   carCfg.Default,
	}, catalog, sampler, observer)

	ebiten.SetWindowSize(windowCfg.Width, windowCfg.Height)
	ebiten.SetWindowTitle(windowCfg.Title)
	if courseCfg.TickRate > 0 {
		ebiten.SetTPS(courseCfg.TickRate)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
