package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/skitter/frame"
	"github.com/oomph-ac/skitter/render"
	"github.com/oomph-ac/skitter/settings"
	"github.com/oomph-ac/skitter/spider"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// StatsInterval is how often the frame statistics are logged while running.
const StatsInterval = 5 * time.Second

func newRunCmd() *cobra.Command {
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the walker along the configured route",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			return runScene(ctx, app.settings, app.log, cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().String("preset", "", "environment preset")
	cmd.Flags().String("biome", "", "biome, overrides the preset")
	cmd.Flags().Int("fps", 60, "frames per second")
	cmd.Flags().Uint64("seed", 0, "random seed, 0 picks one")
	cmd.Flags().String("stream", "", "write render frames as JSON lines to this file, - for stdout")
	return cmd
}

// runScene runs the frame loop, the stats reporter and the config watcher until ctx is done.
func runScene(ctx context.Context, s settings.Settings, log *logrus.Logger, stdout io.Writer) error {
	runID := uuid.New()
	entry := log.WithField("run", runID.String())

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         s.Sentry.DSN,
			Environment: s.Sentry.Environment,
			Release:     "skitter@" + Version,
		}); err != nil {
			entry.Warnf("sentry disabled: %v", err)
		} else {
			sentry.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("run_id", runID.String())
			})
			defer sentry.Flush(2 * time.Second)
		}
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ground, err := s.Scene.Ground()
	if err != nil {
		return err
	}
	modes, err := s.Logging.DebugModes()
	if err != nil {
		return err
	}
	seed := s.Scene.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	spawn := mgl64.Vec3{s.Scene.Spawn.X, s.Scene.Spawn.Y, s.Scene.Spawn.Z}
	r := newRoute(s.Scene.Waypoints, s.Scene.Loop, spawn)
	ctrl := spider.NewController(s.Physics, spider.Options{
		Log:        log,
		Seed:       seed,
		Spawn:      spawn,
		Ground:     ground,
		DebugModes: modes,
		OnMoveStateChange: func(moving bool) {
			if moving {
				entry.Debugf("walking toward %v", r.Target())
				return
			}
			if r.Advance() {
				entry.Infof("arrived, next waypoint %v", r.Target())
			} else {
				entry.Info("route finished")
			}
		},
	})

	enc, closeStream, err := openStream(s.Stream.Output, stdout)
	if err != nil {
		return err
	}
	defer closeStream()

	var seq uint64
	loop := frame.NewLoop(s.Scene.FPS, func(delta float64) {
		out := ctrl.Update(delta, spider.Input{Target: r.Target(), Pointer: r.Pointer(), Ground: ground})
		seq++
		if enc != nil && seq%uint64(s.Stream.Every) == 0 {
			if err := enc.Encode(render.Build(seq, out)); err != nil {
				entry.Warnf("frame %d not streamed: %v", seq, err)
			}
		}
	}, log)

	if app.v != nil && app.v.ConfigFileUsed() != "" {
		settings.NewWatcher(app.v, s.Physics, log, func(p spider.PhysicsConfig) {
			if err := ctrl.SetConfig(p); err != nil {
				entry.Warnf("physics config rejected: %v", err)
			}
		}).Start()
	}

	entry.Infof("walking on %s (seed=%d fps=%d waypoints=%d)", ground, seed, s.Scene.FPS, len(s.Scene.Waypoints))
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(StatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				snap := loop.Stats().Snapshot()
				entry.Infof("fps=%.0f mean=%.1f sd=%.2f min=%.0f panics=%d elapsed=%.1fs", snap.FPS, snap.Mean, snap.StdDev, snap.Min, snap.Panics, loop.Elapsed())
			}
		}
	})
	return g.Wait()
}

// openStream opens the render frame stream. It returns a nil encoder when streaming is off.
func openStream(output string, stdout io.Writer) (*render.Encoder, func(), error) {
	switch output {
	case "":
		return nil, func() {}, nil
	case "-":
		return render.NewEncoder(stdout), func() {}, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, err
	}
	return render.NewEncoder(f), func() { _ = f.Close() }, nil
}
