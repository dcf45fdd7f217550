package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/face"
	"github.com/aldld/numberhands/host"
	"github.com/aldld/numberhands/render"
	"github.com/aldld/numberhands/settings"
)

func main() {
	var (
		configPath string
		raise      host.RaiseSchedule
		runFor     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watchface",
		Short: "Run the analog watchface against the wall clock",
		Long: `watchface runs the face on a simulated host: real time, a
scripted wrist raise, and a display that logs what it would draw.

Send SIGHUP to reload the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, raise, runFor)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "path to a TOML or YAML config file")
	cmd.Flags().DurationVar(&raise.Every, "raise-every", 20*time.Second, "simulate a wrist raise this often (0 disables)")
	cmd.Flags().DurationVar(&raise.Hold, "raise-hold", 2*time.Second, "how long each simulated raise lasts")
	cmd.Flags().DurationVar(&runFor, "run-for", 0, "stop after this long (0 runs until interrupted)")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, raise host.RaiseSchedule, runFor time.Duration) error {
	config, err := face.LoadConfig(configPath)
	if err != nil {
		return err
	}

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      config.Logger.SlogLevel(),
		TimeFormat: time.TimeOnly,
	}))

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if runFor > 0 {
		ctx, cancel = context.WithTimeout(ctx, runFor)
		defer cancel()
	}

	loop := host.New(log.With(slog.String("component", "host")), time.Now(), raise)
	display := log.With(slog.String("component", "display"))
	painter := render.NewPainter(render.Rect, func(dl render.DisplayList) {
		display.Log(ctx, face.LevelTrace, "paint", slog.Any("display_list", dl))
	})
	light := host.NewLogLight(log.With(slog.String("component", "light")))

	wf := face.New(log, config.Face, loop.Deps(light, painter))
	defer wf.Teardown()

	return loop.Run(ctx, wf, func() (settings.Settings, error) {
		c, err := face.LoadConfig(configPath)
		if err != nil {
			return settings.Settings{}, err
		}
		return c.Face, nil
	})
}
