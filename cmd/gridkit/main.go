// Command gridkit runs the grid puzzles described by a YAML scenario file
// and prints one answer per scenario.
//
//	gridkit -config scenarios.yaml [-env .env] [-png-dir out/]
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/internal/config"
	"github.com/katalvlaran/gridkit/internal/logger"
	"github.com/katalvlaran/gridkit/internal/scenario"
	"github.com/katalvlaran/gridkit/render"
)

func main() {
	var (
		configPath = flag.String("config", "scenarios.yaml", "scenario file to run")
		envFile    = flag.String("env", ".env", "optional .env file with overrides")
		pngDir     = flag.String("png-dir", "", "directory for PNG renders (scenario png names are relative to it)")
		only       = flag.String("only", "", "run only the scenario with this name")
	)
	flag.Parse()

	if err := config.LoadEnv(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.New(os.Stderr)
	drv := logger.Component(log, "driver")

	file, err := config.Load(*configPath)
	if err != nil {
		drv.WithError(err).Fatal("cannot load scenarios")
	}
	if file.LogLevel != "" {
		if lvl, perr := logrus.ParseLevel(file.LogLevel); perr == nil {
			log.SetLevel(lvl)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := scenario.Runner{Log: log, MaxTicks: file.MaxTicks}
	failed := 0
	for _, sc := range file.Scenarios {
		if *only != "" && sc.Name != *only {
			continue
		}
		rep, err := runner.Run(ctx, sc)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", sc.Name, err)
			continue
		}
		fmt.Println(rep)
		if sc.PNG != "" && rep.Grid != nil {
			path := sc.PNG
			if *pngDir != "" {
				path = filepath.Join(*pngDir, path)
			}
			if err := render.SavePNG(path, rep.Grid, palette, render.DefaultStyle()); err != nil {
				drv.WithError(err).WithField("scenario", sc.Name).Warn("render failed")
			}
		}
	}
	if failed > 0 {
		stop()
		os.Exit(1)
	}
}

// palette maps the glyphs used by the scenario kinds to colors.
func palette(r rune) color.Color {
	switch r {
	case '#':
		return color.RGBA{220, 220, 235, 255}
	case 'o', '*':
		return color.RGBA{255, 170, 40, 255}
	case '|':
		return color.RGBA{40, 160, 70, 255}
	case 'L':
		return color.RGBA{90, 110, 200, 255}
	case 'S', 'E':
		return color.RGBA{230, 60, 60, 255}
	default:
		return nil
	}
}
