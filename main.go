/*
PhotoMesh turns a directory of uploaded images into a self-describing binary
3D container (.glb) holding a procedurally generated preview mesh coloured
from the images' dominant colours.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/photomesh/engine/assets"
	"github.com/spaghettifunk/photomesh/engine/config"
	"github.com/spaghettifunk/photomesh/engine/converter"
	"github.com/spaghettifunk/photomesh/engine/core"
	"github.com/spaghettifunk/photomesh/engine/geometry"
	"github.com/spaghettifunk/photomesh/engine/sampler"
)

func main() {
	configPath := flag.String("config", "photomesh.toml", "path to the TOML config file")
	shape := flag.String("shape", "", "mesh shape: sphere or cube (overrides config)")
	imagesDir := flag.String("images", "", "directory of uploaded images (overrides config)")
	output := flag.String("out", "", "output .glb path (overrides config)")
	watch := flag.Bool("watch", false, "re-convert whenever the images directory changes")
	validate := flag.Bool("validate", true, "re-decode the output through an independent parser")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		core.LogFatal("loading config: %v", err)
	}
	if *shape != "" {
		cfg.Shape = *shape
	}
	if *imagesDir != "" {
		cfg.ImagesDir = *imagesDir
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "watch":
			cfg.Watch = *watch
		case "validate":
			cfg.Validate = *validate
		}
	})

	core.SetLogLevel(cfg.Log.Level)

	if err := convertOnce(cfg); err != nil {
		core.LogFatal("%v", err)
	}

	if !cfg.Watch {
		return
	}

	watcher, err := assets.NewWatcher(func() {
		if err := convertOnce(cfg); err != nil {
			core.LogError("%v", err)
		}
	})
	if err != nil {
		core.LogFatal("creating watcher: %v", err)
	}
	if err := watcher.Initialize(cfg.ImagesDir); err != nil {
		core.LogFatal("watching %s: %v", cfg.ImagesDir, err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh

	if err := watcher.Shutdown(); err != nil {
		core.LogError("shutting down watcher: %v", err)
	}
}

func convertOnce(cfg *config.Config) error {
	colours, err := sampler.LoadColours(cfg.ImagesDir)
	if err != nil {
		return err
	}

	shape := geometry.ShapeSphere
	if cfg.Shape == "cube" {
		shape = geometry.ShapeCube
	}

	blob, err := converter.Convert(&converter.Request{
		Shape:      shape,
		Colours:    colours,
		ImageCount: len(colours),
		Validate:   cfg.Validate,
		OnProgress: func(pct int) {
			core.LogDebug("progress: %d%%", pct)
		},
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, blob, 0o644); err != nil {
		return err
	}
	core.LogInfo("wrote %s (%d bytes)", cfg.Output, len(blob))
	return nil
}
