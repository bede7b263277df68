package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/photo-editor-go/app"
	"github.com/soocke/photo-editor-go/config"
)

func main() {
	fs := flag.NewFlagSet("photo-editor", flag.ExitOnError)
	cfgPath := fs.String("config", "photo-editor.json", "path to JSON config")
	image := fs.String("image", "", "photo to open: file path, URL or /static/ service path")
	service := fs.String("service", "", "image service base URL")
	fileName := fs.String("file", "", "file name the image service knows the photo by")
	debugFlag := fs.Bool("debug", false, "debug logging and runtime metrics")
	_ = fs.Parse(os.Args[1:])

	// Base config from file, then flag overrides
	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *image != "" {
		cfg.ImagePath = *image
	}
	if *service != "" {
		cfg.ServiceURL = *service
	}
	if *fileName != "" {
		cfg.FileName = *fileName
	}

	c, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	application := app.NewApp("Photo Editor", 1100, 720, c)
	application.Start()
}
