package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/math-eaton/website/internal/config"
	"github.com/math-eaton/website/internal/game"
	"github.com/math-eaton/website/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	configPath := flag.String("config", config.DefaultPath, "skyline config file")
	flag.Parse()

	closer.Bind(func() {
		logging.Logger().Info("shutting down")
	})
	closer.Checked(func() error { return run(*configPath) }, true)
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logging.SetLogger(logging.New(os.Stderr, cfg.LogLevel))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(window, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}
