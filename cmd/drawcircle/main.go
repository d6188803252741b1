// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drawcircle opens a window and draws a green circle outline
// that stays round as the window is resized. Press Escape to quit.
package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/glshapes/glshapes/app"
	"github.com/glshapes/glshapes/base/errors"
	"github.com/glshapes/glshapes/base/logx"
	"github.com/glshapes/glshapes/config"
	"github.com/glshapes/glshapes/glgpu"
	"github.com/glshapes/glshapes/system"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// defaults returns the drawcircle defaults on top of the shared ones.
func defaults() *config.Config {
	cfg := config.New()
	cfg.Title = "GLAD Circle"
	cfg.ClearColor = config.Color{0.2, 0.3, 0.3, 1}
	cfg.LineColor = config.Color{0, 1, 0, 1}
	return cfg
}

func run(args []string) int {
	base := defaults()
	fl, err := config.ParseFlags("drawcircle", args, base, config.CircleFlags())
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return -1
	}
	logx.UserLevel = fl.Level()
	logx.SetDefaultLogger()

	cfg, err := fl.Load(base)
	if errors.Log(err) != nil {
		return -1
	}

	if errors.Log(system.Init()) != nil {
		return -1
	}
	defer system.Terminate()

	win, err := system.NewWindow(system.WindowOptions{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		GLMajor: cfg.GLMajor,
		GLMinor: cfg.GLMinor,
	})
	if errors.Log(err) != nil {
		return -1
	}
	defer win.Destroy()

	if errors.Log(glgpu.Init()) != nil {
		return -1
	}
	rd, err := glgpu.NewRenderer()
	if errors.Log(err) != nil {
		return -1
	}
	defer rd.Release()

	circle := app.NewCircle(cfg, rd, clockwork.NewRealClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	configs := make(chan *config.Config, 1)
	if errors.Log(fl.WatchFile(ctx, base, configs)) == nil {
		circle.SetConfigs(configs)
	}

	frames := circle.Run(win)
	slog.Info("window closed", "frames", frames, "uploads", circle.Uploads())
	return 0
}
