// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bluewindow opens a window cleared to solid blue.
// Press Escape to quit.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/glshapes/glshapes/app"
	"github.com/glshapes/glshapes/base/errors"
	"github.com/glshapes/glshapes/base/logx"
	"github.com/glshapes/glshapes/config"
	"github.com/glshapes/glshapes/glgpu"
	"github.com/glshapes/glshapes/system"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	base := config.New()
	base.Title = "OpenGL Window"
	base.ClearColor = config.Color{0, 0, 1, 1}

	fl, err := config.ParseFlags("bluewindow", args, base)
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

	r, g, b, a := cfg.ClearColor.RGBA()
	frames := app.RunClear(win, glgpu.Screen{}, r, g, b, a)
	slog.Info("window closed", "frames", frames)
	return 0
}
