package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tosbaja/libcamera/internal/config"
	"github.com/tosbaja/libcamera/internal/log"
	"github.com/tosbaja/libcamera/pkg/camera"
	"github.com/tosbaja/libcamera/pkg/capture"
	"github.com/tosbaja/libcamera/pkg/script"
)

func main() {
	// Command line flags
	scriptPath := flag.String("script", "", "Capture script path (or set CAM_SCRIPT env)")
	frames := flag.Uint("frames", config.DefaultFrameCount, "Number of frames to capture")
	fps := flag.Float64("fps", config.DefaultFrameRate, "Capture rate in frames per second")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := config.LogLevel()
	if *debug {
		level = "debug"
	}
	log.Init(level)

	path := *scriptPath
	if path == "" {
		path = config.ScriptPath("")
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no capture script given")
		fmt.Fprintln(os.Stderr, "Usage: cam -script capture.yaml [-frames N] [-fps R]")
		os.Exit(1)
	}

	name := config.CameraName("mock")
	cam := camera.NewMock(camera.WithName(name))

	scr, err := script.Load(cam, path)
	if err != nil {
		stdlog.Fatalf("Failed to load capture script: %v", err)
	}

	fmt.Printf("Capture script: %s\n", path)
	fmt.Printf("   Camera:   %s (%d controls)\n", cam.Name(), cam.Controls().Len())
	fmt.Printf("   Scripted: %d frames\n", len(scr.FrameNumbers()))
	fmt.Println()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	sess, err := capture.NewSession(cam, scr, capture.Options{
		Frames:    *frames,
		FrameRate: *fps,
	})
	if err != nil {
		stdlog.Fatalf("Failed to create capture session: %v", err)
	}

	stats, err := sess.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		stdlog.Fatalf("Capture session failed: %v", err)
	}

	fmt.Printf("Session %s: %d frames, %d scripted, %d controls applied\n",
		sess.ID(), stats.Frames, stats.Scripted, stats.Applied)
}
