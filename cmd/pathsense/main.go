// Pathsense - assistive navigation demo
//
// Runs a guidance session against a recorded depth trace or a synthetic
// corridor walk, speaking announcements to the console and logging haptic
// pulses. Serves the live monitor dashboard while running.
//
// Usage:
//
//	go run ./cmd/pathsense                    # synthetic walk
//	PATHSENSE_CONFIG=pathsense.yaml go run ./cmd/pathsense
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathsense/go-pathsense/internal/config"
	"github.com/pathsense/go-pathsense/internal/log"
	"github.com/pathsense/go-pathsense/pkg/depth"
	"github.com/pathsense/go-pathsense/pkg/guidance"
	"github.com/pathsense/go-pathsense/pkg/haptics"
	"github.com/pathsense/go-pathsense/pkg/speech"
	"github.com/pathsense/go-pathsense/pkg/web"
)

func main() {
	cfg, err := config.Load(config.ConfigPath(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	sampler, err := buildSampler(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Console speaker: a real deployment swaps in a TTS-backed Speaker
	// with the same interrupt semantics.
	speaker := speech.SpeakerFunc(func(text string) {
		fmt.Printf("🔊 %s\n", text)
	})

	actuator, err := buildActuator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []guidance.SessionOption{
		guidance.WithRate(time.Second / time.Duration(cfg.TickHz)),
		guidance.WithLogger(log.L()),
	}

	var session *guidance.Session
	var monitor *web.Server
	if cfg.MonitorPort != "" {
		monitor = web.NewServer(cfg.MonitorPort, func() guidance.Snapshot {
			if session == nil {
				return guidance.Snapshot{}
			}
			return session.Snapshot()
		})
		opts = append(opts, guidance.WithEventHandler(monitor.Publish))
	}
	session = guidance.NewSession(sampler, speaker, actuator, opts...)
	if monitor != nil {
		monitor.StartAsync()
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Stopping session...")
		cancel()
	}()

	log.Info("session starting",
		"session_id", session.ID(),
		"tick_hz", cfg.TickHz,
		"trace", cfg.TracePath,
	)

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if monitor != nil {
		monitor.Shutdown()
	}
}

// buildSampler picks the depth source: a recorded trace when configured,
// otherwise the synthetic corridor walk.
func buildSampler(cfg config.Config) (depth.Sampler, error) {
	if cfg.TracePath != "" {
		return depth.LoadTrace(cfg.TracePath, false)
	}
	return depth.NewWalk(), nil
}

// buildActuator assembles the precision-engine/basic-generator chain.
// PATHSENSE_NO_ENGINE simulates missing precision hardware so the chain
// falls through to the basic generator.
func buildActuator() (haptics.Actuator, error) {
	engineMissing := os.Getenv("PATHSENSE_NO_ENGINE") != ""

	engine := haptics.ActuatorFunc(func(intensity, sharpness float64) error {
		if engineMissing {
			return errors.New("haptic engine not present")
		}
		fmt.Printf("〰️  pulse intensity=%.1f sharpness=%.1f\n", intensity, sharpness)
		return nil
	})

	generator := haptics.ActuatorFunc(func(intensity, sharpness float64) error {
		// Basic impact generator: intensity only, sharpness ignored.
		fmt.Printf("〰️  impact intensity=%.1f\n", intensity)
		return nil
	})

	return haptics.NewChainWithLogger(log.L(), engine, generator)
}
