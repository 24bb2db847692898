package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"lifewatch/internal/app"
	"lifewatch/internal/config"
	"lifewatch/internal/patternfile"
	"lifewatch/internal/render"
	"lifewatch/internal/status"
	"lifewatch/pkg/core"
	"lifewatch/pkg/life"
	"lifewatch/pkg/runner"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := log.New(os.Stderr, "life-run: ", log.LstdFlags)

	engine, err := app.BuildEngine(cfg)
	if err != nil {
		if cfg.PatternFile != "" {
			log.Fatalf("%s %s: %v", app.LoadMessage(err), cfg.PatternFile, err)
		}
		log.Fatalf("board: %v", err)
	}

	term := render.NewTerminal(os.Stdout)
	var (
		mu      sync.Mutex
		message string
	)
	lastMessage := func() string {
		mu.Lock()
		defer mu.Unlock()
		return message
	}

	var ctrl *runner.Controller
	ctrl = runner.New(engine,
		runner.WithLogger(logger),
		runner.WithReporter(runner.ReporterFunc(func(r runner.Report) {
			if r.Kind == runner.Stopped {
				return
			}
			mu.Lock()
			message = r.String()
			mu.Unlock()
		})),
		runner.WithTick(func(st life.Stats, field core.View) {
			if cfg.Watch {
				fmt.Println(term.Frame(field, status.FromStats(st, true, cfg.Period, lastMessage())))
				fmt.Println()
			}
			if cfg.MaxGenerations > 0 && st.Generations >= cfg.MaxGenerations {
				ctrl.Stop()
			}
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := ctrl.Start(ctx, cfg.Period); err != nil {
		log.Fatalf("start: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ctrl.Wait()
		stop()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		ctrl.Stop()
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("run: %v", err)
	}

	fmt.Println(term.Frame(engine.Field(), status.FromStats(engine.Stats(), false, cfg.Period, lastMessage())))

	if cfg.SaveFile != "" {
		if err := patternfile.Save(cfg.SaveFile, life.Export(engine)); err != nil {
			log.Fatalf("save %s: %v", cfg.SaveFile, err)
		}
		logger.Printf("saved board to %s", cfg.SaveFile)
	}
}
