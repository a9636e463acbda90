package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/recera/reactgen/cmd/reactgen/internal/livereload"
	"github.com/recera/reactgen/cmd/reactgen/internal/watch"
	"github.com/recera/reactgen/internal/cache"
)

func newWatchCommand() *cobra.Command {
	var (
		flags      projectFlags
		reloadAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the description or config changes",
		Long: `Generates once, then watches the UI description and reactgen.yaml and
regenerates after every change. With --reload-addr (or watch.reloadAddr)
a WebSocket endpoint at /livereload tells connected clients to reload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("reload-addr") {
				p.config.Watch.ReloadAddr = reloadAddr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd, &flags, p)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&reloadAddr, "reload-addr", "", "Serve live reload notifications on this address (e.g. localhost:35729)")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, flags *projectFlags, p *project) error {
	var hub *livereload.Hub
	if addr := p.config.Watch.ReloadAddr; addr != "" {
		hub = livereload.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/livereload", hub)
		server := &http.Server{Addr: addr, Handler: mux}

		go func() {
			log.Printf("🔌 Live reload listening on ws://%s/livereload", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("❌ Live reload server error: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()
	}

	tracker := cache.NewTracker()
	regenerate := func() {
		startTime := time.Now()

		key, err := cache.KeyFromFiles(p.inputPath(), p.configFile)
		if err != nil {
			log.Printf("❌ %v", err)
			return
		}
		if !tracker.Changed(key) {
			log.Println("⚡ Inputs unchanged, skipping generation")
			return
		}

		report, err := p.generate(nil)
		if err != nil {
			log.Printf("❌ %v", err)
			return
		}
		tracker.Store(key)
		log.Printf("✅ Generated %d files in %v", len(report.Files), time.Since(startTime).Round(time.Millisecond))
		for _, route := range report.DuplicateRoutes {
			log.Printf("⚠️  Route %s is declared by more than one page", route)
		}
		if hub != nil {
			hub.Notify("reload", map[string]interface{}{"files": len(report.Files)})
		}
	}

	regenerate()

	files := []string{p.inputPath(), p.configFile}
	w, err := watch.New(files, p.config.Watch.Debounce, func(events []fsnotify.Event) {
		configChanged := false
		for _, event := range events {
			if p.configFile != "" && sameFile(event.Name, p.configFile) {
				configChanged = true
			}
		}

		if configChanged {
			log.Println("🔄 Config changed, reloading...")
			next, err := flags.resolve(cmd)
			if err != nil {
				log.Printf("❌ %v", err)
				return
			}
			if next.inputPath() != p.inputPath() {
				log.Printf("⚠️  Input moved to %s; restart watch to follow it", next.config.Input)
			}
			next.config.Watch.ReloadAddr = p.config.Watch.ReloadAddr
			*p = *next
		} else {
			log.Println("🔄 Description changed, regenerating...")
		}
		regenerate()
	})
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "👀 Watching %s for changes... (Press Ctrl+C to stop)\n", p.config.Input)
	if err := w.Run(ctx); err != nil {
		return err
	}

	log.Println("🛑 Stopped watching")
	return nil
}

func sameFile(a, b string) bool {
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
