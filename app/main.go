package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sheetcal/app/api"
	"sheetcal/app/calendar"
	"sheetcal/app/cfg"
	"sheetcal/app/config"
	"sheetcal/app/ics"
	"sheetcal/app/output"
	"sheetcal/app/source"
	"sheetcal/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Println("Starting sheetcal...")

	// Calendar configuration
	calConfig, err := config.NewLoader(appCfg.ConfigFile).Load()
	if err != nil {
		log.Fatalf("Failed to load calendar configuration: %v", err)
	}

	// Row source selection by input extension
	rowSource := newRowSource(appCfg, calConfig.Aliases)

	// Core components
	assembler := calendar.NewAssembler(calConfig.Calendar.Name, calConfig.Calendar.UIDDomain)
	partitioner := calendar.NewPartitioner(calConfig.Settings.CombinedName)
	renderer := ics.NewRenderer()
	writer := output.NewWriter(appCfg.OutputDir)
	store := tasks.NewStore()

	meta := ics.Calendar{
		Name:            calConfig.Calendar.Name,
		ProdID:          fmt.Sprintf("-//sheetcal//%s//EN", appCfg.Version),
		TimezoneID:      calConfig.Calendar.Timezone,
		RefreshInterval: calConfig.Settings.GetRefreshInterval(),
	}

	newBuild := func() tasks.TaskInterface {
		return tasks.NewBuildCalendarsTask(rowSource, assembler, partitioner, renderer, writer, store, meta)
	}

	// Always build once up front; a fatal error here (missing columns,
	// unreachable input) aborts before any document is written.
	task := newBuild()
	task.Start()
	if err := task.Execute(context.Background()); err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	for _, doc := range store.List() {
		log.Printf("Wrote %s (%d events)", doc.Path, doc.Events)
	}

	if !appCfg.Serve {
		log.Println("Build complete")
		return
	}

	// Serve mode: rebuild periodically and publish the documents over HTTP
	log.Printf("Starting scheduler with %ds rebuild interval...", appCfg.RebuildInterval)
	scheduler := tasks.NewScheduler(newBuild, time.Duration(appCfg.RebuildInterval)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Initializing HTTP server...")
	handler := api.NewHandler(store, scheduler, newBuild)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Calendars:    http://localhost:%s/calendars/<slug>.ics", appCfg.Port)
		log.Printf("  Health check: http://localhost:%s/health", appCfg.Port)
		log.Printf("  Statistics:   http://localhost:%s/stats", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("sheetcal started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("sheetcal shutdown complete")
}

// newRowSource picks the reader for the configured input. SQLite databases
// are recognized by extension; everything else is read as CSV.
func newRowSource(appCfg *cfg.Cfg, aliases map[string]string) source.RowSource {
	switch strings.ToLower(filepath.Ext(appCfg.Input)) {
	case ".db", ".sqlite", ".sqlite3":
		return source.NewSQLiteSource(appCfg.Input, appCfg.InputTable, aliases)
	default:
		return source.NewCSVSource(appCfg.Input, aliases)
	}
}
