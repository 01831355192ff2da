package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/render"
	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/store"
	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/workcal"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render the status whenever the calendar file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, engine, err := openStore()
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory, not the file: editors and the store
			// itself replace the file on write, which drops a file-level
			// watch.
			dataFile := st.Path()
			if err := watcher.Add(filepath.Dir(dataFile)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dataFile, err)
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			printStatus(st, engine)
			logger.Info("Watching calendar file", zap.String("file", dataFile))

			// Debounce bursts of events from a single save.
			var pending *time.Timer
			reload := make(chan struct{}, 1)

			for {
				select {
				case sig := <-sigChan:
					logger.Info("Received signal, shutting down",
						zap.String("signal", sig.String()))
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(dataFile) {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					if pending != nil {
						pending.Stop()
					}
					pending = time.AfterFunc(200*time.Millisecond, func() {
						select {
						case reload <- struct{}{}:
						default:
						}
					})

				case <-reload:
					if err := st.Load(); err != nil {
						logger.Warn("Failed to reload calendar", zap.Error(err))
						continue
					}
					fmt.Println()
					printStatus(st, engine)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Warn("Watcher error", zap.Error(err))
				}
			}
		},
	}
}

func printStatus(st *store.Store, engine *workcal.Engine) {
	fmt.Println(render.Summary(engine, st.Config(), workcal.Today()))
}
