package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sun-rise-set/almanac"
	"github.com/lixenwraith/sun-rise-set/audio"
	"github.com/lixenwraith/sun-rise-set/core"
	"github.com/lixenwraith/sun-rise-set/session"
)

const (
	logDir      = "logs"
	logFileName = "sun-rise-set.log"
	maxLogSize  = 10 << 20

	defaultDataFile = "Sun_rise_set_2024.csv"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to "+filepath.Join(logDir, logFileName))
	muteFlag  = flag.Bool("mute", false, "Disable the arrival chime")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [table.csv]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "sun-rise-set: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	path := defaultDataFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	// Load before touching the terminal so errors print on a sane screen
	table, err := almanac.LoadFile(path)
	if err != nil {
		return err
	}
	log.Printf("loaded %d days from %s", table.Len(), path)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts := session.Options{}
	if !*muteFlag {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("audio disabled: %v", err)
		} else {
			defer chime.Cleanup()
			opts.OnArrive = chime.OnArrive
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session.New(screen, table, opts).Run(ctx)
}

// setupLogging routes the standard logger to a file when debug is set and discards it otherwise
// The returned file must be closed by the caller, it is nil when logging is disabled or fails
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := fmt.Sprintf("sun-rise-set-%s.log", time.Now().Format("20060102-150405"))
		_ = os.Rename(logPath, filepath.Join(logDir, rotated))
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	return f
}
