package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/ispmail/userctl/internal/app"
	"github.com/ispmail/userctl/internal/config"
	"github.com/ispmail/userctl/internal/logging"
	"github.com/ispmail/userctl/internal/logging/events"
)

const (
	notePrefix = "\033[34;1m[*]\033[0m"
	succPrefix = "\033[32;1m[!]\033[0m"
	warnPrefix = "\033[33;1m[!]\033[0m"
	errPrefix  = "\033[31;1m[!]\033[0m"
)

func yellow(msg string) string {
	return "\033[1;33m" + msg + "\033[0m"
}

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	fmt.Println(notePrefix + " # ISPMail userctl")

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("ISPMail userctl needs a real tty to work!")
		os.Exit(1)
	}
	warnSmallTerminal()

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		if !errors.Is(err, app.ErrAborted) {
			fmt.Printf("%s %v\n", errPrefix, err)
		}
		fmt.Println(warnPrefix + yellow(" Unsaved changes are lost!"))
		os.Exit(1)
	}
	fmt.Println(succPrefix + " Bye..")
}

// warnSmallTerminal mirrors the recommended minimum geometry; the UI
// degrades by clipping below it.
func warnSmallTerminal() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if height < 25 || width < 80 {
		fmt.Printf("%s   small terminal detected (%d x %d)\n", warnPrefix, height, width)
		fmt.Println(warnPrefix + "   recommend minimum is (25 x 80)")
		fmt.Println(warnPrefix + "   app might be unstable")
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
