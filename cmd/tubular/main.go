// Command tubular runs a Tubular grid program to completion against
// the real process stdin/stdout: a small set of flags, no
// debugger/API/TUI/tracing surface (see DESIGN.md).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tubular-lang/tubular/config"
	"github.com/tubular-lang/tubular/internal/iobridge"
	"github.com/tubular-lang/tubular/internal/program"
	"github.com/tubular-lang/tubular/internal/scheduler"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

// Exit codes: 0 normal halt, 1 tick-limit truncation, 2 fatal runtime
// fault, 3 load/validation error, 4 usage error.
const (
	exitOK         = 0
	exitTickLimit  = 1
	exitFault      = 2
	exitLoadError  = 3
	exitUsageError = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("tubular", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		showVersion = fs.Bool("version", false, "Show version information")
		configPath  = fs.String("config", "", "Path to config.toml (default: platform config dir)")
		maxTicks    = fs.Uint64("max-ticks", 0, "Maximum ticks before truncation (0 = use config/unlimited)")
		showStats   = fs.Bool("stats", false, "Print execution statistics to stderr on exit")
	)

	if err := fs.Parse(args); err != nil {
		return exitUsageError
	}

	if *showVersion {
		fmt.Fprintf(stdout, "tubular %s (%s)\n", Version, Commit)
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "usage: tubular [flags] <program-file>\n")
		fs.PrintDefaults()
		return exitUsageError
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "tubular: config error: %v\n", err)
		return exitUsageError
	}

	src, err := os.ReadFile(fs.Arg(0)) // #nosec G304 -- user-supplied program path
	if err != nil {
		fmt.Fprintf(stderr, "tubular: %v\n", err)
		return exitUsageError
	}

	limits := program.Limits{
		MaxWidth:  cfg.Execution.GridMaxWidth,
		MaxHeight: cfg.Execution.GridMaxHeight,
	}
	p, err := program.Load(src, limits)
	if err != nil {
		fmt.Fprintf(stderr, "tubular: %v\n", err)
		return exitLoadError
	}

	tickLimit := cfg.Execution.MaxTicks
	if *maxTicks > 0 {
		tickLimit = *maxTicks
	}

	bridge := iobridge.New(stdin, stdout)
	sched := scheduler.New(p, bridge, tickLimit)

	if err := sched.Run(); err != nil {
		fmt.Fprintf(stderr, "tubular: %v\n", err)
	}

	if *showStats || cfg.Execution.EnableStats {
		printStats(stderr, sched.Stats())
	}

	switch sched.State() {
	case scheduler.StateHalted:
		return exitOK
	case scheduler.StateTickLimit:
		fmt.Fprintf(stderr, "tubular: truncated at tick limit (%d ticks)\n", sched.Tick())
		return exitTickLimit
	case scheduler.StateFault:
		if f := sched.Fault(); f != nil {
			fmt.Fprintf(stderr, "tubular: fatal fault: %v\n", f)
		}
		return exitFault
	default:
		return exitOK
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func printStats(w *os.File, s *scheduler.Stats) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(s)
}
