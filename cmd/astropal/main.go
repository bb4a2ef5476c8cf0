// Command astropal reports what is up in the sky for a place: visible
// planets and deep sky objects, sunrise and sunset, the Moon's phase and
// whether it is astronomical night.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"now", "planets and Messier objects above the visibility threshold", runNow},
	{"planet", "position and visibility of one planet", runPlanet},
	{"sun", "sunrise and sunset over the next 24 hours", runSun},
	{"moon", "phase, illumination and position of the Moon", runMoon},
	{"night", "whether it is astronomical night, and the twilight state", runNight},
	{"latlong", "coordinates of a place in decimal degrees and DMS", runLatLong},
}

func usage() {
	fmt.Fprintf(os.Stderr, `astropal – what is up in the sky

Usage:
  astropal [global flags] <command> [flags] [args]

Commands:
`)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(os.Stderr, `
Global flags:
  -config string
        config file (default %s)
  -log-level int
        override the config's log level: 0=error, 1=warn, 2=info, 3=debug (default -1)

Run "astropal <command> -h" for command flags.
`, defaultConfigFile())
}

func main() {
	fs := flag.NewFlagSet("astropal", flag.ExitOnError)
	configFile := fs.String("config", defaultConfigFile(), "config file")
	logLevel := fs.Int("log-level", -1, "log level: 0=error, 1=warn, 2=info, 3=debug")
	fs.Usage = usage
	if err := fs.Parse(os.Args[1:]); err != nil {
		cmdutil.Exit("failed to parse flags: %v", err)
	}
	args := fs.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile, flagSet(fs, "config"))
	if err != nil {
		cmdutil.Exit("%v", err)
	}
	if *logLevel >= 0 {
		cfg.Logging.Level = *logLevel
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		cmdutil.Exit("%v", err)
	}
	defer logger.Close()
	ctx := ctxlog.WithLogger(context.Background(), logger.Logger)
	ctx = ctxlog.WithAttributes(ctx, "command", cmd.name)

	a, err := newApp(ctx, cfg)
	if err != nil {
		cmdutil.Exit("%v", err)
	}
	err = cmd.run(ctx, a, args[1:])
	if cerr := a.close(); cerr != nil {
		ctxlog.Logger(ctx).Warn("closing ephemeris", "error", cerr)
	}
	if err != nil {
		cmdutil.Exit("%v: %v", cmd.name, err)
	}
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
