// Command astropal-profiler measures astropal's solar computations against
// go-sunrise, suncalc and, optionally, a reference CSV of published times.
//
// Reference CSV format:
//
//	date,rise,set
//	2025-01-01,07:32,17:12
//
// Dates are YYYY-MM-DD; rise and set are local HH:MM or HH:MM:SS in -tz.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/astropal"
	"github.com/thurmanmarka/astropal/ephemeris"
)

func main() {
	var (
		lat       = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon       = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		tzName    = flag.String("tz", "UTC", "IANA time zone name (e.g. America/Phoenix)")
		startS    = flag.String("start", "", "first date, YYYY-MM-DD (default: first date of -refcsv, or today)")
		days      = flag.Int("days", 365, "number of days to profile when -refcsv is not given")
		refCSV    = flag.String("refcsv", "", "optional reference CSV file (date,rise,set)")
		outCSV    = flag.String("outcsv", "", "optional path to write per-day errors")
		geometric = flag.Bool("geometric", false, "compare geometric horizon crossings instead of the -0.833° standard altitude")
		vsopDir   = flag.String("vsop87", "", "VSOP87 data directory; analytic ephemeris if empty")
		verbose   = flag.Bool("verbose", false, "log per-day errors")
	)
	flag.Parse()

	logging := cmdutil.LoggingConfig{Level: logLevel(*verbose), Format: "text"}
	ctx := ctxlog.WithLogger(context.Background(), logging.NewLoggerMust().Logger)

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		cmdutil.Exit("failed to load timezone %q: %v", *tzName, err)
	}
	var src ephemeris.Source = ephemeris.NewAnalytic()
	if *vsopDir != "" {
		v, err := ephemeris.OpenVSOP87(*vsopDir)
		if err != nil {
			cmdutil.Exit("%v", err)
		}
		defer v.Close()
		src = v
	}

	p := &profiler{
		src:    src,
		coords: astropal.Coordinates{Lat: *lat, Lon: *lon},
		loc:    loc,
		level:  standardAltitude,
	}
	if *geometric {
		p.level = astropal.HorizonAltitude
	}
	if err := p.coords.Validate(); err != nil {
		cmdutil.Exit("%v", err)
	}
	if *lat == 0 && *lon == 0 {
		ctxlog.Logger(ctx).Warn("lat=0 lon=0 (Gulf of Guinea); did you mean to set -lat/-lon?")
	}

	var refs []reference
	if *refCSV != "" {
		refs, err = readReferences(ctx, *refCSV, loc)
		if err != nil {
			cmdutil.Exit("%v", err)
		}
	} else {
		start := time.Now().In(loc)
		if *startS != "" {
			if start, err = time.ParseInLocation("2006-01-02", *startS, loc); err != nil {
				cmdutil.Exit("invalid -start %q: %v", *startS, err)
			}
		}
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		for i := 0; i < *days; i++ {
			refs = append(refs, reference{date: start.AddDate(0, 0, i)})
		}
	}

	var w *csv.Writer
	if *outCSV != "" {
		f, err := os.Create(*outCSV)
		if err != nil {
			cmdutil.Exit("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer f.Close()
		w = csv.NewWriter(f)
		defer w.Flush()
		if err := w.Write(csvHeader); err != nil {
			cmdutil.Exit("failed to write outcsv header: %v", err)
		}
	}

	var sum summary
	for _, ref := range refs {
		d, err := p.day(ref)
		if err != nil {
			ctxlog.Logger(ctx).Error("skipping day", "date", ref.date.Format("2006-01-02"), "error", err)
			sum.skipped++
			continue
		}
		sum.add(d)
		ctxlog.Logger(ctx).Debug("day",
			"date", ref.date.Format("2006-01-02"),
			"rise", d.rise.Format("15:04:05"),
			"set", d.set.Format("15:04:05"),
			"rise_vs_sunrise", d.riseVsSunrise,
			"set_vs_sunrise", d.setVsSunrise,
			"noon_alt_vs_suncalc", d.noonAltVsSuncalc)
		if w != nil {
			if err := w.Write(d.record()); err != nil {
				ctxlog.Logger(ctx).Error("writing outcsv", "error", err)
			}
		}
	}

	mode := fmt.Sprintf("SUN at %.3f°", p.level)
	fmt.Println("=== astropal profiler summary ===")
	fmt.Printf("Mode:    %s\n", mode)
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("TZ:      %s\n", loc.String())
	fmt.Printf("Rows:    %d (processed), %d skipped\n", len(refs)-sum.skipped, sum.skipped)
	sum.print(os.Stdout, *refCSV != "")
}

func logLevel(verbose bool) int {
	if verbose {
		return 3
	}
	return 1
}

func readReferences(ctx context.Context, path string, loc *time.Location) ([]reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open refcsv %q: %w", path, err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file %q", path)
	}
	start := 0
	if len(records[0]) >= 1 && strings.EqualFold(records[0][0], "date") {
		start = 1
	}
	var refs []reference
	for i := start; i < len(records); i++ {
		ref, err := parseReference(records[i], loc)
		if err != nil {
			ctxlog.Logger(ctx).Warn("skipping row", "row", i+1, "error", err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
