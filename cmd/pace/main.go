package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jengzang/gpx-pace-backend/internal/models"
	"github.com/jengzang/gpx-pace-backend/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pace", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		file   = fs.String("file", "", "GPX file to read")
		method = fs.String("method", models.MethodDistance, "Selection method: distance or time")
		start  = fs.String("start", "0", "Start bound: kilometers, or H:M:S offset for -method time")
		end    = fs.String("end", "", "End bound: kilometers, or H:M:S offset for -method time")
		asJSON = fs.Bool("json", false, "Print the summary as JSON")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "pace - average pace over part of a GPX track\n\n")
		fmt.Fprintf(stderr, "usage: pace -file run.gpx -method distance -start 0 -end 5\n")
		fmt.Fprintf(stderr, "       pace -file run.gpx -method time -start 5:00 -end 1:05:00\n\n")
		fmt.Fprintf(stderr, "options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *file == "" || *end == "" {
		fs.Usage()
		return 2
	}

	svc := service.NewPaceService(nil, nil)
	result := svc.Compute(context.Background(), *file, models.PaceRequest{
		Method: *method,
		Start:  *start,
		End:    *end,
	})

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(stderr, "Error encoding result: %v\n", err)
			return 1
		}
		if !result.OK() {
			return 1
		}
		return 0
	}

	if !result.OK() {
		fmt.Fprintf(stderr, "Error (%s): %s\n", result.Failure.Kind, result.Failure.Message)
		return 1
	}

	summary := result.Summary
	pace := "n/a"
	if summary.Pace != nil {
		pace = *summary.Pace
	}
	fmt.Fprintf(stdout, "Points:   %d\n", summary.Stats.PointCount)
	fmt.Fprintf(stdout, "Distance: %s\n", summary.Distance)
	fmt.Fprintf(stdout, "Duration: %s\n", summary.Duration)
	fmt.Fprintf(stdout, "Pace:     %s\n", pace)
	return 0
}
