// Package cli implements the quote-optimizer command line: optimize an input
// file through the worker pool and browse a local SQLite run history.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/logger"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/worker"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// NewApp builds the command line application. Results go to stdout;
// progress and logs go to stderr. Errors are returned to the caller, which
// picks the exit status with ExitCode.
func NewApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "quote-optimizer",
		Usage: "Allocate a requested quantity across supplier offers",
		// Help and usage errors go to stderr; stdout carries only results.
		Writer:         stderr,
		ErrWriter:      stderr,
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error, disabled)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-pretty",
				Usage:   "human readable logs",
				EnvVars: []string{"LOG_PRETTY"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.InitWithWriter(stderr, c.String("log-level"), c.Bool("log-pretty"))
			return nil
		},
		Commands: []*cli.Command{
			optimizeCmd(stdout, stderr),
			historyCmd(stdout),
		},
	}
}

// ExitCode maps an error returned by the application to a process exit status.
func ExitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

func optimizeCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "optimize",
		Usage:   "Optimize the allocation described by an input file",
		Aliases: []string{"o"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "input file (.json, .yaml or .yml)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "input format, json or yaml (default: from the file extension)",
			},
			&cli.Float64Flag{
				Name:  "budget",
				Usage: "spending limit, overrides the budget of the input file",
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "SQLite file where the run is recorded",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not print progress",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := LoadInput(c.String("input"), c.String("format"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if c.IsSet("budget") {
				budget := c.Float64("budget")
				if budget < 0 {
					return cli.Exit("invalid input: budget must not be negative", 2)
				}
				input.Budget = &budget
			}

			progress := stderr
			if c.Bool("quiet") {
				progress = io.Discard
			}
			result, elapsed, err := runOptimization(c.Context, input, progress)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if path := c.String("history"); path != "" {
				if err := recordRun(c.Context, path, input, result, elapsed); err != nil {
					return cli.Exit(fmt.Sprintf("record run: %v", err), 1)
				}
			}

			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

// runOptimization runs input through a single-worker pool, writing each
// progress event to progress.
func runOptimization(ctx context.Context, input model.OptimizeInput, progress io.Writer) (model.OptimizeResult, time.Duration, error) {
	optimizer := service.NewOptimizerService(service.WithoutCache())
	defer optimizer.Stop()

	pool := worker.NewPool(optimizer, worker.Config{PoolSize: 1, QueueSize: 1})
	defer pool.Stop()

	job, err := pool.Submit(input, "")
	if err != nil {
		return model.OptimizeResult{}, 0, err
	}

	for ev := range job.Events(ctx) {
		switch ev.Type {
		case worker.EventProgress:
			fmt.Fprintf(progress, "progress %3.0f%%\n", ev.Value)
		case worker.EventError:
			return model.OptimizeResult{}, 0, fmt.Errorf("%w: %s", worker.ErrJobFailed, ev.Message)
		}
	}

	result, err := job.Wait(ctx)
	if err != nil {
		return model.OptimizeResult{}, 0, err
	}
	return result, job.Duration(), nil
}

func recordRun(ctx context.Context, path string, input model.OptimizeInput, result model.OptimizeResult, elapsed time.Duration) error {
	repo, err := repository.NewSQLiteRunsRepository(path)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	run := service.NewRun(model.SourceCLI, "", input, result, elapsed)
	if err := service.NewRunService(repo).Record(ctx, run); err != nil {
		return err
	}
	log.Info().Str("run_id", run.ID).Str("path", path).Msg("Run recorded")
	return nil
}

func historyCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "history",
		Usage:   "List runs recorded in a SQLite history",
		Aliases: []string{"h"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Required: true,
				Usage:    "SQLite history file",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "maximum number of runs to list",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "only runs from this source (http, job or cli)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print runs as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Int("limit") < 1 {
				return cli.Exit("limit must be positive", 2)
			}

			repo, err := repository.NewSQLiteRunsRepository(c.String("db"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("open history: %v", err), 1)
			}
			defer func() { _ = repo.Close() }()

			runs, total, err := service.NewRunService(repo).List(c.Context, model.RunQueryOptions{
				Source: c.String("source"),
				Limit:  c.Int("limit"),
			})
			if err != nil {
				return cli.Exit(fmt.Sprintf("list history: %v", err), 1)
			}

			if c.Bool("json") {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}
			return printRuns(stdout, runs, total)
		},
	}
}

func printRuns(w io.Writer, runs []model.OptimizationRun, total int64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSOURCE\tQUANTITY\tCOST\tSATISFIED\tVIOLATIONS")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\t%d\n",
			run.ID,
			run.CreatedAt.Local().Format(time.DateTime),
			run.Source,
			strconv.FormatFloat(run.Input.Quantity, 'f', -1, 64),
			strconv.FormatFloat(run.Result.Cost, 'f', 2, 64),
			run.Satisfied,
			len(run.Result.Violations),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d runs\n", len(runs), total)
	return err
}
