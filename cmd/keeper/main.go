package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keeper-rounds/internal/config"
	"keeper-rounds/internal/logging"
	"keeper-rounds/internal/pipeline"
	"keeper-rounds/internal/report"
)

type app struct {
	cfg    *config.Config
	logger *zap.Logger

	rosterPath string
	draftPath  string
	ownersPath string
	jsonOut    string
	xlsxOut    string
	verbose    bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, verbose: cfg.Verbose}

	root := &cobra.Command{
		Use:   "keeper",
		Short: "Computes keeper value",
		Long: `Reads last season's Yahoo final rosters and draft results (copied as text)
plus a team -> owner mapping, and prints the keeper round of every rostered
player as a statement for Yahoo's keeper page console:

  var k={"Ben Roethlisberger":3,"LeSean McCoy":999};`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.New(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runKeeper,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", cfg.Verbose, "debug logging")
	pf.IntVarP(&cfg.SubRounds, "keeper-sub-rounds", "k", cfg.SubRounds, "Number of rounds drafted players appreciate")
	pf.IntVarP(&cfg.FARound, "fa-round", "f", cfg.FARound, "Round for players that were free agent pick ups")
	pf.IntVar(&cfg.UnkeepableRounds, "unkeepable-rounds", cfg.UnkeepableRounds, "The number of top rounds that are unkeepable")
	pf.IntVar(&cfg.UnkeepableRoundID, "unkeepable-round-id", cfg.UnkeepableRoundID, "A number to indicate that a pick is unkeepable")

	f := root.Flags()
	f.StringVarP(&a.draftPath, "draft", "d", "", "Yahoo draft results for last year")
	f.StringVarP(&a.rosterPath, "roster", "r", "", "Yahoo final roster for last year")
	f.StringVarP(&a.ownersPath, "owners", "o", "", "Mapping of team names to owners (YAML)")
	f.StringVar(&a.jsonOut, "json-out", "", "also write the full report as JSON to this file")
	f.StringVar(&a.xlsxOut, "xlsx-out", "", "also write the keeper sheet as XLSX to this file")
	_ = root.MarkFlagRequired("draft")
	_ = root.MarkFlagRequired("roster")
	_ = root.MarkFlagRequired("owners")

	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) runKeeper(cmd *cobra.Command, args []string) error {
	files := make([]*os.File, 0, 3)
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()
	open := func(path string) (io.Reader, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	rosterIn, err := open(a.rosterPath)
	if err != nil {
		return err
	}
	draftIn, err := open(a.draftPath)
	if err != nil {
		return err
	}
	ownersIn, err := open(a.ownersPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res, err := pipeline.Run(pipeline.Inputs{
		Roster: rosterIn,
		Draft:  draftIn,
		Owners: ownersIn,
	}, a.cfg.Rules(), a.logger)
	if err != nil {
		return reportFailure(out, err)
	}

	statement, err := report.Statement(res.Roster)
	if err != nil {
		return err
	}
	if a.jsonOut != "" || a.xlsxOut != "" {
		rep, err := report.Build(res, time.Now())
		if err != nil {
			return err
		}
		if a.jsonOut != "" {
			if err := report.WriteJSON(a.jsonOut, rep); err != nil {
				return fmt.Errorf("write json report: %w", err)
			}
			a.logger.Info("wrote json report", zap.String("path", a.jsonOut))
		}
		if a.xlsxOut != "" {
			if err := report.WriteXLSX(a.xlsxOut, rep); err != nil {
				return fmt.Errorf("write xlsx report: %w", err)
			}
			a.logger.Info("wrote xlsx report", zap.String("path", a.xlsxOut))
		}
	}

	fmt.Fprintf(out, "Parsed %d players from roster\n", res.Roster.Len())
	fmt.Fprintf(out, "Drafted players not on any roster: %d\n", len(res.Draft.Orphans))
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "To import to Yahoo's keeper page:")
	fmt.Fprintln(out, statement)
	return nil
}

// reportFailure prints an extraction failure and the exit notice. The run
// ends without an error status: nothing was produced, but nothing crashed.
func reportFailure(out io.Writer, err error) error {
	var se *pipeline.StageError
	if !errors.As(err, &se) {
		return err
	}
	fmt.Fprintf(out, "Error! %v\n", se.Err)
	if se.Stage == pipeline.StageRoster {
		fmt.Fprintln(out, "No valid roster, exiting")
	} else {
		fmt.Fprintln(out, "No valid keeper data, exiting")
	}
	return nil
}
