package cmd_fasta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rskv-p/kvtrie/config"
	"github.com/rskv-p/kvtrie/constant"
	"github.com/rskv-p/kvtrie/pkg/x_aarray"
	"github.com/rskv-p/kvtrie/pkg/x_driver"
	"github.com/rskv-p/kvtrie/pkg/x_fasta"
	"github.com/rskv-p/kvtrie/pkg/x_log"
)

var Cmd = &cobra.Command{
	Use:   "fasta [flags] <fastafile> [<fastafile>...]",
	Short: "Load FASTA records into an associative array keyed by record ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return constant.ErrNoDataFiles
		}
		cfg, err := x_driver.LoadConfig(cmd)
		if err != nil {
			return err
		}
		if err := x_driver.InitLogging(cfg); err != nil {
			return err
		}
		defer x_log.Close()

		return Run(cfg, args, cmd.OutOrStdout(), x_log.With("fasta"))
	},
}

func init() {
	x_driver.BindFlags(Cmd, x_driver.FlagSet{})
}

type store = x_aarray.AssociativeArray[*x_fasta.Record]

// Run loads the FASTA files, applies deletes and queries, then reports.
func Run(cfg *config.Config, files []string, stdout io.Writer, log zerolog.Logger) error {
	out, err := x_driver.OpenOutput(cfg.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()

	metrics := x_driver.NewMetrics(cfg.MetricsFile)
	aa := x_aarray.Create[*x_fasta.Record](cfg.ArraySize, cfg.Probe, cfg.HashPrimary, cfg.HashSecondary,
		metrics.Options(log)...)
	defer aa.Destroy()

	for _, file := range files {
		phase := x_driver.StartPhase(stdout, "Inserts")
		n, err := load(aa, file, log)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("load failed")
			return fmt.Errorf("failed loading from file '%s': %w", file, err)
		}
		phase.Done()
		log.Debug().Str("file", file).Int("records", n).Msg("file loaded")
	}
	fmt.Fprintln(stdout, "Associative array loaded")

	// FASTA IDs are always text.
	codec := x_driver.KeyCodec{}

	if cfg.DeleteFile != "" {
		phase := x_driver.StartPhase(stdout, "Deletions")
		err := x_driver.Remove[*x_fasta.Record](aa, cfg.DeleteFile, codec, func(r x_driver.Result[*x_fasta.Record]) error {
			if !r.Found {
				_, err := fmt.Fprintf(stdout, "DELETE: key %s produced no value\n", r.Label)
				return err
			}
			_, err := fmt.Fprintf(stdout, "DELETE: successfully deleted record with key %s\n", r.Label)
			return err
		})
		if err != nil {
			log.Error().Err(err).Msg("delete pass failed")
		} else {
			phase.Done()
		}
	}

	if cfg.QueryFile != "" {
		phase := x_driver.StartPhase(stdout, "Queries")
		err := x_driver.Query[*x_fasta.Record](aa, cfg.QueryFile, codec, func(r x_driver.Result[*x_fasta.Record]) error {
			if !r.Found {
				_, err := fmt.Fprintf(stdout, "LOOKUP: key %s produced no value\n", r.Label)
				return err
			}
			if _, err := fmt.Fprintf(stdout, "LOOKUP: key %s produced record:\n", r.Label); err != nil {
				return err
			}
			return r.Value.Print(stdout)
		})
		if err != nil {
			log.Error().Err(err).Msg("query pass failed")
		} else {
			phase.Done()
		}
	}

	if err := aa.PrintSummary(out); err != nil {
		return err
	}
	x_driver.LogStats(log, aa)
	if cfg.Print {
		if cfg.PrintStyle == "tree" {
			err = aa.PrintTree(out)
		} else {
			err = aa.PrintContents(out)
		}
		if err != nil {
			return err
		}
	}

	released, err := x_driver.Release[*x_fasta.Record](aa, nil)
	if err != nil {
		return err
	}
	log.Debug().Int("released", released).Msg("records released")

	return metrics.Write(cfg.MetricsFile)
}

func load(aa *store, path string, log zerolog.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file '%s': %w", path, err)
	}
	defer f.Close()

	r := x_fasta.NewReader(f, x_fasta.WithLogger(log))
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return r.Records(), nil
		}
		if err != nil {
			return r.Records(), err
		}
		if err := aa.Insert([]byte(rec.ID), rec); err != nil {
			return r.Records(), fmt.Errorf("failed to add FASTA record with key '%s': %w", rec.ID, err)
		}
	}
}
