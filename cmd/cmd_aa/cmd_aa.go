package cmd_aa

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rskv-p/kvtrie/config"
	"github.com/rskv-p/kvtrie/constant"
	"github.com/rskv-p/kvtrie/pkg/x_aarray"
	"github.com/rskv-p/kvtrie/pkg/x_driver"
	"github.com/rskv-p/kvtrie/pkg/x_log"
)

var Cmd = &cobra.Command{
	Use:   "aa [flags] <datafile> [<datafile>...]",
	Short: "Load key:value data files into an associative array",
	Long: `Creates an associative array and loads it with values from the data files given.

The order of the operations controlled by -d, -q and -p is: deletion first,
followed by any queries, and then finally printing.`,
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

		return Run(cfg, args, cmd.OutOrStdout(), x_log.With("aa"))
	},
}

func init() {
	x_driver.BindFlags(Cmd, x_driver.FlagSet{IntKey: true, Iterate: true})
}

// Run loads files, applies deletes and queries, then reports.
func Run(cfg *config.Config, files []string, stdout io.Writer, log zerolog.Logger) error {
	out, err := x_driver.OpenOutput(cfg.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()

	metrics := x_driver.NewMetrics(cfg.MetricsFile)
	aa := x_aarray.Create[string](cfg.ArraySize, cfg.Probe, cfg.HashPrimary, cfg.HashSecondary,
		metrics.Options(log)...)
	defer aa.Destroy()

	codec := x_driver.KeyCodec{IntKeys: cfg.UseIntKey}
	keep := func(v string) string { return v }

	for _, file := range files {
		phase := x_driver.StartPhase(stdout, "Inserts")
		n, err := x_driver.LoadData[string](aa, file, cfg.Delimiter[0], codec, keep)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("load failed")
			return fmt.Errorf("failed loading from file '%s': %w", file, err)
		}
		phase.Done()
		log.Debug().Str("file", file).Int("entries", n).Msg("file loaded")
	}
	fmt.Fprintln(stdout, "Associative array loaded")

	if cfg.DeleteFile != "" {
		phase := x_driver.StartPhase(stdout, "Deletions")
		err := x_driver.Remove[string](aa, cfg.DeleteFile, codec, func(r x_driver.Result[string]) error {
			return x_driver.PrintResult(stdout, "DELETE", r)
		})
		if err != nil {
			log.Error().Err(err).Msg("delete pass failed")
		} else {
			phase.Done()
		}
	}

	if cfg.QueryFile != "" {
		phase := x_driver.StartPhase(stdout, "Queries")
		err := x_driver.Query[string](aa, cfg.QueryFile, codec, func(r x_driver.Result[string]) error {
			return x_driver.PrintResult(stdout, "LOOKUP", r)
		})
		if err != nil {
			log.Error().Err(err).Msg("query pass failed")
		} else {
			phase.Done()
		}
	}

	if cfg.Iterate {
		if _, err := x_driver.PrintKeys[string](stdout, aa, keep); err != nil {
			return err
		}
	}

	if err := aa.PrintSummary(out); err != nil {
		return err
	}
	x_driver.LogStats(log, aa)
	if cfg.Print {
		if err := printContents(out, aa, cfg.PrintStyle); err != nil {
			return err
		}
	}

	released, err := x_driver.Release[string](aa, nil)
	if err != nil {
		return err
	}
	log.Debug().Int("released", released).Msg("values released")

	return metrics.Write(cfg.MetricsFile)
}

func printContents(w io.Writer, aa *x_aarray.AssociativeArray[string], style string) error {
	if style == "tree" {
		return aa.PrintTree(w)
	}
	return aa.PrintContents(w)
}
