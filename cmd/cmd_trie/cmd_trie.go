package cmd_trie

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rskv-p/kvtrie/config"
	"github.com/rskv-p/kvtrie/constant"
	"github.com/rskv-p/kvtrie/pkg/x_driver"
	"github.com/rskv-p/kvtrie/pkg/x_log"
	"github.com/rskv-p/kvtrie/pkg/x_trie"
)

var Cmd = &cobra.Command{
	Use:   "trie [flags] <datafile> [<datafile>...]",
	Short: "Load key:value data files straight into a trie and report costs",
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

		return Run(cfg, args, cmd.OutOrStdout(), x_log.With("trie"))
	},
}

func init() {
	x_driver.BindFlags(Cmd, x_driver.FlagSet{IntKey: true, Iterate: true})
}

// Run is the aa flow without the facade: every timing line carries the
// trie cost of its step.
func Run(cfg *config.Config, files []string, stdout io.Writer, log zerolog.Logger) error {
	out, err := x_driver.OpenOutput(cfg.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer out.Close()

	tr := &costedTrie[string]{Trie: x_trie.New[string]()}
	defer tr.Clear()

	codec := x_driver.KeyCodec{IntKeys: cfg.UseIntKey}
	keep := func(v string) string { return v }

	for _, file := range files {
		phase := x_driver.StartPhase(stdout, "Inserts")
		if _, err := x_driver.LoadData[string](tr, file, cfg.Delimiter[0], codec, keep); err != nil {
			log.Error().Err(err).Str("file", file).Msg("load failed")
			return fmt.Errorf("failed loading from file '%s': %w", file, err)
		}
		phase.DoneWithCost(tr.take())
	}
	fmt.Fprintln(stdout, "Trie loaded")

	if cfg.DeleteFile != "" {
		phase := x_driver.StartPhase(stdout, "Deletions")
		err := x_driver.Remove[string](tr, cfg.DeleteFile, codec, func(r x_driver.Result[string]) error {
			return x_driver.PrintResult(stdout, "DELETE", r)
		})
		if err != nil {
			log.Error().Err(err).Msg("delete pass failed")
		} else {
			phase.DoneWithCost(tr.take())
		}
	}

	if cfg.QueryFile != "" {
		phase := x_driver.StartPhase(stdout, "Queries")
		err := x_driver.Query[string](tr, cfg.QueryFile, codec, func(r x_driver.Result[string]) error {
			return x_driver.PrintResult(stdout, "LOOKUP", r)
		})
		if err != nil {
			log.Error().Err(err).Msg("query pass failed")
		} else {
			phase.DoneWithCost(tr.take())
		}
	}

	if cfg.Iterate {
		if _, err := x_driver.PrintKeys[string](stdout, tr, keep); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Trie contains %d keys in %d nodes; longest key %d bytes\n",
		tr.Len(), tr.NodeCount(), tr.MaxKeyLen())
	if cfg.Print {
		if cfg.PrintStyle == "tree" {
			fmt.Fprint(out, tr.Tree().String())
		} else {
			tr.Dump(out)
		}
	}

	released, err := x_driver.Release[string](tr, nil)
	if err != nil {
		return err
	}
	log.Debug().Int("released", released).Msg("values released")
	return nil
}
