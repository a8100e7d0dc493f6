package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rskv-p/kvtrie/cmd/cmd_aa"
	"github.com/rskv-p/kvtrie/cmd/cmd_fasta"
	"github.com/rskv-p/kvtrie/cmd/cmd_trie"
	"github.com/rskv-p/kvtrie/pkg/x_driver"
	"github.com/rskv-p/kvtrie/pkg/x_log"
)

var rootCmd = &cobra.Command{
	Use:           "kvtrie",
	Short:         "Byte-keyed trie associative array drivers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the first error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		x_log.Error().Err(err).Msg("kvtrie failed")
	}
	return err
}

func init() {
	x_driver.BindPersistentFlags(rootCmd)

	rootCmd.AddCommand(cmd_aa.Cmd)
	rootCmd.AddCommand(cmd_trie.Cmd)
	rootCmd.AddCommand(cmd_fasta.Cmd)
}
