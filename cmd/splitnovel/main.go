// Command splitnovel cuts a novel text file into numbered chapter files,
// splitting on long rules of hyphens or em dashes.
//
// Usage:
//
//	splitnovel daomubiji.txt --out output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/novel2image/proxy/internal/novelsplit"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "splitnovel <input>",
	Short: "Split a novel into numbered text files",
	Long: `splitnovel reads a UTF-8 novel and writes each piece between separator
lines (30+ "-" or 10+ "—") to <out>/1.txt, <out>/2.txt, ...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := novelsplit.SplitFile(args[0], outDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d parts written to %s\n", len(paths), outDir)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "output", "output directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
