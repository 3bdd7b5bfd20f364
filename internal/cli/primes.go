package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/primes"
)

func newPrimesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Print the first N primes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ps, err := primes.First(cliCtx.Config.Spiral.Count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case "text":
				words := make([]string, len(ps))
				for i, p := range ps {
					words[i] = strconv.Itoa(p)
				}
				_, err = fmt.Fprintln(out, strings.Join(words, " "))
			case "json":
				err = json.NewEncoder(out).Encode(ps)
			default:
				return fmt.Errorf("primes: output %q; expected text|json: %w", output, primespiral.ErrInvalidInput)
			}

			return err
		},
	}
	cmd.Flags().IntP("count", "n", 100, "number of primes")
	bind(cmd, "spiral.count", "count")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")

	return cmd
}
