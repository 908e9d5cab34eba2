package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReactionsCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reactions",
		Short: "List the reaction catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, cat, err := bootstrap(cmd, g)
			if err != nil {
				return err
			}
			defer logger.Sync()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tA\tEa (J/mol)\tORDER")
			for _, p := range cat.List() {
				key := p.Key
				if key == cat.DefaultKey() {
					key += " *"
				}
				fmt.Fprintf(w, "%s\t%s\t%.3g\t%.0f\t%d\n", key, p.Name, p.PreExponentialFactor, p.ActivationEnergy, p.Order)
			}
			return w.Flush()
		},
	}
}
