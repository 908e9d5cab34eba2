package cli

import (
	"encoding/csv"
	"strconv"

	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"github.com/spf13/cobra"
)

func newCurveCommand(g *globalOptions) *cobra.Command {
	var (
		reaction      string
		concentration float64
		rng           kinetics.Range
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the rate-versus-temperature curve as CSV",
		Long: `Sample the reaction rate over a temperature range at a fixed concentration.

Examples:
  kinetics-lab curve > rates.csv
  kinetics-lab curve -r magnesium_hcl -c 0.5 --min 20 --max 80 --step 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, cat, err := bootstrap(cmd, g)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if reaction == "" {
				reaction = cat.DefaultKey()
			}
			p, err := cat.Get(reaction)
			if err != nil {
				return err
			}

			defaults := cat.Ranges().TemperatureRange()
			if !cmd.Flags().Changed("min") {
				rng.Min = defaults.Min
			}
			if !cmd.Flags().Changed("max") {
				rng.Max = defaults.Max
			}
			if !cmd.Flags().Changed("step") {
				rng.Step = defaults.Step
			}
			if !cmd.Flags().Changed("concentration") {
				concentration = cat.Ranges().Concentration.Default
			}

			points, err := kinetics.DefaultEvaluator().Curve(p, concentration, rng)
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			w.Write([]string{"temperature", "rate"})
			for _, pt := range points {
				w.Write([]string{
					strconv.FormatFloat(pt.Temperature, 'f', -1, 64),
					strconv.FormatFloat(pt.Rate, 'g', -1, 64),
				})
			}
			w.Flush()
			return w.Error()
		},
	}

	cmd.Flags().StringVarP(&reaction, "reaction", "r", "", "Catalog key of the reaction")
	cmd.Flags().Float64VarP(&concentration, "concentration", "c", 0, "Concentration in mol/L (catalog default when unset)")
	cmd.Flags().Float64Var(&rng.Min, "min", 0, "First temperature in °C")
	cmd.Flags().Float64Var(&rng.Max, "max", 0, "Last temperature in °C (inclusive)")
	cmd.Flags().Float64Var(&rng.Step, "step", 0, "Temperature step in °C")

	return cmd
}
