package cli

import (
	"fmt"

	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"github.com/spf13/cobra"
)

func newEvaluateCommand(g *globalOptions) *cobra.Command {
	var (
		reaction      string
		temperature   float64
		concentration float64
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Print k, rate and estimated time for one set of conditions",
		Long: `Evaluate a catalog reaction at one temperature and concentration.

Examples:
  kinetics-lab evaluate                                   # Default reaction and sliders
  kinetics-lab evaluate -r hydrogen_peroxide -t 40 -c 0.5`,
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

			ranges := cat.Ranges()
			if !cmd.Flags().Changed("temperature") {
				temperature = ranges.Temperature.Default
			}
			if !cmd.Flags().Changed("concentration") {
				concentration = ranges.Concentration.Default
			}

			result, err := kinetics.DefaultEvaluator().Evaluate(p, kinetics.EvaluationInput{
				TemperatureCelsius: temperature,
				Concentration:      concentration,
			})
			if err != nil {
				return err
			}

			d := kinetics.FormatResult(result)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reaction:                      %s\n", p.Label())
			if p.Equation != "" {
				fmt.Fprintf(out, "Equation:                      %s\n", p.Equation)
			}
			fmt.Fprintf(out, "Temperature:                   %s\n", d.Temperature)
			fmt.Fprintf(out, "Concentration:                 %s\n", d.Concentration)
			fmt.Fprintf(out, "Rate constant k:               %s\n", d.RateConstant)
			fmt.Fprintf(out, "Reaction rate:                 %s\n", d.ReactionRate)
			fmt.Fprintf(out, "Estimated time (inverse rate): %s\n", d.EstimatedTime)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reaction, "reaction", "r", "", "Catalog key of the reaction")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "Temperature in °C (catalog default when unset)")
	cmd.Flags().Float64VarP(&concentration, "concentration", "c", 0, "Concentration in mol/L (catalog default when unset)")

	return cmd
}
