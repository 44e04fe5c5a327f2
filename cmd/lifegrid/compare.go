package main

import (
	"fmt"

	"github.com/rgehrsitz/lifegrid/internal/compare"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [profile-file]",
		Short: "Compare the grid under several life expectancies",
		Long: "Evaluate the same birth date against the preset life expectancies (or --years)\n" +
			"and show how the days remaining change relative to the profile's own expectancy.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, _ := cmd.Flags().GetIntSlice("years")
			format, _ := cmd.Flags().GetString("format")

			clock, err := clockFromFlags(cmd)
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, args, clock, true)
			if err != nil {
				return err
			}

			ce := compare.NewCompareEngine(newEngine(cmd, clock))
			compSet, err := ce.Compare(cmd.Context(), profile, compare.CompareOptions{Years: years})
			if err != nil {
				return err
			}

			var out string
			switch format {
			case "table", "":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unknown compare format %q (want table, compact, csv or json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().IntSlice("years", nil, "Life expectancies to compare (default: the presets)")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, compact, csv or json")
	return cmd
}
