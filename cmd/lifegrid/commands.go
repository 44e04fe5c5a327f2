package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/lifegrid/internal/config"
	"github.com/rgehrsitz/lifegrid/internal/output"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [profile-file]",
		Short: "Print how much of the expected lifespan has been lived",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			name := output.NormalizeFormatName(format)
			if name != "console-lite" && name != "json" {
				return fmt.Errorf("unsupported stats format %q (want console-lite or json)", format)
			}
			return runFormat(cmd, args, name, "")
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().StringP("format", "f", "console-lite", "Output format: console-lite or json")
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [profile-file]",
		Short: "Render the life grid",
		Long: "Render the life grid in any registered format. Without --out the result is\n" +
			"written to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list-formats"); list {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Formats:", strings.Join(output.AvailableFormatterNames(), ", "))
				fmt.Fprintln(out, "Aliases:", strings.Join(output.AvailableFormatAliases(), ", "))
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")
			return runFormat(cmd, args, output.NormalizeFormatName(format), outDir)
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().StringP("format", "f", "console", "Output format (see --list-formats)")
	cmd.Flags().String("out", "", "Write to a timestamped file in this directory instead of stdout")
	cmd.Flags().Bool("list-formats", false, "List the available formats and exit")
	return cmd
}

// runFormat evaluates the profile and writes it in format, to stdout or
// to a timestamped file under outDir.
func runFormat(cmd *cobra.Command, args []string, format, outDir string) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s)", format,
			strings.Join(output.AvailableFormatterNames(), ", "))
	}

	clock, err := clockFromFlags(cmd)
	if err != nil {
		return err
	}
	profile, err := resolveProfile(cmd, args, clock, true)
	if err != nil {
		return err
	}

	snap := newEngine(cmd, clock).Snapshot(profile)

	if outDir != "" {
		filename, err := output.WriteFormattedTo(outDir, f, snap, output.FileExtension(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filename)
		return nil
	}

	data, err := f.Format(snap)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]
			if !fileExists(inputFile) {
				return fmt.Errorf("profile file not found: %s", inputFile)
			}

			parser := config.NewInputParser()
			if _, err := parser.LoadFromFile(inputFile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is valid\n", inputFile)
			return nil
		},
	}
}
