package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/fia-comparison/internal/calculation"
	"github.com/rpgo/fia-comparison/internal/config"
	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/rpgo/fia-comparison/internal/logging"
	"github.com/rpgo/fia-comparison/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunCmd(v *viper.Viper, settingsFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the FIA vs 401(k) comparison and write the table",
		Long: `Run the 40-year comparison. Parameters come from --params, from the
built-in example with --example, or are prompted for on stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(v, *settingsFile)
			if err != nil {
				return err
			}
			return runComparison(settings, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringP("params", "p", "", "scenario parameters file (yaml or json)")
	f.Bool("example", false, "use the built-in example scenario instead of prompting")
	f.StringP("output", "o", config.DefaultOutputPath, "output file; empty for a timestamped name")
	f.StringP("format", "f", "csv", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.Bool("strict", false, "fail instead of warning on out-of-range parameters")
	_ = v.BindPFlag("parameters_file", f.Lookup("params"))
	_ = v.BindPFlag("example", f.Lookup("example"))
	_ = v.BindPFlag("output_path", f.Lookup("output"))
	_ = v.BindPFlag("output_format", f.Lookup("format"))
	_ = v.BindPFlag("strict", f.Lookup("strict"))
	return cmd
}

func runComparison(settings *config.Settings, in io.Reader, out, errOut io.Writer) error {
	logger, err := logging.New(errOut, settings.Logging.Level, settings.Logging.Format)
	if err != nil {
		return err
	}
	entry := logging.RunEntry(logger)

	params, err := resolveParameters(settings, in, out, entry)
	if err != nil {
		return err
	}

	if settings.Strict {
		if err := config.CheckParameters(params); err != nil {
			return err
		}
	} else {
		for _, issue := range config.ValidateParameters(params) {
			entry.Warn(issue)
		}
	}

	engine := calculation.NewComparisonEngineWithLogger(logging.NewEngineLogger(entry))
	results := engine.Run(*params)

	path, err := output.GenerateReport(results, settings.OutputFormat, reportPath(settings))
	if err != nil {
		return err
	}
	entry.WithField("path", path).Debug("report written")

	fmt.Fprintf(out, "\nOutput saved to: %s\n", path)
	fmt.Fprint(out, output.Summary(results))
	return nil
}

func resolveParameters(settings *config.Settings, in io.Reader, out io.Writer, entry *log.Entry) (*domain.Parameters, error) {
	switch {
	case settings.ParametersFile != "":
		entry.WithField("file", settings.ParametersFile).Info("loading parameters")
		return config.NewInputParser().LoadFromFile(settings.ParametersFile)
	case settings.UseExample:
		entry.Info("using example parameters")
		return config.ExampleParameters(), nil
	default:
		return config.NewPrompter(in, out).Collect()
	}
}

// reportPath keeps the default file name in step with a non-csv format.
func reportPath(settings *config.Settings) string {
	if settings.OutputPath != config.DefaultOutputPath {
		return settings.OutputPath
	}
	f := output.GetFormatterByName(settings.OutputFormat)
	if f == nil {
		return settings.OutputPath
	}
	return strings.TrimSuffix(settings.OutputPath, ".csv") + "." + f.Extension()
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write the example scenario parameters to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fia_params.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SaveParameters(config.ExampleParameters(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example parameters written to: %s\n", path)
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}
