package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree against the given streams so tests can
// drive it without touching the process stdio.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	var settingsFile string

	root := &cobra.Command{
		Use:   "fiacompare",
		Short: "Compare RMD income from a fixed indexed annuity against a 401(k)",
		Long: `fiacompare replays 40 years of historical S&P 500 price returns through a
fixed indexed annuity (declining participation rate, 0% floor) and a 401(k)
(fee drag), then compares required minimum distributions from age 73.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal; anything else is worth reporting.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&settingsFile, "settings", "", "settings file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	_ = v.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", pf.Lookup("log-format"))

	root.AddCommand(
		newRunCmd(v, &settingsFile),
		newExampleConfigCmd(),
		newFormatsCmd(),
	)
	return root
}
