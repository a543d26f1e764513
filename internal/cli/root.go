package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhill1/circlekit/internal/infra/config"
	"github.com/jhill1/circlekit/internal/infra/logger"
	"github.com/jhill1/circlekit/internal/ui/tui"
	"github.com/jhill1/circlekit/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var configDir string
	var cleanup func() error

	// closeLog runs when each RunE returns, including on error.
	closeLog := func() error {
		if cleanup == nil {
			return nil
		}
		err := cleanup()
		cleanup = nil
		return err
	}

	cmd := &cobra.Command{
		Use:          "circlekit",
		Short:        "circlekit: circle area and perimeter calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !debug {
				return nil
			}
			root, err := resolveConfigRoot(configDir)
			if err != nil {
				return err
			}
			c, err := logger.Setup(logger.Config{Root: root, Debug: debug})
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				ConfigLocator: config.NewFinder(),
				ConfigLoader:  config.NewLoader(),
				Measure:       usecase.NewMeasureCircles(),
				Logger:        logger.L(),
				LogPath:       logger.Path(),
			}
			if strings.TrimSpace(configDir) != "" {
				root, err := resolveConfigRoot(configDir)
				if err != nil {
					return err
				}
				deps.ConfigDir = root
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .circlekit/logs/circlekit.log")
	cmd.PersistentFlags().StringVarP(&configDir, "config-dir", "C", "", "Directory holding circlekit.yaml (optional; searched upward from the working directory if omitted)")

	cmd.AddCommand(measureCmd(&configDir))
	cmd.AddCommand(versionCmd())

	cmd.RunE = closingLog(cmd.RunE, closeLog)
	for _, sub := range cmd.Commands() {
		if sub.RunE != nil {
			sub.RunE = closingLog(sub.RunE, closeLog)
		}
	}
	return cmd
}

func closingLog(run func(*cobra.Command, []string) error, closeLog func() error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := closeLog(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}
