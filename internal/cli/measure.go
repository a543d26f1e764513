package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhill1/circlekit/internal/domain"
	"github.com/jhill1/circlekit/internal/infra/logger"
	"github.com/jhill1/circlekit/internal/usecase"
)

func measureCmd(configDir *string) *cobra.Command {
	var format string
	var precision int

	c := &cobra.Command{
		Use:   "measure [--] <radius>...",
		Short: "Print area and perimeter for one or more radii",
		Long: "Print area and perimeter for one or more radii (π is fixed at 3.14).\n" +
			"Pass negative values after -- so they are not read as flags.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.L()

			root, cfg, err := loadSettings(*configDir)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("format") {
				cfg.Output.Format = strings.ToLower(strings.TrimSpace(format))
			}
			if cmd.Flags().Changed("precision") {
				cfg.Output.Precision = precision
			}
			if !domain.ValidFormat(cfg.Output.Format) {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", cfg.Output.Format)
			}

			uc := usecase.NewMeasureCircles()
			ms, err := uc.MeasureStrings(cmd.Context(), args)
			if err != nil {
				log.Info("measure.rejected", "args", args, "err", err.Error())
				return err
			}

			log.Debug("measure.done", "root", root, "count", len(ms), "format", cfg.Output.Format)
			return printMeasurements(cmd.OutOrStdout(), ms, cfg.Output.Format, cfg.Output.Precision)
		},
	}

	c.Flags().StringVar(&format, "format", domain.FormatPretty, "Output format: pretty|json (overrides circlekit.yaml)")
	c.Flags().IntVarP(&precision, "precision", "p", -1, "Decimals in pretty output; -1 for shortest (overrides circlekit.yaml)")
	return c
}

func printMeasurements(w io.Writer, ms []domain.Measurement, format string, precision int) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"circles": ms,
		}
		return enc.Encode(payload)
	case domain.FormatPretty, "":
		printPrettyMeasurements(w, ms, precision)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyMeasurements(w io.Writer, ms []domain.Measurement, precision int) {
	for i, m := range ms {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Circle(radius=%s)\n", domain.FormatNumber(m.Radius, -1))
		fmt.Fprintf(w, "  area:      %s\n", domain.FormatNumber(m.Area, precision))
		fmt.Fprintf(w, "  perimeter: %s\n", domain.FormatNumber(m.Perimeter, precision))
	}
}
