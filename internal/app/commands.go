package app

import (
	"bytes"
	"fmt"
	"os"

	"plinko_backend/internal/report"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *App) initCommands() {
	a.rootCmd = &cobra.Command{
		Use:   "plinko",
		Short: "Plinko board simulation",
		Long: `Drop a disc into one of the slots A..I and see where it lands.

Examples:
  plinko drop --slot E --show
  plinko tally --slot A -n 100000 --fit
  plinko all -n 10000 --normalize
  plinko chart -o plinko.html
  plinko serve`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
	}
	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "Path to the simulation config")
	a.rootCmd.PersistentFlags().StringVar(&a.envPath, "env", ".env", "Path to the .env file")

	a.rootCmd.AddCommand(
		a.dropCmd(),
		a.tallyCmd(),
		a.allCmd(),
		a.exactCmd(),
		a.chartCmd(),
		a.serveCmd(),
	)
}

// slotFlag слот из флага или из конфига
func (a *App) slotFlag(cmd *cobra.Command) string {
	slot, _ := cmd.Flags().GetString("slot")
	if slot == "" {
		slot = a.ServiceProvider.SimulationCfg().Slot()
	}
	return slot
}

// trialsFlag количество бросков из флага или из конфига
func (a *App) trialsFlag(cmd *cobra.Command) int {
	if cmd.Flags().Changed("trials") {
		n, _ := cmd.Flags().GetInt("trials")
		return n
	}
	return a.ServiceProvider.SimulationCfg().Trials()
}

// normalizeFlag доли вместо количества, по умолчанию из конфига
func (a *App) normalizeFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("normalize") {
		v, _ := cmd.Flags().GetBool("normalize")
		return v
	}
	return a.ServiceProvider.SimulationCfg().Normalize()
}

func (a *App) dropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop a single disc",
		RunE: func(cmd *cobra.Command, _ []string) error {
			show, _ := cmd.Flags().GetBool("show")
			res, err := a.ServiceProvider.PlinkoService().Drop(cmd.Context(), a.slotFlag(cmd), show)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range res.Board {
				fmt.Fprintln(out, row)
			}
			fmt.Fprintf(out, "%s -> %s\n", res.Start, res.Landing)
			return nil
		},
	}
	cmd.Flags().StringP("slot", "s", "", "Drop slot A..I (default from config)")
	cmd.Flags().Bool("show", false, "Print the board with the disc path")
	return cmd
}

func (a *App) tallyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Drop many discs from one slot and count landings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serv := a.ServiceProvider.PlinkoService()
			slot := a.slotFlag(cmd)

			tally, err := serv.RunTrials(cmd.Context(), slot, a.trialsFlag(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := report.Table(out, slot, tally, a.normalizeFlag(cmd)); err != nil {
				return err
			}

			if fit, _ := cmd.Flags().GetBool("fit"); fit && tally.Total() > 0 {
				exact, err := serv.Exact(slot)
				if err != nil {
					return err
				}
				res, err := serv.Fit(tally, exact)
				if err != nil {
					return err
				}
				return report.Fit(out, res)
			}
			return nil
		},
	}
	cmd.Flags().StringP("slot", "s", "", "Drop slot A..I (default from config)")
	cmd.Flags().IntP("trials", "n", 0, "Number of discs (default from config)")
	cmd.Flags().Bool("normalize", false, "Print shares instead of counts")
	cmd.Flags().Bool("fit", false, "Compare with the exact distribution (chi-square)")
	return cmd
}

func (a *App) allCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Drop discs from every slot A..I",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tallies, err := a.ServiceProvider.PlinkoService().RunAllSlots(cmd.Context(), a.trialsFlag(cmd))
			if err != nil {
				return err
			}
			return report.TableAll(cmd.OutOrStdout(), tallies, a.normalizeFlag(cmd))
		},
	}
	cmd.Flags().IntP("trials", "n", 0, "Number of discs per slot (default from config)")
	cmd.Flags().Bool("normalize", false, "Print shares instead of counts")
	return cmd
}

func (a *App) exactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Print the exact landing distribution for a slot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			slot := a.slotFlag(cmd)
			dist, err := a.ServiceProvider.PlinkoService().Exact(slot)
			if err != nil {
				return err
			}
			return report.ExactTable(cmd.OutOrStdout(), slot, dist)
		},
	}
	cmd.Flags().StringP("slot", "s", "", "Drop slot A..I (default from config)")
	return cmd
}

func (a *App) chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render landing bar charts to an HTML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("output")
			if path == "" {
				path = a.ServiceProvider.SimulationCfg().ChartPath()
			}

			serv := a.ServiceProvider.PlinkoService()
			count := a.trialsFlag(cmd)
			normalize, _ := cmd.Flags().GetBool("normalize")

			// Файл пишем только после успешного прогона
			var buf bytes.Buffer
			slot, _ := cmd.Flags().GetString("slot")
			if slot == "" {
				tallies, err := serv.RunAllSlots(cmd.Context(), count)
				if err != nil {
					return err
				}
				if err := report.ChartAll(&buf, tallies, normalize); err != nil {
					return err
				}
			} else {
				tally, err := serv.RunTrials(cmd.Context(), slot, count)
				if err != nil {
					return err
				}
				if err := report.Chart(&buf, slot, tally, normalize); err != nil {
					return err
				}
			}

			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write chart file: %w", err)
			}
			log.Printf("chart written to %s", path)
			return nil
		},
	}
	cmd.Flags().StringP("slot", "s", "", "Drop slot A..I (all slots when empty)")
	cmd.Flags().IntP("trials", "n", 0, "Number of discs per slot (default from config)")
	cmd.Flags().Bool("normalize", true, "Plot shares instead of counts")
	cmd.Flags().StringP("output", "o", "", "Output HTML file (default from config)")
	return cmd
}

func (a *App) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}
