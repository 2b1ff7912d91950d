package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"roomgrid/app"
	"roomgrid/config"
	"roomgrid/log"
	"roomgrid/room"
)

var (
	version      = "0.3.1"
	scenarioFlag string
	tickFlag     int

	rootCmd = &cobra.Command{
		Use:   "roomgrid",
		Short: "Roomgrid - view a conference room as a paged tile grid in your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			// Flags override config
			if tickFlag > 0 {
				cfg.TickMillis = tickFlag
			}
			scenarioPath := cfg.Scenario
			if scenarioFlag != "" {
				scenarioPath = scenarioFlag
			}

			scenario := room.Demo()
			if scenarioPath != "" {
				loaded, err := room.Load(scenarioPath)
				if err != nil {
					return err
				}
				scenario = loaded
			}

			return app.Run(ctx, cfg, scenario)
		},
	}

	layoutsCmd = &cobra.Command{
		Use:   "layouts",
		Short: "Print the layout catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTILES\tMIN WIDTH\tMIN HEIGHT\tORIENTATION")
			for _, l := range cfg.Catalog() {
				fmt.Fprintf(w, "%s\t%d-%d\t%d\t%d\t%s\n",
					l.DisplayName(), l.MinTiles, l.MaxTiles, l.MinWidth, l.MinHeight, l.Orientation)
			}
			return w.Flush()
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and terminal capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			fmt.Printf("Color profile: %s\n", profileName(termenv.ColorProfile()))
			fmt.Printf("Dark background: %v\n", termenv.HasDarkBackground())

			if cols, rows, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
				fmt.Printf("Terminal size: %dx%d\n", cols, rows)
			}
			fmt.Printf("Log file: %s\n", log.Path())
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of roomgrid",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("roomgrid version %s\n", version)
		},
	}
)

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

func init() {
	rootCmd.Flags().StringVarP(&scenarioFlag, "scenario", "s", "",
		"Scenario file to replay instead of the built-in demo")
	rootCmd.Flags().IntVarP(&tickFlag, "tick", "t", 0,
		"Replay tick interval in milliseconds (overrides config)")

	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
