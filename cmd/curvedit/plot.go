package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/internal/presentation/tui"
)

var plotCmd = &cobra.Command{
	Use:   "plot <curve>",
	Short: "Draw a curve in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, nil)
		if err != nil {
			return err
		}

		width, height := s.Config.Plot.Width, s.Config.Plot.Height
		if cmd.Flags().Changed("width") {
			width, _ = cmd.Flags().GetInt("width")
		}
		if cmd.Flags().Changed("height") {
			height, _ = cmd.Flags().GetInt("height")
		}

		points, err := s.Editor.Sample(args[0], width-1)
		if err != nil {
			return err
		}

		plotter := tui.NewPlotter(os.Stdout, width, height, s.Config.Plot.Color)
		fmt.Print(plotter.Render(points))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().Int("width", 0, "Plot width in columns (default from config)")
	plotCmd.Flags().Int("height", 0, "Plot height in rows (default from config)")
}
