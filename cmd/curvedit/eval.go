package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/pkg/curve"
)

var evalCmd = &cobra.Command{
	Use:   "eval <curve> <x>...",
	Short: "Evaluate a curve at the given inputs",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, nil)
		if err != nil {
			return err
		}

		for _, arg := range args[1:] {
			x, err := parseFloat(arg)
			if err != nil {
				return err
			}
			y, err := s.Editor.Evaluate(args[0], x)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", formatFloat(x), formatFloat(y))
		}
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample <curve>",
	Short: "Print evenly spaced samples of a curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("samples")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openSession(cmd, nil)
		if err != nil {
			return err
		}
		points, err := s.Editor.Sample(args[0], n)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(points)
		}
		for _, p := range points {
			fmt.Printf("%s\t%s\n", formatFloat(p.X), formatFloat(p.Y))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntP("samples", "n", 0, "Number of intervals (default from config)")
	sampleCmd.Flags().Bool("json", false, "Print samples as JSON")
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return float32(f), nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid keyframe index %q", s)
	}
	return i, nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func snapFlag(cmd *cobra.Command) (curve.Snap, error) {
	name, _ := cmd.Flags().GetString("snap")
	return curve.ParseSnap(name)
}
