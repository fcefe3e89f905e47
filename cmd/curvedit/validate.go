package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/internal/presentation/tui"
	"github.com/aretw0/curvedit/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [table...]",
	Short: "Check tables for parse errors and broken curves",
	Long: `Parses every table (or the ones named) and reports syntax errors, unresolved
subcurve references, reference cycles, name collisions and misordered keyframes.`,
	Run: func(cmd *cobra.Command, args []string) {
		status := tui.NewStatus(os.Stdout)
		if err := runValidate(cmd, args); err != nil {
			status.Failure("Validation failed: %v", err)
			os.Exit(1)
		}
		status.Success("Tables are valid!")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args)
	if err != nil {
		return err
	}

	var tables []validator.Source
	for _, doc := range s.Editor.Documents() {
		tables = append(tables, validator.Source{Name: doc.Name, Table: doc.Table})
	}
	return validator.Validate(tables)
}
