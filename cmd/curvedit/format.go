package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/internal/compiler"
	"github.com/aretw0/curvedit/internal/presentation/tui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [table...]",
	Short: "Rewrite tables in canonical form",
	Long: `Parses each table and writes it back in canonical layout. Comments are not
preserved. With --check nothing is written and the command fails if any table
would change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetBool("check")

		s, err := openSession(cmd, args)
		if err != nil {
			return err
		}

		status := tui.NewStatus(os.Stdout)
		var stale []string
		for _, doc := range s.Editor.Documents() {
			text, err := compiler.Format(doc.Table)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Name, err)
			}
			original, err := s.Store.Load(cmd.Context(), doc.Name)
			if err != nil {
				return err
			}
			if bytes.Equal(original, []byte(text)) {
				continue
			}

			if check {
				stale = append(stale, doc.Name)
				status.Warn("%s is not formatted", doc.Name)
				continue
			}
			if err := s.Editor.Save(cmd.Context(), doc.Name); err != nil {
				return err
			}
			status.Success("formatted %s", doc.Name)
		}

		if len(stale) > 0 {
			return fmt.Errorf("%d tables need formatting", len(stale))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().Bool("check", false, "Report unformatted tables without writing")
}
