package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/internal/compiler"
	"github.com/aretw0/curvedit/internal/presentation/graph"
	"github.com/aretw0/curvedit/internal/presentation/tui"
	"github.com/aretw0/curvedit/pkg/curve"
)

var listCmd = &cobra.Command{
	Use:   "list [table...]",
	Short: "Summarise the curves of each table",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, args)
		if err != nil {
			return err
		}

		var sb strings.Builder
		for _, doc := range s.Editor.Documents() {
			sb.WriteString(tui.TableMarkdown(doc.Name, doc.Table))
			sb.WriteString("\n")
		}
		return tui.Print(os.Stdout, sb.String())
	},
}

var showCmd = &cobra.Command{
	Use:   "show <curve>",
	Short: "Show the keyframes of a curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, nil)
		if err != nil {
			return err
		}
		c, err := s.Editor.Lookup(args[0])
		if err != nil {
			return err
		}
		md, err := tui.CurveMarkdown(c)
		if err != nil {
			return err
		}
		return tui.Print(os.Stdout, md)
	},
}

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List the builtin easing curves",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range curve.Builtins().Names() {
			fmt.Println(name)
		}
	},
}

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [table...]",
	Short: "Export the subcurve reference graph",
	Long:  `Outputs a Mermaid diagram (graph TD) of which curves reference which through Subcurve segments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		focus, _ := cmd.Flags().GetString("focus")

		s, err := openSession(cmd, args)
		if err != nil {
			return err
		}

		var tables []graph.NamedTable
		for _, doc := range s.Editor.Documents() {
			tables = append(tables, graph.NamedTable{Name: doc.Name, Table: doc.Table})
		}

		var overlay *graph.GraphOverlay
		if focus != "" {
			overlay = &graph.GraphOverlay{Focus: focus}
		}
		fmt.Print(graph.GenerateMermaid(tables, overlay))
		return nil
	},
}

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the table file grammar",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(compiler.Grammar())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(builtinsCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(grammarCmd)

	graphCmd.Flags().String("focus", "", "Highlight a curve and everything it references")
}
