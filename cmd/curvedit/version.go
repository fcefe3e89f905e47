package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of curvedit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curvedit version %s\n", strings.TrimSpace(curvedit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
