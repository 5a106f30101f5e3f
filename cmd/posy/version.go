package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posykit/posy"
	"github.com/posykit/posy/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the posy version",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		fmt.Printf("posy version %s\n", strings.TrimSpace(posy.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
