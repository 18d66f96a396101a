package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-netman",
	Short: "golang-netman is a network interface configuration daemon written in Go",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
