package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IamAraragi/sha256-go/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of shasum",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shasum version", version.GetVersion())
	},
}
