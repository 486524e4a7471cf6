package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/IamAraragi/sha256-go/logging"
	"github.com/IamAraragi/sha256-go/shautil"
)

var (
	sumFlagString string
	sumFlagDouble bool
)

var sumCmd = &cobra.Command{
	Use:   "sum [file ...]",
	Short: "Print SHA-256 checksums of files, stdin, or a literal string",
	Long: `Print SHA-256 checksums, one "<hex>  <name>" line per input.
With no file arguments the message is read from stdin; with --string
the argument itself is the message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("string") {
			printDigest([]byte(sumFlagString), fmt.Sprintf("%q", sumFlagString))
			return nil
		}

		if len(args) == 0 {
			data, err := ioutil.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "read stdin")
			}
			printDigest(data, "-")
			return nil
		}

		for _, name := range args {
			data, err := ioutil.ReadFile(name)
			if err != nil {
				logging.VPrint(logging.ERROR, "cannot read input file",
					logging.LogFormat{"file": name, "err": err})
				return errors.Wrapf(err, "read %s", name)
			}
			printDigest(data, name)
		}
		return nil
	},
}

func printDigest(data []byte, name string) {
	h := shautil.Sha256(data)
	if sumFlagDouble {
		h = shautil.Hash256(data)
	}
	fmt.Printf("%s  %s\n", h, name)
}

func init() {
	sumCmd.Flags().StringVarP(&sumFlagString, "string", "s", "", "digest the argument string instead of files")
	sumCmd.Flags().BoolVarP(&sumFlagDouble, "double", "d", false, "apply SHA-256 twice")
}
