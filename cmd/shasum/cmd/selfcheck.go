package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/IamAraragi/sha256-go/logging"
	"github.com/IamAraragi/sha256-go/shautil"
)

// Known-answer vector from FIPS 180-4.
const (
	selfCheckInput  = "abc"
	selfCheckDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

var errSelfCheck = errors.New("self-check digest mismatch")

// runSelfCheck hashes a fixed vector and compares against the
// published digest. A mismatch is a defect in the constant tables or
// the compression loop, never an input problem.
func runSelfCheck() error {
	got := shautil.Sha256([]byte(selfCheckInput)).String()
	if got != selfCheckDigest {
		return errors.Wrapf(errSelfCheck, "got %s, want %s", got, selfCheckDigest)
	}
	return nil
}

// selfCheck aborts the process before any real work when the digest
// core is broken.
func selfCheck() {
	if err := runSelfCheck(); err != nil {
		logging.CPrint(logging.FATAL, "SHA-256 self-check failed", logging.LogFormat{"err": err})
	}
}

var selfCheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: `Verify the digest core against the FIPS 180-4 "abc" vector`,
	Run: func(cmd *cobra.Command, args []string) {
		// The initializers already aborted on failure, so reaching
		// here means the check passed.
		logging.CPrint(logging.INFO, "self-check passed", logging.LogFormat{
			"input":  selfCheckInput,
			"digest": selfCheckDigest,
		})
	},
}
