package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSelfCheck(t *testing.T) {
	require.NoError(t, runSelfCheck())
}
