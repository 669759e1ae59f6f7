package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/safedep/hashbridge/digest"
	"github.com/safedep/hashbridge/host"
	"github.com/safedep/hashbridge/tui"
	"github.com/spf13/cobra"
)

// digestGroupSize is the number of hex characters per diff line.
const digestGroupSize = 8

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <function> <input> <expected>",
		Short: "Check that a function produces the expected digest",
		Long: `Call a digest function on input and compare the result with an expected
hex digest. Comparison is case-insensitive. On mismatch the differing
8-character groups are shown as a unified diff and the exit code is 6.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			function, input, expected := args[0], args[1], args[2]

			expectedSum, err := digest.ParseHex(expected)
			if err != nil {
				return WrapError(ExitArgument, "invalid expected digest", err)
			}

			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.Module.Call(function, host.String(input))
			if err != nil {
				return callError(function, err)
			}

			actual, ok := result.Native().(string)
			if !ok {
				return NewCLIError(ExitGeneral, fmt.Sprintf("%s did not return text", function))
			}

			view := &tui.VerifyView{
				Function: function,
				Input:    input,
				Expected: hex.EncodeToString(expectedSum),
				Actual:   actual,
			}
			view.Match = view.Expected == view.Actual

			if !view.Match {
				view.Diff, err = digestDiff(view.Expected, view.Actual)
				if err != nil {
					return err
				}
			}

			if err := app.Presenter.RenderVerify(view); err != nil {
				return err
			}

			if !view.Match {
				return NewCLIError(ExitMismatch, "digest mismatch")
			}
			return nil
		},
	}

	return cmd
}

// digestDiff renders a unified diff of two hex digests split into groups.
func digestDiff(expected, actual string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        groupDigest(expected),
		B:        groupDigest(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to diff digests: %w", err)
	}
	return text, nil
}

func groupDigest(hex string) []string {
	lines := make([]string, 0, len(hex)/digestGroupSize+1)
	for start := 0; start < len(hex); start += digestGroupSize {
		end := start + digestGroupSize
		if end > len(hex) {
			end = len(hex)
		}
		lines = append(lines, hex[start:end]+"\n")
	}
	return lines
}
