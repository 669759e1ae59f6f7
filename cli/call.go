package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/safedep/hashbridge/bridge"
	"github.com/safedep/hashbridge/digest"
	"github.com/safedep/hashbridge/host"
	"github.com/safedep/hashbridge/tui"
	"github.com/spf13/cobra"
)

// NewCallCmd creates the call command.
func NewCallCmd() *cobra.Command {
	var jsonArgs bool

	cmd := &cobra.Command{
		Use:   "call <function> [args...]",
		Short: "Call an exported function",
		Long: `Call an exported function with positional arguments.

Arguments are passed as strings. With --json-args each argument is parsed
as a JSON value instead, so non-string values can be passed:

  hashbridge call hash_sha256 abc
  hashbridge call --json-args hash_sha256 '"abc"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			values, err := parseCallArgs(args[1:], jsonArgs)
			if err != nil {
				return err
			}

			return runCall(app, args[0], values)
		},
	}

	cmd.Flags().BoolVar(&jsonArgs, "json-args", false, "parse each argument as a JSON value")

	return cmd
}

// NewHashCmd creates the hash command, a shortcut for calling the configured
// default function on one input.
func NewHashCmd() *cobra.Command {
	var (
		fromStdin bool
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "hash [input]",
		Short: "Hash text with the default function",
		Long: `Hash text with the configured default function (invoke.default_function).

The input is taken verbatim from the argument, or from stdin with --stdin.
--algorithm (sha256, blake3) overrides the default function.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			var values []host.Value
			switch {
			case fromStdin:
				if len(args) > 0 {
					return NewCLIError(ExitArgument, "pass input either as an argument or with --stdin, not both")
				}
				input, err := readTextInput(cmd.InOrStdin())
				if err != nil {
					return err
				}
				values = []host.Value{host.String(input)}
			default:
				values = host.FromStrings(args)
			}

			function := app.Config.Invoke.DefaultFunction
			if algorithm != "" {
				alg, err := digest.ParseAlgorithm(algorithm)
				if err != nil {
					return WrapError(ExitArgument, "invalid --algorithm", err)
				}
				function = bridge.ExportName(alg)
			}

			return runCall(app, function, values)
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the input text from stdin")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "digest algorithm: sha256, blake3")

	return cmd
}

func runCall(app *App, function string, args []host.Value) error {
	result, err := app.Module.Call(function, args...)
	if err != nil {
		return callError(function, err)
	}

	native := make([]any, 0, len(args))
	for _, a := range args {
		native = append(native, a.Native())
	}

	return app.Presenter.RenderCall(&tui.CallView{
		Module:   app.Module.Name(),
		Function: function,
		Args:     native,
		Result:   result.Native(),
	})
}

// parseCallArgs converts command-line arguments into host values.
func parseCallArgs(args []string, asJSON bool) ([]host.Value, error) {
	if !asJSON {
		return host.FromStrings(args), nil
	}

	values := make([]host.Value, 0, len(args))
	for i, a := range args {
		dec := json.NewDecoder(strings.NewReader(a))
		dec.UseNumber()

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, WrapError(ExitArgument, fmt.Sprintf("argument %d is not valid JSON", i), err)
		}
		if dec.More() {
			return nil, NewCLIError(ExitArgument, fmt.Sprintf("argument %d has trailing data after the JSON value", i))
		}
		values = append(values, host.FromAny(v))
	}

	return values, nil
}

// readTextInput reads all of r as UTF-8 text.
func readTextInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return "", WrapError(ExitArgument, "invalid input", errors.New("stdin is not valid UTF-8 text"))
	}
	return string(data), nil
}
