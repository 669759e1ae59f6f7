package cli

import (
	"github.com/safedep/dry/log"
	"github.com/safedep/hashbridge/wire"
	"github.com/spf13/cobra"
)

// NewInvokeCmd creates the internal _invoke command.
func NewInvokeCmd() *cobra.Command {
	var codecName string

	cmd := &cobra.Command{
		Use:   "_invoke",
		Short: "Internal command serving function calls over stdin/stdout",
		Long: `Serve function calls from a host process. Requests are read from stdin
and one response per request is written to stdout, framed as
newline-delimited JSON or a CBOR sequence.

  {"id":"1","function":"hash_sha256","args":["abc"]}`,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			if codecName == "" {
				codecName = app.Config.Invoke.Codec
			}

			codec, err := wire.NewCodec(codecName)
			if err != nil {
				return ErrConfig("invalid --codec", err)
			}

			server := wire.NewServer(app.Module, codec)
			summary, err := server.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			log.Debugf("invoke: served %d requests (%d faults) over %s", summary.Requests, summary.Faults, codec.Name())
			if err != nil {
				return WrapError(ExitGeneral, "invoke stream failed", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&codecName, "codec", "", "wire codec: json, cbor (default from config)")

	return cmd
}
