package cli

import (
	"github.com/safedep/hashbridge/tui"
	"github.com/spf13/cobra"
)

// NewExportsCmd creates the exports command.
func NewExportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List the functions the module exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			return app.Presenter.RenderExports(&tui.ExportsView{
				Module:    app.Module.Name(),
				Functions: app.Module.Exports(),
			})
		},
	}

	return cmd
}
