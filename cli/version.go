package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/safedep/hashbridge/bridge"
	"github.com/safedep/hashbridge/internal/release"
	"github.com/safedep/hashbridge/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var (
		check      bool
		releaseAPI string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information.

With --check the latest published release is compared with this build: its
version, and the functions its module exports (from the release's
exports.json, produced by "hashbridge exports --format json").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "hashbridge %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "module: %s\n", bridge.ModuleName)

			if !check {
				return nil
			}

			module, err := bridge.Load()
			if err != nil {
				return ErrRegistration(err)
			}

			var opts []release.Option
			if releaseAPI != "" {
				opts = append(opts, release.WithAPI(releaseAPI))
			}

			report, err := release.NewClient(opts...).Compare(cmd.Context(), release.Local{
				Version: version.Version,
				Manifest: release.Manifest{
					Module:    module.Name(),
					Functions: module.Exports(),
				},
			})
			if err != nil {
				return WrapError(ExitGeneral, "release check failed", err)
			}

			writeReleaseReport(out, module.Name(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "compare with the latest release")
	cmd.Flags().StringVar(&releaseAPI, "release-api", "", "releases API base URL")
	_ = cmd.Flags().MarkHidden("release-api")

	return cmd
}

func writeReleaseReport(w io.Writer, module string, report *release.Report) {
	if report.Newer {
		_, _ = fmt.Fprintf(w, "update available: %s -> %s\n%s\n",
			report.CurrentVersion, report.LatestVersion, report.ReleaseURL)
	} else {
		_, _ = fmt.Fprintf(w, "latest release: %s\n", report.LatestVersion)
	}

	switch {
	case report.Manifest == nil:
		_, _ = fmt.Fprintf(w, "exports: %s publishes no %s\n", report.LatestVersion, release.ManifestAsset)
		return
	case report.ModuleRenamed:
		_, _ = fmt.Fprintf(w, "module: %s loads as %s (this build: %s)\n",
			report.LatestVersion, report.Manifest.Module, module)
	}

	if !report.ExportsChanged() {
		_, _ = fmt.Fprintf(w, "exports: unchanged in %s\n", report.LatestVersion)
		return
	}

	changes := make([]string, 0, len(report.Added)+len(report.Removed))
	for _, fn := range report.Added {
		changes = append(changes, "+"+fn)
	}
	for _, fn := range report.Removed {
		changes = append(changes, "-"+fn)
	}
	_, _ = fmt.Fprintf(w, "exports: %s in %s\n", strings.Join(changes, " "), report.LatestVersion)
}
