package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the upstream tag catalog",
		Long: `List every tag defined upstream, sorted by name. RUSH and
Special NOTE! must exist in this catalog for the rush and note workflows.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(rootOpts)
			if err != nil {
				return err
			}

			tags, err := client.ListTags(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "fetching tags failed", err)
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, tags)
			}

			fmt.Fprintln(out, "Available tags:")
			RenderTagList(out, tags)
			return nil
		},
	}
	return cmd
}
