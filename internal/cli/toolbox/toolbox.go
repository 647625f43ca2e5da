// Package toolbox holds the skill, tool and coding project commands of the
// programming area.
package toolbox

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
)

// deleteCmd builds a delete subcommand; noun names the record in output
func deleteCmd(noun, listHint string, del func(ctx context.Context, c *cli.CLI, id string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				if err := del(ctx, c, args[0]); err != nil {
					return f.Fail(err, listHint)
				}
				return f.Success(map[string]any{"id": args[0], "deleted": true}, []string{args[0]}, func(w io.Writer) {
					fmt.Fprintf(w, "%s %s deleted\n", capitalize(noun), args[0])
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
