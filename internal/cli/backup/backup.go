package backup

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

// ExportCmd writes every document as one JSON object
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Long: `Export all data as one JSON object keyed by storage key.

Examples:
  lifeos export > backup.json
  lifeos export --file=backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				path, _ := cmd.Flags().GetString("file")
				if path == "" {
					if err := storage.Export(ctx, c.App.Repo(), cmd.OutOrStdout()); err != nil {
						return f.Fail(err, "")
					}
					return nil
				}

				out, err := os.Create(path)
				if err != nil {
					return f.Fail(err, "")
				}
				if err := storage.Export(ctx, c.App.Repo(), out); err != nil {
					_ = out.Close()
					return f.Fail(err, "")
				}
				if err := out.Close(); err != nil {
					return f.Fail(err, "")
				}
				return f.Success(map[string]any{"file": path}, nil, func(w io.Writer) {
					fmt.Fprintf(w, "Exported to %s\n", path)
				})
			})
		},
	}
	cmd.Flags().String("file", "", "Write to this file instead of stdout")
	cli.AddOutputFlags(cmd)
	return cmd
}

// ImportCmd restores documents written by export
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import data written by export",
		Long: `Import data written by export. Reads stdin when no file is given.
Documents missing from the input are left as they are.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				in := cmd.InOrStdin()
				if len(args) == 1 {
					file, err := os.Open(args[0])
					if err != nil {
						return f.Fail(err, "")
					}
					defer func() { _ = file.Close() }()
					in = file
				}

				keys, err := storage.Import(ctx, c.App.Repo(), in)
				if err != nil {
					return f.Fail(err, "The input must be a JSON object produced by 'lifeos export'")
				}
				return f.Success(map[string]any{"imported": keys}, keys, func(w io.Writer) {
					fmt.Fprintf(w, "Imported %d documents\n", len(keys))
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
