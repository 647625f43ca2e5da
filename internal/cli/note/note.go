package note

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lifeos/internal/cli"
	noteservice "github.com/thenoetrevino/lifeos/internal/services/note"
	"github.com/thenoetrevino/lifeos/internal/tui/components"
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage markdown notes",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(addCmd())
	cmd.AddCommand(showCmd())

	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				notes, err := c.App.NoteService.ListNotes(ctx)
				if err != nil {
					return f.Fail(err, "")
				}
				ids := make([]string, len(notes))
				for i, n := range notes {
					ids[i] = n.ID
				}
				return f.Success(notes, ids, func(w io.Writer) {
					if len(notes) == 0 {
						fmt.Fprintln(w, "No notes found")
						return
					}
					for _, n := range notes {
						pin := " "
						if n.Pinned {
							pin = "*"
						}
						fmt.Fprintf(w, "  %s [%s] %s", pin, cli.ShortID(n.ID), n.Title)
						if len(n.Tags) > 0 {
							fmt.Fprintf(w, "  #%s", strings.Join(n.Tags, " #"))
						}
						fmt.Fprintln(w)
					}
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Long: `Create a note. Use --content=- to read the body from stdin.

Examples:
  lifeos note add --title="Ideas" --tag=work --tag=later
  cat draft.md | lifeos note add --title="Draft" --content=-
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				p := cli.NewFlagParser(cmd)
				title, err := p.ParseString("title")
				if err != nil {
					return f.Usage(err, "")
				}
				content, _ := cmd.Flags().GetString("content")
				if content == "-" {
					data, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return f.Fail(err, "")
					}
					content = string(data)
				}
				pinned, _ := cmd.Flags().GetBool("pin")

				n, err := c.App.NoteService.CreateNote(ctx, noteservice.CreateNoteRequest{
					Title:   title,
					Content: content,
					Tags:    p.ParseStringSlice("tag"),
					Pinned:  pinned,
				})
				if err != nil {
					return f.Fail(err, "")
				}
				return f.Success(n, []string{n.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "Note '%s' created (ID: %s)\n", n.Title, n.ID)
				})
			})
		},
	}
	cmd.Flags().String("title", "", "Note title (required)")
	cmd.Flags().String("content", "", "Markdown content (- reads stdin)")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cmd.Flags().Bool("pin", false, "Pin the note")
	cli.AddOutputFlags(cmd)
	return cmd
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <note-id>",
		Short: "Render a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				n, err := c.App.NoteService.GetNote(ctx, args[0])
				if err != nil {
					return f.Fail(err, "Use 'lifeos note list' to see note IDs")
				}
				raw, _ := cmd.Flags().GetBool("raw")
				return f.Success(n, []string{n.ID}, func(w io.Writer) {
					fmt.Fprintf(w, "# %s\n\n", n.Title)
					if raw {
						fmt.Fprintln(w, n.Content)
						return
					}
					fmt.Fprintln(w, components.RenderMarkdown(components.MarkdownProps{Content: n.Content, Width: 80}))
				})
			})
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	cli.AddOutputFlags(cmd)
	return cmd
}
