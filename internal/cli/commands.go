package cli

import (
	"errors"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/spf13/cobra"
)

func (c *CLI) newPutCommand() *cobra.Command {
	var hide, unhide bool

	cmd := &cobra.Command{
		Use:   "put <name> [snippet]",
		Short: "Store a snippet",
		Long: `Store a snippet under name, replacing the text of an existing one.

Without a snippet argument the text is read from stdin.
--hide and --unhide change visibility after storing; with both, unhide wins.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var snippet string
			if len(args) == 2 {
				snippet = args[1]
			} else {
				s, err := readSnippet(c.in, c.errOut)
				if errors.Is(err, common.ErrorEmptySnippet) {
					return WrapExitError(ExitUsage, "reading snippet", err)
				}
				if err != nil {
					return WrapExitError(ExitFailure, "reading snippet", err)
				}
				snippet = s
			}

			res, err := c.app.store.Put(cmd.Context(), name, snippet, hide, unhide)
			if err != nil {
				return WrapExitError(ExitFailure, "put failed", err)
			}
			return c.formatter().Put(res)
		}),
	}

	cmd.Flags().BoolVar(&hide, "hide", false, "hide the snippet from catalog and search")
	cmd.Flags().BoolVar(&unhide, "unhide", false, "make a hidden snippet visible again")

	return cmd
}

func (c *CLI) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Retrieve a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			name := args[0]
			message, found, err := c.app.store.Get(cmd.Context(), name)
			if err != nil {
				return WrapExitError(ExitFailure, "get failed", err)
			}
			return c.formatter().Get(name, message, found)
		}),
	}
}

func (c *CLI) newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List visible keywords",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			keywords, err := c.app.store.Catalog(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "catalog failed", err)
			}
			return c.formatter().Catalog(keywords)
		}),
	}
}

func (c *CLI) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <search_term>",
		Short: "Search visible snippets by substring",
		Long: `Search visible snippets whose text contains search_term (case-sensitive).

'%' and '_' in search_term are SQL LIKE wildcards.`,
		Args: cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			term := args[0]
			matches, err := c.app.store.Search(cmd.Context(), term)
			if err != nil {
				return WrapExitError(ExitFailure, "search failed", err)
			}
			return c.formatter().Search(term, matches)
		}),
	}
}
