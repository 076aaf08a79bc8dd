package article

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/bornholm/blog/internal/command/common"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagPage  = "page"
	flagLimit = "limit"

	maxLimit = 100
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "article",
		Usage: "Manage articles",
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			searchCommand(),
			deleteCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List articles",
		Flags: common.WithReadFlags(
			&cli.IntFlag{
				Name:  flagPage,
				Value: 0,
				Usage: "Page to display, starting at 0",
			},
			&cli.IntFlag{
				Name:  flagLimit,
				Value: 50,
				Usage: fmt.Sprintf("Maximum number of articles per page, between 1 and %d", maxLimit),
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			reader, err := getArticleReader(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			page, limit := clampPagination(cCtx.Int(flagPage), cCtx.Int(flagLimit))

			articles, err := reader.ListArticles(ctx, page, limit)
			if err != nil {
				return errors.WithStack(err)
			}

			return printArticles(cCtx.App.Writer, articles)
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show an article and its comments",
		ArgsUsage: "<article-id>",
		Flags:     common.WithReadFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			articleID, err := common.ArticleIDArg(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			reader, err := getArticleReader(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			article, err := reader.GetArticle(ctx, articleID)
			if err != nil {
				if errors.Is(err, port.ErrNotFound) {
					return errors.Errorf("article '%s' not found", articleID)
				}

				return errors.WithStack(err)
			}

			w := cCtx.App.Writer

			fmt.Fprintf(w, "# %s\n\n", article.Title)
			fmt.Fprintf(w, "Published %s\n\n", humanize.Time(article.CreatedAt))
			fmt.Fprintf(w, "%s\n", article.Content)

			if len(article.Comments) > 0 {
				fmt.Fprintf(w, "\n## Comments (%d)\n\n", len(article.Comments))
			}

			for _, c := range article.Comments {
				author := c.Author
				if author == "" {
					author = "Anonymous"
				}

				fmt.Fprintf(w, "- %s (%s): %s\n", author, humanize.Time(c.CreatedAt), c.Content)
			}

			return nil
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search articles by title or content",
		ArgsUsage: "<term>",
		Flags:     common.WithReadFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			reader, err := getArticleReader(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			articles, err := reader.SearchArticles(ctx, cCtx.Args().First())
			if err != nil {
				return errors.WithStack(err)
			}

			return printArticles(cCtx.App.Writer, articles)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an article and its comments",
		ArgsUsage: "<article-id>",
		Flags:     common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			articleID, err := common.ArticleIDArg(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetArticleManager(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := manager.DeleteArticle(ctx, articleID); err != nil {
				if errors.Is(err, port.ErrNotFound) {
					return errors.Errorf("article '%s' not found", articleID)
				}

				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "article deleted", slog.String("article_id", articleID.String()))

			return nil
		},
	}
}

// clampPagination bounds the page and limit the same way the JSON API does.
func clampPagination(page int, limit int) (int, int) {
	return max(page, 0), min(max(limit, 1), maxLimit)
}

func printArticles(out io.Writer, articles []articleRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tCREATED")

	for _, a := range articles {
		fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Title, humanize.Time(a.CreatedAt))
	}

	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
