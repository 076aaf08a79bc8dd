package comment

import (
	"fmt"

	"github.com/bornholm/blog/internal/command/common"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagAuthor  = "author"
	flagContent = "content"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "comment",
		Usage: "Manage article comments",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a comment to an article",
				ArgsUsage: "<article-id>",
				Flags: common.WithCommonFlags(
					&cli.StringFlag{
						Name:    flagAuthor,
						Aliases: []string{"a"},
						Usage:   "Comment author",
					},
					&cli.StringFlag{
						Name:     flagContent,
						Aliases:  []string{"c"},
						Usage:    "Comment content",
						Required: true,
					},
				),
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

					comment, err := manager.AddComment(ctx, articleID, service.CommentInput{
						Author:  cCtx.String(flagAuthor),
						Content: cCtx.String(flagContent),
					})
					if err != nil {
						return errors.WithStack(err)
					}

					fmt.Fprintln(cCtx.App.Writer, comment.ID())

					return nil
				},
			},
		},
	}
}
