package seed

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bornholm/blog/internal/command/common"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const flagFile = "file"

type Fixtures struct {
	Articles []ArticleFixture `yaml:"articles"`
}

type ArticleFixture struct {
	Title    string           `yaml:"title"`
	Content  string           `yaml:"content"`
	Comments []CommentFixture `yaml:"comments"`
}

type CommentFixture struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load articles and comments from a YAML fixtures file",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagFile,
				Aliases:  []string{"f"},
				Usage:    "Path to the fixtures file",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			fixtures, err := loadFixtures(cCtx.String(flagFile))
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetArticleManager(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			totalComments := 0

			for i, a := range fixtures.Articles {
				article, err := manager.CreateArticle(ctx, service.ArticleInput{
					Title:   a.Title,
					Content: a.Content,
				})
				if err != nil {
					return errors.Wrapf(err, "could not create article #%d", i)
				}

				for j, c := range a.Comments {
					_, err := manager.AddComment(ctx, article.ID(), service.CommentInput{
						Author:  c.Author,
						Content: c.Content,
					})
					if err != nil {
						return errors.Wrapf(err, "could not create comment #%d of article #%d", j, i)
					}

					totalComments++
				}

				slog.DebugContext(ctx, "article seeded", slog.String("article_id", article.ID().String()))
			}

			fmt.Fprintf(cCtx.App.Writer, "%d article(s), %d comment(s) created\n", len(fixtures.Articles), totalComments)

			return nil
		},
	}
}

func loadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read fixtures file '%s'", path)
	}

	var fixtures Fixtures

	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, errors.Wrapf(err, "could not parse fixtures file '%s'", path)
	}

	return &fixtures, nil
}
