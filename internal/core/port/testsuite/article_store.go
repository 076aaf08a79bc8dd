package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestArticleStore(t *testing.T, factory func(t *testing.T) (port.ArticleStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.ArticleStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				created, err := store.CreateArticle(ctx, model.NewArticle("Hello", "World"))
				if err != nil {
					return errors.WithStack(err)
				}

				if created.ID() == 0 {
					t.Fatalf("created.ID(): should not be zero")
				}

				article, err := store.GetArticleByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Hello", article.Title(); e != g {
					t.Errorf("article.Title(): expected '%v', got '%v'", e, g)
				}

				if e, g := "World", article.Content(); e != g {
					t.Errorf("article.Content(): expected '%v', got '%v'", e, g)
				}

				if article.CreatedAt().IsZero() {
					t.Errorf("article.CreatedAt(): should not be zero value")
				}

				total, err := store.CountArticles(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(1), total; e != g {
					t.Errorf("total: expected '%v', got '%v'", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetUnknownArticle",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				_, err := store.GetArticleByID(ctx, model.ArticleID(9999))
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
		{
			Name: "UpdateArticle",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				created, err := store.CreateArticle(ctx, model.NewArticle("Hello", "World"))
				if err != nil {
					return errors.WithStack(err)
				}

				title := "Hello2"

				updated, err := store.UpdateArticle(ctx, created.ID(), port.ArticleUpdates{
					Title: &title,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Hello2", updated.Title(); e != g {
					t.Errorf("updated.Title(): expected '%v', got '%v'", e, g)
				}

				if e, g := "World", updated.Content(); e != g {
					t.Errorf("updated.Content(): expected '%v', got '%v'", e, g)
				}

				article, err := store.GetArticleByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Hello2", article.Title(); e != g {
					t.Errorf("article.Title(): expected '%v', got '%v'", e, g)
				}

				if _, err := store.UpdateArticle(ctx, model.ArticleID(9999), port.ArticleUpdates{Title: &title}); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
		{
			Name: "DeleteArticleWithComments",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				created, err := store.CreateArticle(ctx, model.NewArticle("Hello", "World"))
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateComment(ctx, created.ID(), "jdoe", "First !"); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteArticle(ctx, created.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetArticleByID(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				comments, err := store.QueryArticleComments(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(comments); e != g {
					t.Errorf("len(comments): expected '%v', got '%v'", e, g)
				}

				if err := store.DeleteArticle(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
		{
			Name: "QueryComments",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				first, err := store.CreateArticle(ctx, model.NewArticle("First", "1"))
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := store.CreateArticle(ctx, model.NewArticle("Second", "2"))
				if err != nil {
					return errors.WithStack(err)
				}

				for _, content := range []string{"a", "b"} {
					if _, err := store.CreateComment(ctx, first.ID(), "jdoe", content); err != nil {
						return errors.WithStack(err)
					}
				}

				comments, err := store.QueryArticleComments(ctx, first.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 2, len(comments); e != g {
					t.Fatalf("len(comments): expected '%v', got '%v'", e, g)
				}

				if e, g := "a", comments[0].Content(); e != g {
					t.Errorf("comments[0].Content(): expected '%v', got '%v'", e, g)
				}

				if e, g := first.ID(), comments[0].ArticleID(); e != g {
					t.Errorf("comments[0].ArticleID(): expected '%v', got '%v'", e, g)
				}

				comments, err = store.QueryArticleComments(ctx, second.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(comments); e != g {
					t.Errorf("len(comments): expected '%v', got '%v'", e, g)
				}

				if _, err := store.CreateComment(ctx, model.ArticleID(9999), "jdoe", "orphan"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
				}

				return nil
			},
		},
		{
			Name: "QueryArticles",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				for _, title := range []string{"a", "b", "c"} {
					if _, err := store.CreateArticle(ctx, model.NewArticle(title, title)); err != nil {
						return errors.WithStack(err)
					}
				}

				articles, err := store.QueryArticles(ctx, port.QueryArticlesOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(articles); e != g {
					t.Fatalf("len(articles): expected '%v', got '%v'", e, g)
				}

				if e, g := "a", articles[0].Title(); e != g {
					t.Errorf("articles[0].Title(): expected '%v', got '%v'", e, g)
				}

				page, limit := 1, 2

				articles, err = store.QueryArticles(ctx, port.QueryArticlesOptions{Page: &page, Limit: &limit})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(articles); e != g {
					t.Fatalf("len(articles): expected '%v', got '%v'", e, g)
				}

				if e, g := "c", articles[0].Title(); e != g {
					t.Errorf("articles[0].Title(): expected '%v', got '%v'", e, g)
				}

				return nil
			},
		},
		{
			Name: "SearchArticles",
			Run: func(t *testing.T, ctx context.Context, store port.ArticleStore) error {
				fixtures := []*model.BaseArticle{
					model.NewArticle("Hello", "World"),
					model.NewArticle("Gopher", "The WORLD is concurrent"),
					model.NewArticle("Unrelated", "Nothing to see"),
					model.NewArticle("100% pure", "under_score"),
					model.NewArticle("ÉCOLE de Go", "Leçons"),
				}

				for _, f := range fixtures {
					if _, err := store.CreateArticle(ctx, f); err != nil {
						return errors.WithStack(err)
					}
				}

				type search struct {
					Term     string
					Expected []string
				}

				searches := []search{
					{Term: "wor", Expected: []string{"Hello", "Gopher"}},
					{Term: "HELLO", Expected: []string{"Hello"}},
					{Term: "absent", Expected: []string{}},
					{Term: "%", Expected: []string{"100% pure"}},
					{Term: "_", Expected: []string{"100% pure"}},
					{Term: "ÉCOLE", Expected: []string{"ÉCOLE de Go"}},
					{Term: "École", Expected: []string{"ÉCOLE de Go"}},
					{Term: "leçons", Expected: []string{"ÉCOLE de Go"}},
					{Term: "", Expected: []string{"Hello", "Gopher", "Unrelated", "100% pure", "ÉCOLE de Go"}},
				}

				for _, s := range searches {
					articles, err := store.SearchArticles(ctx, s.Term)
					if err != nil {
						return errors.WithStack(err)
					}

					titles := make([]string, 0, len(articles))
					for _, a := range articles {
						titles = append(titles, a.Title())
					}

					if e, g := len(s.Expected), len(titles); e != g {
						t.Errorf("search '%s': expected %d results, got %d: %s", s.Term, e, g, spew.Sdump(titles))
						continue
					}

					for i := range s.Expected {
						if e, g := s.Expected[i], titles[i]; e != g {
							t.Errorf("search '%s': titles[%d]: expected '%v', got '%v'", s.Term, i, e, g)
						}
					}
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}
