package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bornholm/blog/internal/adapter/gorm/gormtest"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/validation"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func newTestArticleManager(t *testing.T) *ArticleManager {
	store, err := gormtest.NewArticleStore(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return NewArticleManager(store)
}

func TestArticleManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	manager := newTestArticleManager(t)

	created, err := manager.CreateArticle(ctx, ArticleInput{Title: "  Hello ", Content: "World\n"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello", created.Title(); e != g {
		t.Errorf("created.Title(): expected '%v', got '%v'", e, g)
	}

	if e, g := "World", created.Content(); e != g {
		t.Errorf("created.Content(): expected '%v', got '%v'", e, g)
	}

	if _, err := manager.UpdateArticle(ctx, created.ID(), ArticleInput{Title: "Hello2", Content: "World"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	entry, err := manager.GetArticle(ctx, created.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello2", entry.Article.Title(); e != g {
		t.Errorf("entry.Article.Title(): expected '%v', got '%v'", e, g)
	}

	results, err := manager.SearchArticles(ctx, "wor")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(results); e != g {
		t.Errorf("len(results): expected '%v', got '%v'", e, g)
	}

	if err := manager.DeleteArticle(ctx, created.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.GetArticle(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
	}
}

func TestMaxTitleLength(t *testing.T) {
	if e, g := 128, MaxTitleLength; e != g {
		t.Errorf("MaxTitleLength: expected %v, got %v", e, g)
	}
}

func TestArticleManagerValidation(t *testing.T) {
	type testCase struct {
		Name           string
		Input          ArticleInput
		ExpectedFields []string
	}

	testCases := []testCase{
		{
			Name:           "Empty",
			Input:          ArticleInput{},
			ExpectedFields: []string{"title", "content"},
		},
		{
			Name:           "Blank",
			Input:          ArticleInput{Title: "   ", Content: "\t\n"},
			ExpectedFields: []string{"title", "content"},
		},
		{
			Name:           "TitleTooLong",
			Input:          ArticleInput{Title: strings.Repeat("a", MaxTitleLength+1), Content: "World"},
			ExpectedFields: []string{"title"},
		},
		{
			Name:           "TitleAtLimit",
			Input:          ArticleInput{Title: strings.Repeat("a", MaxTitleLength), Content: "World"},
			ExpectedFields: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			manager := newTestArticleManager(t)

			_, err := manager.CreateArticle(ctx, tc.Input)

			if len(tc.ExpectedFields) == 0 {
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}
				return
			}

			var validationErrs validation.Errors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("err: expected validation.Errors, got '%+v'", err)
			}

			for _, field := range tc.ExpectedFields {
				if len(validationErrs.For(field)) == 0 {
					t.Errorf("expected an error on field '%s', got %s", field, spew.Sdump(validationErrs))
				}
			}

			total, err := manager.ArticleStore.CountArticles(ctx)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := int64(0), total; e != g {
				t.Errorf("total: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestArticleManagerListArticles(t *testing.T) {
	ctx := context.Background()
	manager := newTestArticleManager(t)

	first, err := manager.CreateArticle(ctx, ArticleInput{Title: "First", Content: "1"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.CreateArticle(ctx, ArticleInput{Title: "Second", Content: "2"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.AddComment(ctx, first.ID(), CommentInput{Author: "jdoe", Content: "Nice"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	entries, err := manager.ListArticles(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(entries); e != g {
		t.Fatalf("len(entries): expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(entries[0].Comments); e != g {
		t.Errorf("len(entries[0].Comments): expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(entries[1].Comments); e != g {
		t.Errorf("len(entries[1].Comments): expected '%v', got '%v'", e, g)
	}

	if _, err := manager.AddComment(ctx, first.ID(), CommentInput{Author: "jdoe"}); err == nil {
		t.Errorf("err: expected a validation error, got nil")
	}
}
