package article

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/blog/internal/adapter/gorm/gormtest"
	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/core/service"
	blogHTTP "github.com/bornholm/blog/internal/http"
	"github.com/bornholm/blog/internal/http/flash"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type testEnv struct {
	server  *httptest.Server
	client  *http.Client
	manager *service.ArticleManager
}

func newTestEnv(t *testing.T) *testEnv {
	store, err := gormtest.NewArticleStore(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	manager := service.NewArticleManager(store)
	flashes := flash.NewStore(sessions.NewCookieStore([]byte("01234567890123456789012345678901")))

	handler, err := blogHTTP.NewServer(blogHTTP.WithMount("/", NewHandler(manager, flashes))).Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testEnv{
		server:  server,
		client:  client,
		manager: manager,
	}
}

func (e *testEnv) get(t *testing.T, path string) (int, string, *http.Response) {
	res, err := e.client.Get(e.server.URL + path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return readResponse(t, res)
}

func (e *testEnv) post(t *testing.T, path string, values url.Values) (int, string, *http.Response) {
	res, err := e.client.PostForm(e.server.URL+path, values)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return readResponse(t, res)
}

func (e *testEnv) count(t *testing.T) int64 {
	total, err := e.manager.ArticleStore.CountArticles(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return total
}

func (e *testEnv) createArticle(t *testing.T, title, content string) model.PersistedArticle {
	article, err := e.manager.CreateArticle(context.Background(), service.ArticleInput{Title: title, Content: content})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return article
}

func readResponse(t *testing.T, res *http.Response) (int, string, *http.Response) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res.StatusCode, string(body), res
}

func assertContains(t *testing.T, body string, substr string) {
	t.Helper()

	if !strings.Contains(body, substr) {
		t.Errorf("expected body to contain '%s', got:\n%s", substr, body)
	}
}

func assertNotContains(t *testing.T, body string, substr string) {
	t.Helper()

	if strings.Contains(body, substr) {
		t.Errorf("expected body not to contain '%s', got:\n%s", substr, body)
	}
}

func TestArticleListPage(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.get(t, "/")
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, "No articles yet.")

	article := env.createArticle(t, "Hello", "World")

	if _, err := env.manager.AddComment(context.Background(), article.ID(), service.CommentInput{Author: "jdoe", Content: "First !"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	env.createArticle(t, "Silent", "No comment")

	status, body, _ = env.get(t, "/")
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, "Hello")
	assertContains(t, body, "Silent")
	assertContains(t, body, "First !")
	assertContains(t, body, "/articleRead/"+article.ID().String()+"/")
}

func TestArticleCreate(t *testing.T) {
	env := newTestEnv(t)

	status, body, _ := env.get(t, "/articleCreate/")
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, `name="title"`)
	assertContains(t, body, `name="content"`)

	status, body, _ = env.post(t, "/articleCreate/", url.Values{"title": {"Hello"}, "content": {"World"}})
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, "Article added")
	assertContains(t, body, "Hello")

	if e, g := int64(1), env.count(t); e != g {
		t.Errorf("count: expected %v, got %v", e, g)
	}

	articles, err := env.manager.SearchArticles(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(articles); e != g {
		t.Fatalf("len(articles): expected %v, got %v", e, g)
	}

	if e, g := "World", articles[0].Content(); e != g {
		t.Errorf("articles[0].Content(): expected '%v', got '%v'", e, g)
	}

	// The notice is displayed once
	_, body, _ = env.get(t, "/")
	assertNotContains(t, body, "Article added")
}

func TestArticleCreateInvalid(t *testing.T) {
	type testCase struct {
		Name     string
		Values   url.Values
		Expected []string
	}

	testCases := []testCase{
		{
			Name:     "MissingTitle",
			Values:   url.Values{"title": {""}, "content": {"Echoed content"}},
			Expected: []string{"This field is required.", "Echoed content"},
		},
		{
			Name:     "MissingContent",
			Values:   url.Values{"title": {"Echoed title"}},
			Expected: []string{"This field is required.", `value="Echoed title"`},
		},
		{
			Name:     "TitleTooLong",
			Values:   url.Values{"title": {strings.Repeat("a", 129)}, "content": {"World"}},
			Expected: []string{"Ensure this value has at most 128 characters (it has 129).", strings.Repeat("a", 129)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			env := newTestEnv(t)

			status, body, _ := env.post(t, "/articleCreate/", tc.Values)
			if e, g := http.StatusOK, status; e != g {
				t.Fatalf("status: expected %v, got %v", e, g)
			}

			for _, s := range tc.Expected {
				assertContains(t, body, s)
			}

			assertNotContains(t, body, "Article added")

			if e, g := int64(0), env.count(t); e != g {
				t.Errorf("count: expected %v, got %v", e, g)
			}
		})
	}
}

func TestArticleReadPage(t *testing.T) {
	env := newTestEnv(t)

	article := env.createArticle(t, "Hello", "Some **bold** words")

	status, body, _ := env.get(t, "/articleRead/"+article.ID().String()+"/")
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, "Hello")
	assertContains(t, body, "<strong>bold</strong>")
	assertContains(t, body, "No comments yet.")

	for _, path := range []string{"/articleRead/9999/", "/articleRead/abc/", "/unknown/"} {
		status, _, _ := env.get(t, path)
		if e, g := http.StatusNotFound, status; e != g {
			t.Errorf("GET %s: expected status %v, got %v", path, e, g)
		}
	}

	_, body, _ = env.get(t, "/articleRead/9999/")
	assertContains(t, body, "This article does not exist or has been deleted.")
	assertContains(t, body, `<a href="/articleCreate/">Write a new article</a>`)

	_, body, _ = env.get(t, "/unknown/")
	assertContains(t, body, "The requested page could not be found.")
	assertNotContains(t, body, "Write a new article")
}

func TestNavigation(t *testing.T) {
	env := newTestEnv(t)

	_, body, _ := env.get(t, "/")
	assertContains(t, body, `aria-current="page">Articles</a>`)
	assertNotContains(t, body, `aria-current="page">New article</a>`)

	_, body, _ = env.get(t, "/articleCreate/")
	assertContains(t, body, `aria-current="page">New article</a>`)
	assertNotContains(t, body, `aria-current="page">Articles</a>`)
}

func TestArticleUpdate(t *testing.T) {
	env := newTestEnv(t)

	article := env.createArticle(t, "Hello", "World")
	path := "/articleUpdate/" + article.ID().String() + "/"

	status, body, _ := env.get(t, path)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, `value="Hello"`)
	assertContains(t, body, "World")

	status, body, _ = env.post(t, path, url.Values{"title": {""}, "content": {"Changed"}})
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, "This field is required.")
	assertContains(t, body, "Changed")

	stored, err := env.manager.ArticleStore.GetArticleByID(context.Background(), article.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello", stored.Title(); e != g {
		t.Errorf("stored.Title(): expected '%v', got '%v'", e, g)
	}

	status, _, res := env.post(t, path, url.Values{"title": {"Hello2"}, "content": {"World"}})
	if e, g := http.StatusSeeOther, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	readPath := "/articleRead/" + article.ID().String() + "/"

	if e, g := readPath, res.Header.Get("Location"); e != g {
		t.Errorf("Location: expected '%v', got '%v'", e, g)
	}

	_, body, _ = env.get(t, readPath)
	assertContains(t, body, "Article updated")
	assertContains(t, body, "Hello2")

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		var status int
		if method == http.MethodGet {
			status, _, _ = env.get(t, "/articleUpdate/9999/")
		} else {
			status, _, _ = env.post(t, "/articleUpdate/9999/", url.Values{})
		}

		if e, g := http.StatusNotFound, status; e != g {
			t.Errorf("%s unknown article: expected status %v, got %v", method, e, g)
		}
	}
}

func TestArticleDelete(t *testing.T) {
	env := newTestEnv(t)

	article := env.createArticle(t, "Hello", "World")
	path := "/articleDelete/" + article.ID().String() + "/"

	status, _, res := env.get(t, path)
	if e, g := http.StatusSeeOther, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	if e, g := "/", res.Header.Get("Location"); e != g {
		t.Errorf("Location: expected '%v', got '%v'", e, g)
	}

	if e, g := int64(1), env.count(t); e != g {
		t.Errorf("count: expected %v, got %v", e, g)
	}

	// The identifier is never checked on GET
	status, _, _ = env.get(t, "/articleDelete/9999/")
	if e, g := http.StatusSeeOther, status; e != g {
		t.Errorf("status: expected %v, got %v", e, g)
	}

	status, _, _ = env.post(t, "/articleDelete/9999/", url.Values{})
	if e, g := http.StatusNotFound, status; e != g {
		t.Errorf("status: expected %v, got %v", e, g)
	}

	status, _, _ = env.post(t, path, url.Values{})
	if e, g := http.StatusSeeOther, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	_, body, _ := env.get(t, "/")
	assertContains(t, body, "Article deleted")

	if _, err := env.manager.ArticleStore.GetArticleByID(context.Background(), article.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected port.ErrNotFound, got '%+v'", err)
	}

	status, _, _ = env.get(t, "/articleRead/"+article.ID().String()+"/")
	if e, g := http.StatusNotFound, status; e != g {
		t.Errorf("status: expected %v, got %v", e, g)
	}
}

func TestArticleSearchPage(t *testing.T) {
	env := newTestEnv(t)

	env.createArticle(t, "Hello", "World")
	env.createArticle(t, "Gopher", "Concurrency")

	status, body, _ := env.get(t, "/articleSearch/?searchTerm=wor")
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %v, got %v", e, g)
	}

	assertContains(t, body, "Hello")
	assertNotContains(t, body, "Gopher")
	assertContains(t, body, `value="wor"`)

	_, body, _ = env.get(t, "/articleSearch/?searchTerm=absent")
	assertContains(t, body, "No article matches your search.")

	_, body, _ = env.get(t, "/articleSearch/")
	assertContains(t, body, "Hello")
	assertContains(t, body, "Gopher")
}

func TestScenario(t *testing.T) {
	env := newTestEnv(t)

	env.post(t, "/articleCreate/", url.Values{"title": {"Hello"}, "content": {"World"}})

	if e, g := int64(1), env.count(t); e != g {
		t.Fatalf("count: expected %v, got %v", e, g)
	}

	articles, err := env.manager.SearchArticles(context.Background(), "")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	id := articles[0].ID().String()

	if status, _, _ := env.post(t, "/articleUpdate/"+id+"/", url.Values{"title": {"Hello2"}, "content": {"World"}}); status != http.StatusSeeOther {
		t.Fatalf("update status: expected %v, got %v", http.StatusSeeOther, status)
	}

	_, body, _ := env.get(t, "/articleSearch/?searchTerm=wor")
	assertContains(t, body, "Hello2")

	if status, _, _ := env.post(t, "/articleDelete/"+id+"/", url.Values{}); status != http.StatusSeeOther {
		t.Fatalf("delete status: expected %v, got %v", http.StatusSeeOther, status)
	}

	if status, _, _ := env.get(t, "/articleRead/"+id+"/"); status != http.StatusNotFound {
		t.Errorf("read status: expected %v, got %v", http.StatusNotFound, status)
	}
}
