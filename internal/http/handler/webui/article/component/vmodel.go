package component

import (
	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/service"
	commonComp "github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/bornholm/blog/internal/validation"
)

type ArticleListPageVModel struct {
	Layout  commonComp.LayoutVModel
	Entries []*service.ArticleEntry
}

type ArticleReadPageVModel struct {
	Layout commonComp.LayoutVModel
	Entry  *service.ArticleEntry
}

type ArticleSearchPageVModel struct {
	Layout     commonComp.LayoutVModel
	SearchTerm string
	Results    []model.PersistedArticle
}

// ArticleFormVModel holds the submitted values and the errors attached to them.
type ArticleFormVModel struct {
	Title   string
	Content string
	Errors  validation.Errors
}

type ArticleFormPageVModel struct {
	Layout      commonComp.LayoutVModel
	Heading     string
	Action      string
	SubmitLabel string
	// Article is nil when creating a new article
	Article model.PersistedArticle
	Form    ArticleFormVModel
	// MaxTitleLength bounds the title input, 0 means unbounded
	MaxTitleLength int
}
