package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameArticleMutations          = "article_mutations_total"
	NameArticleValidationFailures = "article_validation_failures_total"
	NameTotalSearchRequests       = "total_search_requests"
	LabelOperation                = "operation"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

var ArticleMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameArticleMutations,
		Help:      "Successful article mutations, by operation",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)

var ArticleValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameArticleValidationFailures,
		Help:      "Rejected article submissions, by operation",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)

var TotalSearchRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSearchRequests,
		Help:      "Total search requests",
		Namespace: Namespace,
	},
)
