package common

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/blog/internal/core/port"
	"github.com/bornholm/blog/internal/http/handler/webui/common/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type WithErrorLinks interface {
	error
	Links() []component.LinkItem
}

var ErrNotFound = NewError("not found", "The requested page could not be found.", http.StatusNotFound)

func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	if errors.Is(err, port.ErrNotFound) {
		err = ErrNotFound
	}

	vmodel := component.ErrorPageVModel{
		Layout: component.NewLayoutVModel(ctx, ""),
	}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = http.StatusText(statusCode)
	}

	vmodel.Layout.Title = http.StatusText(statusCode)

	var errLinks WithErrorLinks
	if errors.As(err, &errLinks) {
		vmodel.Links = errLinks.Links()
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(ctx, "unexpected error", slogx.Error(errors.WithStack(err)))
	}

	errorPage := component.ErrorPage(vmodel)

	templ.Handler(errorPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
