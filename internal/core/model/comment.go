package model

import (
	"strconv"
)

type CommentID int64

func (id CommentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Comment interface {
	WithID[CommentID]
	WithLifecycle

	ArticleID() ArticleID
	Author() string
	Content() string
}
