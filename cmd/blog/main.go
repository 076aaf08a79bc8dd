package main

import (
	"github.com/bornholm/blog/internal/command"
	"github.com/bornholm/blog/internal/command/article"
	"github.com/bornholm/blog/internal/command/comment"
	"github.com/bornholm/blog/internal/command/seed"
)

func main() {
	command.Main(
		"blog", "a blog administration tool",
		article.Command(),
		comment.Command(),
		seed.Command(),
	)
}
