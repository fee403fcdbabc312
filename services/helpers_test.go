package services

import (
	"github.com/TokDenis/post-store/types"
)

func examplePost() types.Post {
	return types.Post{
		Title: "Understanding JavaScript Closures",
		Author: types.Author{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		Content:       "A closure is...",
		DatePublished: "2024-10-09",
		Likes:         120,
		Comments: []types.Comment{
			{User: "John Doe", Message: "Great post!", Date: "2024-10-10"},
		},
		Tags: []string{"JavaScript", "Closures", "Functions"},
	}
}

func titled(title string) types.Post {
	p := examplePost()
	p.Title = title
	return p
}

func str(s string) *string { return &s }

func num(n int) *int { return &n }
