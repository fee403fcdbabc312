package services

import (
	"regexp"
	"strings"

	"github.com/TokDenis/post-store/types"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks candidate against the post rules and the titles already in
// the store. Rules are checked in a fixed order and the first broken one is
// returned. When isUpdate is set, keeping originalTitle is not a collision.
func (p *Posts) Validate(candidate types.Draft, isUpdate bool, originalTitle string) (types.Post, error) {
	p.m.RLock()
	defer p.m.RUnlock()

	return p.validate(candidate, isUpdate, originalTitle)
}

var requiredFields = []string{"title", "author", "content", "datePublished", "likes", "comments", "tags"}

func (p *Posts) validate(c types.Draft, isUpdate bool, originalTitle string) (types.Post, error) {
	for _, field := range requiredFields {
		if !c.Has(field) {
			return types.Post{}, invalid(field, RuleMissing)
		}
	}

	if c.IsMistyped("title") {
		return types.Post{}, invalid("title", RuleType)
	}
	title := *c.Title
	if strings.TrimSpace(title) == "" {
		return types.Post{}, invalid("title", RuleEmpty)
	}

	if !isUpdate || title != originalTitle {
		if p.indexOf(title) != -1 {
			return types.Post{}, invalid("title", RuleDuplicate)
		}
	}

	if c.IsMistyped("author") {
		return types.Post{}, invalid("author", RuleType)
	}
	if c.Author.Name == nil || c.IsMistyped("author.name") {
		return types.Post{}, invalid("author.name", RuleType)
	}
	if c.Author.Email == nil || c.IsMistyped("author.email") {
		return types.Post{}, invalid("author.email", RuleType)
	}

	if c.IsMistyped("content") {
		return types.Post{}, invalid("content", RuleType)
	}

	if c.IsMistyped("datePublished") {
		return types.Post{}, invalid("datePublished", RuleType)
	}
	if !datePattern.MatchString(*c.DatePublished) {
		return types.Post{}, invalid("datePublished", RuleFormat)
	}

	if c.IsMistyped("likes") {
		return types.Post{}, invalid("likes", RuleType)
	}
	if *c.Likes < 0 {
		return types.Post{}, invalid("likes", RuleNegative)
	}

	if c.IsMistyped("comments") {
		return types.Post{}, invalid("comments", RuleType)
	}
	if c.IsMistyped("tags") {
		return types.Post{}, invalid("tags", RuleType)
	}

	post := types.Post{
		Title:         title,
		Author:        types.Author{Name: *c.Author.Name, Email: *c.Author.Email},
		Content:       *c.Content,
		DatePublished: *c.DatePublished,
		Likes:         *c.Likes,
		Comments:      *c.Comments,
		Tags:          *c.Tags,
	}

	return post.Clone(), nil
}
