package types

import "strings"

type Post struct {
	Title         string    `json:"title"`
	Author        Author    `json:"author"`
	Content       string    `json:"content"`
	DatePublished string    `json:"datePublished"`
	Likes         int       `json:"likes"`
	Comments      []Comment `json:"comments"`
	Tags          []string  `json:"tags"`
}

type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Clone returns a copy that shares no slices with p.
func (p Post) Clone() Post {
	c := p
	if p.Comments != nil {
		c.Comments = make([]Comment, len(p.Comments))
		copy(c.Comments, p.Comments)
	}
	if p.Tags != nil {
		c.Tags = make([]string, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	return c
}

// Draft is a candidate post or a partial update. A nil field is absent
// unless it is listed in Mistyped: then it was present with a value of the
// wrong type.
type Draft struct {
	Title         *string      `json:"title,omitempty"`
	Author        *AuthorDraft `json:"author,omitempty"`
	Content       *string      `json:"content,omitempty"`
	DatePublished *string      `json:"datePublished,omitempty"`
	Likes         *int         `json:"likes,omitempty"`
	Comments      *[]Comment   `json:"comments,omitempty"`
	Tags          *[]string    `json:"tags,omitempty"`
	Mistyped      []string     `json:"-"` // json field paths, e.g. "author.name"
}

type AuthorDraft struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// DraftOf returns a draft with every field of p present.
func DraftOf(p Post) Draft {
	p = p.Clone()
	comments := p.Comments
	if comments == nil {
		comments = []Comment{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Draft{
		Title:         &p.Title,
		Author:        &AuthorDraft{Name: &p.Author.Name, Email: &p.Author.Email},
		Content:       &p.Content,
		DatePublished: &p.DatePublished,
		Likes:         &p.Likes,
		Comments:      &comments,
		Tags:          &tags,
	}
}

func (d Draft) IsMistyped(field string) bool {
	for _, f := range d.Mistyped {
		if f == field {
			return true
		}
	}
	return false
}

// Has reports whether field was present, with or without the right type.
func (d Draft) Has(field string) bool {
	if d.IsMistyped(field) {
		return true
	}
	switch field {
	case "title":
		return d.Title != nil
	case "author":
		return d.Author != nil
	case "content":
		return d.Content != nil
	case "datePublished":
		return d.DatePublished != nil
	case "likes":
		return d.Likes != nil
	case "comments":
		return d.Comments != nil
	case "tags":
		return d.Tags != nil
	}
	return false
}

// Merge overlays the present fields of patch on d. Author is replaced as a
// whole, not merged field by field.
func (d Draft) Merge(patch Draft) Draft {
	var mistyped []string
	for _, f := range d.Mistyped {
		if !patch.Has(topField(f)) {
			mistyped = append(mistyped, f)
		}
	}
	mistyped = append(mistyped, patch.Mistyped...)

	if patch.Has("title") {
		d.Title = patch.Title
	}
	if patch.Has("author") {
		d.Author = patch.Author
	}
	if patch.Has("content") {
		d.Content = patch.Content
	}
	if patch.Has("datePublished") {
		d.DatePublished = patch.DatePublished
	}
	if patch.Has("likes") {
		d.Likes = patch.Likes
	}
	if patch.Has("comments") {
		d.Comments = patch.Comments
	}
	if patch.Has("tags") {
		d.Tags = patch.Tags
	}
	d.Mistyped = mistyped
	return d
}

func topField(path string) string {
	if i := strings.IndexByte(path, '.'); i != -1 {
		return path[:i]
	}
	return path
}
