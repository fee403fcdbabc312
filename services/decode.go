package services

import (
	"encoding/json"

	"github.com/TokDenis/post-store/types"
	"github.com/pkg/errors"
)

// DecodeDraft reads a post document. A field holding a value of the wrong
// JSON type is recorded in Draft.Mistyped, so Validate reports it in rule
// order rather than in document order. Only a body that is not a JSON
// object is an error here.
func DecodeDraft(b []byte) (types.Draft, error) {
	var doc map[string]json.RawMessage

	err := json.Unmarshal(b, &doc)
	if err != nil {
		return types.Draft{}, errors.Wrap(err, "decode post")
	}
	if doc == nil {
		return types.Draft{}, errors.New("decode post: not an object")
	}

	var d types.Draft
	// a failed Unmarshal can leave a half-set pointer behind, so each field
	// is decoded into a fresh value and kept only on success
	field := func(name string, v interface{}) bool {
		raw, ok := doc[name]
		if !ok {
			return false
		}
		if json.Unmarshal(raw, v) != nil {
			d.Mistyped = append(d.Mistyped, name)
			return false
		}
		return true
	}

	var title, content, date *string
	var likes *int
	var comments *[]types.Comment
	var tags *[]string

	if field("title", &title) {
		d.Title = title
	}
	d.Author = decodeAuthor(doc, &d)
	if field("content", &content) {
		d.Content = content
	}
	if field("datePublished", &date) {
		d.DatePublished = date
	}
	if field("likes", &likes) {
		d.Likes = likes
	}
	if field("comments", &comments) {
		d.Comments = comments
	}
	if field("tags", &tags) {
		d.Tags = tags
	}

	return d, nil
}

func decodeAuthor(doc map[string]json.RawMessage, d *types.Draft) *types.AuthorDraft {
	raw, ok := doc["author"]
	if !ok {
		return nil
	}

	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil {
		d.Mistyped = append(d.Mistyped, "author")
		return nil
	}
	if fields == nil {
		return nil
	}

	str := func(name string) *string {
		raw, ok := fields[name]
		if !ok {
			return nil
		}
		var v *string
		if json.Unmarshal(raw, &v) != nil {
			d.Mistyped = append(d.Mistyped, "author."+name)
			return nil
		}
		return v
	}

	return &types.AuthorDraft{Name: str("name"), Email: str("email")}
}
