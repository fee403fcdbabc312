package services

import (
	"sync"

	"github.com/TokDenis/post-store/types"
)

// Posts is an ordered in-memory collection of posts with unique titles.
// It is safe for concurrent use; every check-then-write runs under one lock.
type Posts struct {
	posts []types.Post
	m     sync.RWMutex
}

func NewPosts() *Posts {
	return &Posts{}
}

// Add validates post and appends it to the end of the collection.
func (p *Posts) Add(post types.Draft) (types.Post, error) {
	p.m.Lock()
	defer p.m.Unlock()

	stored, err := p.validate(post, false, "")
	if err != nil {
		return types.Post{}, err
	}

	p.posts = append(p.posts, stored)

	return stored.Clone(), nil
}

// GetAll returns a copy of every post in insertion order.
func (p *Posts) GetAll() []types.Post {
	p.m.RLock()
	defer p.m.RUnlock()

	posts := make([]types.Post, len(p.posts))
	for i, post := range p.posts {
		posts[i] = post.Clone()
	}
	return posts
}

func (p *Posts) GetByTitle(title string) (types.Post, error) {
	p.m.RLock()
	defer p.m.RUnlock()

	i := p.indexOf(title)
	if i == -1 {
		return types.Post{}, notFound(title)
	}

	return p.posts[i].Clone(), nil
}

// Update merges updates over the post stored under title and replaces it if
// the result is valid. On error the stored post is left as it was.
func (p *Posts) Update(title string, updates types.Draft) (types.Post, error) {
	p.m.Lock()
	defer p.m.Unlock()

	i := p.indexOf(title)
	if i == -1 {
		return types.Post{}, notFound(title)
	}

	candidate := types.DraftOf(p.posts[i]).Merge(updates)

	updated, err := p.validate(candidate, true, title)
	if err != nil {
		return types.Post{}, err
	}

	p.posts[i] = updated

	return updated.Clone(), nil
}

// AppendComments adds comments to the end of the post's comment list.
func (p *Posts) AppendComments(title string, comments ...types.Comment) (types.Post, error) {
	p.m.Lock()
	defer p.m.Unlock()

	i := p.indexOf(title)
	if i == -1 {
		return types.Post{}, notFound(title)
	}

	p.posts[i].Comments = append(p.posts[i].Comments, comments...)

	return p.posts[i].Clone(), nil
}

// Delete removes the post stored under title and returns it.
func (p *Posts) Delete(title string) (types.Post, error) {
	p.m.Lock()
	defer p.m.Unlock()

	i := p.indexOf(title)
	if i == -1 {
		return types.Post{}, notFound(title)
	}

	deleted := p.posts[i]
	copy(p.posts[i:], p.posts[i+1:])
	p.posts[len(p.posts)-1] = types.Post{}
	p.posts = p.posts[:len(p.posts)-1]

	return deleted, nil
}

func (p *Posts) Len() int {
	p.m.RLock()
	defer p.m.RUnlock()

	return len(p.posts)
}

func (p *Posts) Reset() {
	p.m.Lock()
	p.posts = nil
	p.m.Unlock()
}

func (p *Posts) indexOf(title string) int {
	for i := range p.posts {
		if p.posts[i].Title == title {
			return i
		}
	}
	return -1
}
