package services

import (
	"errors"
	"sync"
	"time"

	"github.com/TokDenis/post-store/types"
	"github.com/rs/zerolog/log"
)

// Comments buffers new comments per post title and writes them to the store
// in batches.
type Comments struct {
	posts     *Posts
	buffer    map[string][]types.Comment // [title]
	bufferM   sync.Mutex
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewCommentsService(posts *Posts, every time.Duration) *Comments {
	c := Comments{
		posts:  posts,
		buffer: make(map[string][]types.Comment),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go c.serv(every)

	return &c
}

func (c *Comments) Consume(title string, msg types.Comment) {
	c.bufferM.Lock()
	c.buffer[title] = append(c.buffer[title], msg)
	c.bufferM.Unlock()
}

// Forget drops the comments still buffered for title.
func (c *Comments) Forget(title string) {
	c.bufferM.Lock()
	delete(c.buffer, title)
	c.bufferM.Unlock()
}

func (c *Comments) ForgetAll() {
	c.bufferM.Lock()
	c.buffer = make(map[string][]types.Comment)
	c.bufferM.Unlock()
}

// Pending returns how many comments are waiting for the next flush.
func (c *Comments) Pending() int {
	c.bufferM.Lock()
	defer c.bufferM.Unlock()

	var n int
	for _, comments := range c.buffer {
		n += len(comments)
	}
	return n
}

// Flush writes every buffered comment. Comments of a post that no longer
// exists are dropped; other failures stay buffered for the next flush.
func (c *Comments) Flush() {
	c.bufferM.Lock()
	defer c.bufferM.Unlock()

	for title, comments := range c.buffer {
		_, err := c.posts.AppendComments(title, comments...)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Error().Err(err).Str("title", title).Send()
				continue
			}
			log.Warn().Str("title", title).Int("comments", len(comments)).Msg("dropping comments of missing post")
		}
		delete(c.buffer, title)
	}
}

// Close stops the flush loop after a final flush.
func (c *Comments) Close() {
	c.closeOnce.Do(func() {
		close(c.quit)
		<-c.done
	})
}

func (c *Comments) serv(every time.Duration) {
	defer close(c.done)

	tic := time.NewTicker(every)
	defer tic.Stop()

	for {
		select {
		case <-tic.C:
			c.Flush()
		case <-c.quit:
			c.Flush()
			return
		}
	}
}
