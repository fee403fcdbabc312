package services

import (
	"sync"
)

// Stats counts post views by title.
type Stats struct {
	viewsChan chan string
	views     map[string]int64
	viewsM    sync.RWMutex
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewStats() *Stats {
	s := Stats{
		viewsChan: make(chan string, 1000),
		views:     make(map[string]int64),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go s.viewsCollector()

	return &s
}

// CountView records a view without blocking the caller. Views arriving while
// the buffer is full or after Close are dropped.
func (s *Stats) CountView(title string) {
	select {
	case <-s.quit:
	case s.viewsChan <- title:
	default:
	}
}

func (s *Stats) Views(title string) int64 {
	s.viewsM.RLock()
	defer s.viewsM.RUnlock()

	return s.views[title]
}

func (s *Stats) Forget(title string) {
	s.viewsM.Lock()
	delete(s.views, title)
	s.viewsM.Unlock()
}

func (s *Stats) ForgetAll() {
	s.viewsM.Lock()
	s.views = make(map[string]int64)
	s.viewsM.Unlock()
}

func (s *Stats) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
	})
}

func (s *Stats) viewsCollector() {
	defer close(s.done)

	for {
		select {
		case title := <-s.viewsChan:
			s.viewsM.Lock()
			s.views[title]++
			s.viewsM.Unlock()
		case <-s.quit:
			return
		}
	}
}
