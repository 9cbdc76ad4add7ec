package cache

import (
	"context"
	"sync"

	"github.com/podcastr/podcastr/pkg/model"
)

// Memory is a process local page store.
type Memory struct {
	lock  sync.RWMutex
	pages map[string]*model.Page
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{pages: make(map[string]*model.Page)}
}

func (m *Memory) Get(_ context.Context, slug string) (*model.Page, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	page, ok := m.pages[slug]
	if !ok {
		return nil, model.ErrNotFound
	}

	return page, nil
}

func (m *Memory) Set(_ context.Context, page *model.Page) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.pages[page.Slug] = page
	return nil
}

func (m *Memory) Delete(_ context.Context, slug string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.pages, slug)
	return nil
}

func (m *Memory) Walk(_ context.Context, cb func(page *model.Page) error) error {
	m.lock.RLock()
	pages := make([]*model.Page, 0, len(m.pages))
	for _, page := range m.pages {
		pages = append(pages, page)
	}
	m.lock.RUnlock()

	for _, page := range pages {
		if err := cb(page); err != nil {
			return err
		}
	}

	return nil
}

func (m *Memory) Close() error {
	return nil
}
