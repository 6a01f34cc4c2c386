package category

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"newswire/internal/domain"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	seq        map[string]int64
	nextSeq    int64
}

func NewMemory() Repository {
	return &memoryRepo{
		categories: make(map[string]domain.Category),
		seq:        make(map[string]int64),
	}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return r.seq[result[i].ID] > r.seq[result[j].ID]
	})
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Slug == slug {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return nil, fmt.Errorf("category name %q: %w", c.Name, domain.ErrConflict)
		}
		if existing.Slug == c.Slug {
			return nil, fmt.Errorf("category slug %q: %w", c.Slug, domain.ErrConflict)
		}
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	r.categories[c.ID] = c
	r.nextSeq++
	r.seq[c.ID] = r.nextSeq

	out := c
	return &out, nil
}

func (r *memoryRepo) Update(_ context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Slug != nil {
		c.Slug = *upd.Slug
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Color != nil {
		c.Color = *upd.Color
	}
	r.categories[id] = c

	out := c
	return &out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	delete(r.seq, id)
	return true, nil
}
