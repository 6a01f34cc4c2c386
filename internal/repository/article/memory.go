package article

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"newswire/internal/domain"

	"github.com/google/uuid"
)

// memoryRepo mirrors the Postgres contract for environments without a
// configured database. All state is guarded by a single RWMutex.
type memoryRepo struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
	seq      map[string]int64
	nextSeq  int64
}

func NewMemory() Repository {
	return &memoryRepo{
		articles: make(map[string]domain.Article),
		seq:      make(map[string]int64),
	}
}

func (r *memoryRepo) List(_ context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if !matches(a, f) {
			continue
		}
		result = append(result, cloneArticle(a))
	}
	// Insertion order breaks created-at ties so listings stay stable.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return r.seq[result[i].ID] > r.seq[result[j].ID]
	})
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneArticle(a)
	return &out, nil
}

func (r *memoryRepo) Create(_ context.Context, a domain.Article) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Views = 0
	a.Likes = 0
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Tags == nil {
		a.Tags = []string{}
	}

	stored := cloneArticle(a)
	r.articles[a.ID] = stored
	r.nextSeq++
	r.seq[a.ID] = r.nextSeq

	out := cloneArticle(stored)
	return &out, nil
}

func (r *memoryRepo) Update(_ context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Content != nil {
		a.Content = *upd.Content
	}
	if upd.Excerpt != nil {
		a.Excerpt = *upd.Excerpt
	}
	if upd.Author != nil {
		a.Author = *upd.Author
	}
	if upd.AuthorTitle != nil {
		a.AuthorTitle = *upd.AuthorTitle
	}
	if upd.AuthorImage != nil {
		a.AuthorImage = *upd.AuthorImage
	}
	if upd.Category != nil {
		a.Category = *upd.Category
	}
	if upd.Tags != nil {
		a.Tags = append([]string(nil), *upd.Tags...)
	}
	if upd.ImageURL != nil {
		a.ImageURL = *upd.ImageURL
	}
	if upd.Published != nil {
		a.Published = *upd.Published
	}
	if upd.Featured != nil {
		a.Featured = *upd.Featured
	}
	a.UpdatedAt = time.Now().UTC()
	r.articles[id] = a

	out := cloneArticle(a)
	return &out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return false, nil
	}
	delete(r.articles, id)
	delete(r.seq, id)
	return true, nil
}

func (r *memoryRepo) IncrementViews(ctx context.Context, id string) (int, error) {
	return r.increment(id, func(a *domain.Article) *int { return &a.Views })
}

func (r *memoryRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	return r.increment(id, func(a *domain.Article) *int { return &a.Likes })
}

func (r *memoryRepo) increment(id string, counter func(*domain.Article) *int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	c := counter(&a)
	*c++
	r.articles[id] = a
	return *c, nil
}

func matches(a domain.Article, f domain.ArticleFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Content), q) &&
			!strings.Contains(strings.ToLower(a.Author), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
		return false
	}
	if f.Published != nil && a.Published != *f.Published {
		return false
	}
	if f.Featured != nil && a.Featured != *f.Featured {
		return false
	}
	return true
}

func cloneArticle(a domain.Article) domain.Article {
	a.Tags = append([]string(nil), a.Tags...)
	return a
}
