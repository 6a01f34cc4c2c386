package comment

import (
	"context"
	"sort"
	"sync"
	"time"

	"newswire/internal/domain"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu       sync.RWMutex
	comments map[string]domain.Comment
	seq      map[string]int64
	nextSeq  int64
}

func NewMemory() Repository {
	return &memoryRepo{
		comments: make(map[string]domain.Comment),
		seq:      make(map[string]int64),
	}
}

func (r *memoryRepo) ListByArticle(_ context.Context, articleID string) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return r.seq[result[i].ID] > r.seq[result[j].ID]
	})
	return result, nil
}

func (r *memoryRepo) Create(_ context.Context, c domain.Comment) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	r.comments[c.ID] = c
	r.nextSeq++
	r.seq[c.ID] = r.nextSeq

	out := c
	return &out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return false, nil
	}
	delete(r.comments, id)
	delete(r.seq, id)
	return true, nil
}
