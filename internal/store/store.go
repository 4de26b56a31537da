package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"promptstack-backend/internal/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Error kinds surfaced by the store. Callers distinguish them with errors.Is;
// the HTTP layer maps them to 400/404/409.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

const (
	promptCacheKeyPrefix = "prompt:id:"
	promptCacheDuration  = 24 * time.Hour
)

// Store owns all persistent prompt state. One Store is constructed per
// process (or per test) and passed by reference; there is no package-level
// database handle.
type Store struct {
	db  *gorm.DB
	rdb *redis.Client // optional read cache, nil disables caching
}

func NewStore(db *gorm.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func (s *Store) cacheKey(id uint) string {
	return fmt.Sprintf("%s%d", promptCacheKeyPrefix, id)
}

func (s *Store) cacheGetPrompt(id uint) *models.Prompt {
	if s.rdb == nil {
		return nil
	}
	val, err := s.rdb.Get(context.Background(), s.cacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var prompt models.Prompt
	if err := json.Unmarshal([]byte(val), &prompt); err != nil {
		return nil
	}
	return &prompt
}

func (s *Store) cacheSetPrompt(prompt *models.Prompt) {
	if s.rdb == nil {
		return
	}
	if data, err := json.Marshal(prompt); err == nil {
		s.rdb.Set(context.Background(), s.cacheKey(prompt.ID), data, promptCacheDuration)
	}
}

func (s *Store) invalidatePrompt(ids ...uint) {
	if s.rdb == nil || len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.cacheKey(id))
	}
	s.rdb.Del(context.Background(), keys...)
}

// isUniqueViolation reports whether err came from a uniqueness constraint.
// GORM translates these for some drivers; the sqlite driver may also surface
// the raw constraint message.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
