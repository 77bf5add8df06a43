package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"thinkquest_backend/internal/model"
	"thinkquest_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const problemCacheTTL = 10 * time.Minute

// ProblemStore is the persistence slice behind the catalog.
type ProblemStore interface {
	FindAll() ([]model.Problem, error)
	FindByID(id uint) (*model.Problem, error)
	FindPersonas(problemID uint) ([]model.Persona, error)
}

// ProblemService serves the problem and persona catalog with a Redis
// cache in front. The catalog is seeded once and rarely changes, so a
// short TTL is plenty.
type ProblemService struct {
	store ProblemStore
	redis *redis.Client
}

func NewProblemService(store ProblemStore, rdb *redis.Client) *ProblemService {
	return &ProblemService{store: store, redis: rdb}
}

func (s *ProblemService) List(ctx context.Context) ([]model.Problem, error) {
	const key = "problems:all"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Result(); err == nil {
			var problems []model.Problem
			if json.Unmarshal([]byte(cached), &problems) == nil {
				return problems, nil
			}
		}
	}

	problems, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(problems); err == nil {
			s.redis.Set(ctx, key, data, problemCacheTTL)
		}
	}
	return problems, nil
}

func (s *ProblemService) Get(ctx context.Context, id uint) (*model.Problem, error) {
	key := fmt.Sprintf("problems:%d", id)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Result(); err == nil {
			var problem model.Problem
			if json.Unmarshal([]byte(cached), &problem) == nil {
				return &problem, nil
			}
		}
	}

	problem, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(problem); err == nil {
			s.redis.Set(ctx, key, data, problemCacheTTL)
		}
	}
	return problem, nil
}

func (s *ProblemService) Personas(ctx context.Context, problemID uint) ([]model.Persona, error) {
	if _, err := s.Get(ctx, problemID); err != nil {
		return nil, err
	}
	return s.store.FindPersonas(problemID)
}
