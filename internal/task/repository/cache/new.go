package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-tracker/internal/model"
	"task-tracker/internal/task/repository"
	pkgLog "task-tracker/pkg/log"
)

const (
	defaultSize = 1024
	defaultTTL  = 5 * time.Minute
)

// Config sizes the read-through cache.
type Config struct {
	Size int
	TTL  time.Duration
}

type implRepository struct {
	next  repository.Repository
	tasks *expirable.LRU[int64, model.Task]
	l     pkgLog.Logger

	// gen is bumped by every write; a miss only fills the cache when no
	// write happened while it was reading next.
	mu  sync.Mutex
	gen uint64
}

// New wraps next with an in-process LRU keyed by task id.
// Only single-task lookups by id are cached; lists always hit next.
// Writes evict and never populate, so entries only come from reads.
func New(next repository.Repository, cfg Config, l pkgLog.Logger) repository.Repository {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	return &implRepository{
		next:  next,
		tasks: expirable.NewLRU[int64, model.Task](cfg.Size, nil, cfg.TTL),
		l:     l,
	}
}
