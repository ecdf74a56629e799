package store

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

type storedJob struct {
	job       jobModel.Job
	expiresAt time.Time
}

// InMemoryJobStore is the fallback when Redis is offline. Entries expire like
// their Redis counterparts; expired jobs are dropped lazily on read and by Sweep.
type InMemoryJobStore struct {
	jobMutex *sync.RWMutex
	jobMap   map[string]storedJob
	ttl      time.Duration
	now      func() time.Time
	logger   *logger_i.Logger
}

func InitInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		jobMutex: new(sync.RWMutex),
		jobMap:   make(map[string]storedJob),
		ttl:      config.JobStoreTTL,
		now:      time.Now,
		logger:   logger_i.NewLogger("InMemJobStore"),
	}
}

func (store *InMemoryJobStore) SaveJob(ctx context.Context, jobToStore jobModel.Job) error {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	store.jobMap[jobToStore.Id] = storedJob{
		job:       jobToStore,
		expiresAt: store.now().Add(store.ttl),
	}
	store.logger.Debug("Saved job to store", "jobId", jobToStore.Id, "status", jobToStore.Status)
	return nil
}

func (store *InMemoryJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	store.jobMutex.RLock()
	entry, found := store.jobMap[jobId]
	store.jobMutex.RUnlock()

	if found && store.now().After(entry.expiresAt) {
		store.DeleteJob(ctx, jobId)
		return jobModel.Job{}, false
	}
	return entry.job, found
}

func (store *InMemoryJobStore) DeleteJob(ctx context.Context, jobID string) {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	delete(store.jobMap, jobID)
}

// Sweep drops every expired job and returns how many went.
func (store *InMemoryJobStore) Sweep() int {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	now := store.now()
	removed := 0
	for id, entry := range store.jobMap {
		if now.After(entry.expiresAt) {
			delete(store.jobMap, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (store *InMemoryJobStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				store.logger.Debug("Swept expired jobs", "count", n)
			}
		}
	}
}
