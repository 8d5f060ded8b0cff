package transcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/video-processor/internal/model"
)

// JobIDPrefix is prepended to every job ID
const JobIDPrefix = "transcode-"

// Transcoder is what the Service needs from a Runner
type Transcoder interface {
	Command(params model.TranscodeParameters) (string, []string, error)
	Run(ctx context.Context, params model.TranscodeParameters, onProgress func(Progress)) error
}

// Service runs transcode jobs in the background and reports their state.
type Service struct {
	runner   Transcoder
	logger   *slog.Logger
	jobs     map[string]*model.TranscodeJob
	cancels  map[string]context.CancelFunc
	jobsMu   sync.RWMutex
	onUpdate func(model.TranscodeJob) // callback for UI updates
	wg       sync.WaitGroup
}

// NewService creates a Service on top of runner
func NewService(runner Transcoder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		runner:  runner,
		logger:  logger,
		jobs:    make(map[string]*model.TranscodeJob),
		cancels: make(map[string]context.CancelFunc),
	}
}

// SetUpdateCallback sets the function called with a snapshot of a job
// after every state or progress change. It runs on the worker goroutine.
func (s *Service) SetUpdateCallback(callback func(model.TranscodeJob)) {
	s.jobsMu.Lock()
	s.onUpdate = callback
	s.jobsMu.Unlock()
}

// Submit validates params and starts a job for them. Parameters that would
// be rejected by BuildArgs are rejected here, before any job exists.
func (s *Service) Submit(params model.TranscodeParameters) (model.TranscodeJob, error) {
	rendered, _, err := s.runner.Command(params)
	if err != nil {
		return model.TranscodeJob{}, err
	}

	s.jobsMu.Lock()
	for _, job := range s.jobs {
		if job.Params.OutputPath == params.OutputPath && job.Status.IsActive() {
			s.jobsMu.Unlock()
			return model.TranscodeJob{}, fmt.Errorf("%w: %s is already being written by job %s",
				ErrOutputBusy, params.OutputPath, job.ID)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &model.TranscodeJob{
		ID:      generateJobID(),
		Params:  params,
		Status:  model.JobStatusPending,
		Command: rendered,
	}
	s.jobs[job.ID] = job
	s.cancels[job.ID] = cancel
	snapshot := *job
	s.jobsMu.Unlock()

	s.logger.Info("transcode job submitted", slog.String("job_id", job.ID), slog.String("input", params.InputPath))
	s.notifyUpdate(snapshot)

	s.wg.Add(1)
	go s.run(ctx, job.ID)

	return snapshot, nil
}

// Stop requests cancellation of an active job
func (s *Service) Stop(jobID string) error {
	s.jobsMu.Lock()
	job, exists := s.jobs[jobID]
	if !exists {
		s.jobsMu.Unlock()
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	if !job.Status.IsActive() {
		status := job.Status
		s.jobsMu.Unlock()
		return fmt.Errorf("%w: %s is %s", ErrJobNotActive, jobID, status)
	}
	job.Status = model.JobStatusStopping
	cancel := s.cancels[jobID]
	snapshot := *job
	s.jobsMu.Unlock()

	s.logger.Info("stopping transcode job", slog.String("job_id", jobID))
	s.notifyUpdate(snapshot)
	cancel()
	return nil
}

// GetJob returns a snapshot of a job by ID
func (s *Service) GetJob(jobID string) (model.TranscodeJob, bool) {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	job, exists := s.jobs[jobID]
	if !exists {
		return model.TranscodeJob{}, false
	}
	return *job, true
}

// Jobs returns snapshots of all jobs, oldest first
func (s *Service) Jobs() []model.TranscodeJob {
	s.jobsMu.RLock()
	jobs := make([]model.TranscodeJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, *job)
	}
	s.jobsMu.RUnlock()

	// uuid v7 IDs sort chronologically
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs
}

// Wait blocks until every submitted job has finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// Shutdown stops every active job and waits for the workers to exit
func (s *Service) Shutdown() {
	s.jobsMu.Lock()
	for id, job := range s.jobs {
		if job.Status.IsActive() {
			job.Status = model.JobStatusStopping
			s.cancels[id]()
		}
	}
	s.jobsMu.Unlock()
	s.wg.Wait()
}

func (s *Service) run(ctx context.Context, jobID string) {
	defer s.wg.Done()

	s.jobsMu.Lock()
	job := s.jobs[jobID]
	cancel := s.cancels[jobID]
	if job.Status == model.JobStatusPending {
		job.Status = model.JobStatusRunning
	}
	job.StartedAt = time.Now()
	params := job.Params
	snapshot := *job
	s.jobsMu.Unlock()
	s.notifyUpdate(snapshot)
	defer cancel()

	_, statErr := os.Stat(params.OutputPath)
	preexisting := statErr == nil

	err := s.runner.Run(ctx, params, func(p Progress) {
		s.jobsMu.Lock()
		job.Progress = p.Ratio
		job.Percent = p.Percent()
		job.Speed = p.Speed
		job.OutTimeSec = p.OutTime.Seconds()
		snapshot := *job
		s.jobsMu.Unlock()
		s.notifyUpdate(snapshot)
	})

	s.jobsMu.Lock()
	switch {
	case err != nil && ctx.Err() != nil:
		job.Status = model.JobStatusStopped
		if !preexisting {
			removePartialOutput(params.OutputPath)
		}
	case err != nil:
		job.Status = model.JobStatusError
		job.LastError = err.Error()
		if errors.Is(err, ErrExternalProcessFailed) && !preexisting {
			removePartialOutput(params.OutputPath)
		}
	default:
		job.Status = model.JobStatusCompleted
		job.Progress = 1.0
		job.Percent = 100
		if info, statErr := os.Stat(params.OutputPath); statErr == nil {
			job.OutputSize = info.Size()
		}
	}
	job.FinishedAt = time.Now()
	snapshot = *job
	s.jobsMu.Unlock()

	logger := s.logger.With(slog.String("job_id", jobID), slog.String("status", snapshot.Status.String()))
	if err != nil && snapshot.Status == model.JobStatusError {
		logger.Error("transcode job failed", slog.Any("error", err))
	} else {
		logger.Info("transcode job finished", slog.String("elapsed", snapshot.GetElapsedString()))
	}
	s.notifyUpdate(snapshot)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job model.TranscodeJob) {
	s.jobsMu.RLock()
	callback := s.onUpdate
	s.jobsMu.RUnlock()
	if callback != nil {
		callback(job)
	}
}

// removePartialOutput deletes an output the failed run created. Files that
// were on disk before the run are left alone.
func removePartialOutput(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

// generateJobID returns a time-ordered unique job ID
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
