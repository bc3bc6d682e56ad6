package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type fakeJob struct {
	name    string
	started atomic.Bool
	stopped atomic.Bool
	err     error
}

func (f *fakeJob) Name() string            { return f.name }
func (f *fakeJob) Interval() time.Duration { return time.Minute }

func (f *fakeJob) Run(ctx context.Context) error {
	f.started.Store(true)
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	f.stopped.Store(true)
	return ctx.Err()
}

func newTestManager() *JobManager {
	return NewJobManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestJobManager_StartRunsRegisteredJobs(t *testing.T) {
	jm := newTestManager()

	job := &fakeJob{name: "settings_bridge"}
	jm.Register(job)
	jm.Start(context.Background())

	waitFor(t, func() bool { return job.started.Load() }, "job never started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jm.Shutdown(shutdownCtx)

	if !job.stopped.Load() {
		t.Error("job did not observe cancellation during shutdown")
	}
}

func TestJobManager_StartIsIdempotentPerJobName(t *testing.T) {
	jm := newTestManager()

	job := &fakeJob{name: "audit_prune"}
	jm.Register(job)

	ctx := context.Background()
	jm.Start(ctx)
	jm.Start(ctx)

	jm.mu.Lock()
	count := len(jm.cancelFuncs)
	jm.mu.Unlock()

	if count != 1 {
		t.Errorf("expected one tracked cancel func, got %d", count)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jm.Shutdown(shutdownCtx)
}

func TestJobManager_ShutdownWaitsForAllJobs(t *testing.T) {
	jm := newTestManager()

	first := &fakeJob{name: "first"}
	second := &fakeJob{name: "second"}
	jm.Register(first)
	jm.Register(second)
	jm.Start(context.Background())

	waitFor(t, func() bool { return first.started.Load() && second.started.Load() }, "jobs never started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jm.Shutdown(shutdownCtx)

	if !first.stopped.Load() || !second.stopped.Load() {
		t.Error("expected all jobs stopped after shutdown")
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
