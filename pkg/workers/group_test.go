package workers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type blockingWorker struct{ name string }

func (w *blockingWorker) Name() string { return w.name }

func (w *blockingWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

type failingWorker struct{ err error }

func (w *failingWorker) Name() string { return "failing" }

func (w *failingWorker) Start(_ context.Context) error { return w.err }

func TestGroupStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Group{&blockingWorker{name: "a"}, &blockingWorker{name: "b"}}.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("group did not stop after cancel")
	}
}

func TestGroupWorkerFailureCancelsTheRest(t *testing.T) {
	boom := errors.New("boom")

	err := Group{&blockingWorker{name: "a"}, &failingWorker{err: boom}}.Start(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error %v does not wrap the worker failure", err)
	}
	if !strings.Contains(err.Error(), "failing") {
		t.Errorf("error %v does not name the failed worker", err)
	}
}
