package async

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRunParallel_Empty(t *testing.T) {
	if err := RunParallel(context.Background(), nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunParallel_AllSucceed(t *testing.T) {
	var count atomic.Int32
	tasks := []Task{
		{Name: "a", Func: func(_ context.Context) error { count.Add(1); return nil }},
		{Name: "b", Func: func(_ context.Context) error { count.Add(1); return nil }},
		{Name: "c", Func: func(_ context.Context) error { count.Add(1); return nil }},
	}

	if err := RunParallel(context.Background(), tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Load() != 3 {
		t.Errorf("expected 3 tasks to run, got %d", count.Load())
	}
}

func TestRunParallel_ReturnsNamedError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		{Name: "ok", Func: func(_ context.Context) error { return nil }},
		{Name: "broken", Func: func(_ context.Context) error { return boom }},
	}

	err := RunParallel(context.Background(), tasks)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("expected task name in error, got %q", err.Error())
	}
}

func TestRunParallel_WaitsForAllTasks(t *testing.T) {
	var count atomic.Int32
	tasks := []Task{
		{Name: "fail", Func: func(_ context.Context) error { return errors.New("fail") }},
		{Name: "slow", Func: func(_ context.Context) error { count.Add(1); return nil }},
	}

	if err := RunParallel(context.Background(), tasks); err == nil {
		t.Fatal("expected error")
	}
	if count.Load() != 1 {
		t.Errorf("expected slow task to complete, got %d", count.Load())
	}
}
