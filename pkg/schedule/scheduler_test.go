package schedule

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
)

type memory struct {
	tasks     []*planner.Task
	goals     []*planner.Goal
	reminders []*planner.Reminder

	failReminderWrites bool
}

func (m *memory) Tasks() ([]*planner.Task, error)           { return m.tasks, nil }
func (m *memory) Goals() ([]*planner.Goal, error)           { return m.goals, nil }
func (m *memory) Reminders() ([]*planner.Reminder, error)   { return m.reminders, nil }
func (m *memory) SaveTasks(v []*planner.Task) error         { m.tasks = v; return nil }
func (m *memory) SaveGoals(v []*planner.Goal) error         { m.goals = v; return nil }
func (m *memory) SaveReminders(v []*planner.Reminder) error {
	if m.failReminderWrites {
		return errors.New("disk full")
	}
	m.reminders = v
	return nil
}

func TestNewDefaultsInterval(t *testing.T) {
	store, err := planner.New(&memory{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	s := New(store, 0)
	if s.interval != DefaultInterval {
		t.Fatalf("expected default interval %v, got %v", DefaultInterval, s.interval)
	}
}

func TestCheckNowFiresOnce(t *testing.T) {
	store, err := planner.New(&memory{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	now := time.Now()
	due, err := store.AddReminder("exam", now.Add(-time.Minute), "room 204")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, err := store.AddReminder("later", now.Add(time.Hour), ""); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	s := New(store, time.Minute)

	fired, err := s.CheckNow(now)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(fired))
	}
	if fired[0].ID != due.ID || fired[0].Title != "exam" || fired[0].Message != "room 204" {
		t.Fatalf("unexpected notification: %+v", fired[0])
	}

	fired, err = s.CheckNow(now.Add(time.Minute))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("a reminder fires at most once, got %d", len(fired))
	}
}

func TestCheckNowCollectionOrder(t *testing.T) {
	store, err := planner.New(&memory{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	now := time.Now()
	first, _ := store.AddReminder("first", now.Add(-2*time.Hour), "")
	second, _ := store.AddReminder("second", now.Add(-time.Hour), "")

	s := New(store, time.Minute)
	fired, err := s.CheckNow(now)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(fired) != 2 || fired[0].ID != first.ID || fired[1].ID != second.ID {
		t.Fatalf("notifications must follow collection order: %+v", fired)
	}
}

func TestRunReportsSweepErrors(t *testing.T) {
	mem := &memory{}
	store, err := planner.New(mem)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.AddReminder("due", time.Now().Add(-time.Minute), ""); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	mem.failReminderWrites = true

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	stderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = stderr }()

	ctx, cancel := context.WithCancel(context.Background())
	s := New(store, time.Hour)
	events := s.Run(ctx)

	// The notification still arrives; the failed write must not eat it.
	select {
	case n := <-events:
		if n.Title != "due" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a notification despite the write failure")
	}

	cancel()
	for range events {
	}

	os.Stderr = stderr
	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read stderr: %v", err)
	}
	if !strings.Contains(string(out), "schedule: sweep:") {
		t.Fatalf("expected the sweep failure on stderr, got %q", out)
	}
}

func TestRunSweepsImmediately(t *testing.T) {
	store, err := planner.New(&memory{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.AddReminder("due", time.Now().Add(-time.Minute), ""); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(store, time.Hour)
	events := s.Run(ctx)

	select {
	case n := <-events:
		if n.Title != "due" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected an immediate sweep on start")
	}

	cancel()
	if _, ok := <-events; ok {
		// Drain until close; the channel must close after cancellation.
		for range events {
		}
	}
}
