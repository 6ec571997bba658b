package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/planner"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestUserRecordsRoundTrip(t *testing.T) {
	p := load(t)
	records := ForUser(p, "user-a")

	due := planner.Timestamp{Time: time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)}
	tasks := []*planner.Task{
		{ID: 1, Title: "read", DueDate: due, Priority: planner.PriorityHigh, Subject: "math"},
		{ID: 2, Title: "review", DueDate: due, Priority: planner.PriorityLow, Completed: true},
	}
	goals := []*planner.Goal{
		{ID: 3, Title: "finish algebra", TargetDate: due, Progress: 40},
	}
	reminders := []*planner.Reminder{
		{ID: 4, Title: "exam", DateTime: due, Message: "room 204", Triggered: true},
	}

	if err := records.SaveTasks(tasks); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	if err := records.SaveGoals(goals); err != nil {
		t.Fatalf("save goals: %v", err)
	}
	if err := records.SaveReminders(reminders); err != nil {
		t.Fatalf("save reminders: %v", err)
	}

	// A second record set over the same store must see identical collections.
	again := ForUser(p, "user-a")

	gotTasks, err := again.Tasks()
	if err != nil {
		t.Fatalf("read tasks: %v", err)
	}
	if !reflect.DeepEqual(gotTasks, tasks) {
		t.Fatalf("tasks did not survive the round trip:\n got %+v\nwant %+v", gotTasks, tasks)
	}

	gotGoals, err := again.Goals()
	if err != nil {
		t.Fatalf("read goals: %v", err)
	}
	if !reflect.DeepEqual(gotGoals, goals) {
		t.Fatalf("goals did not survive the round trip:\n got %+v\nwant %+v", gotGoals, goals)
	}

	gotReminders, err := again.Reminders()
	if err != nil {
		t.Fatalf("read reminders: %v", err)
	}
	if !reflect.DeepEqual(gotReminders, reminders) {
		t.Fatalf("reminders did not survive the round trip:\n got %+v\nwant %+v", gotReminders, reminders)
	}
}

func TestUserRecordsEmptyWhenAbsent(t *testing.T) {
	p := load(t)
	records := ForUser(p, "nobody")

	tasks, err := records.Tasks()
	if err != nil {
		t.Fatalf("read tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestUserRecordsCorruptDataTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "user-a"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "user-a", "tasks"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	tasks, err := ForUser(p, "user-a").Tasks()
	if err != nil {
		t.Fatalf("corrupt data must hydrate as empty, got error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestUserRecordsIsolation(t *testing.T) {
	p := load(t)

	a := ForUser(p, "user-a")
	b := ForUser(p, "user-b")

	due := planner.Timestamp{Time: time.Now()}
	if err := a.SaveTasks([]*planner.Task{{ID: 1, Title: "mine", DueDate: due}}); err != nil {
		t.Fatalf("save tasks: %v", err)
	}

	tasks, err := b.Tasks()
	if err != nil {
		t.Fatalf("read tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("records must be scoped per user, got %d tasks", len(tasks))
	}

	keys := p.Keys(context.Background())
	if len(keys) != 1 || keys[0] != "user-a/tasks" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestAccountRecords(t *testing.T) {
	p := load(t)
	accounts := ForAccounts(p)

	if _, ok, err := accounts.Session(); err != nil || ok {
		t.Fatalf("expected no session, ok=%v err=%v", ok, err)
	}

	users := []*auth.User{{
		ID:        "u-1",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}
	if err := accounts.SaveUsers(users); err != nil {
		t.Fatalf("save users: %v", err)
	}
	got, err := accounts.Users()
	if err != nil {
		t.Fatalf("read users: %v", err)
	}
	if !reflect.DeepEqual(got, users) {
		t.Fatalf("users did not survive the round trip:\n got %+v\nwant %+v", got, users)
	}

	id := &auth.Identity{ID: "u-1", Email: "ada@example.com", Remember: true}
	if err := accounts.SaveSession(id); err != nil {
		t.Fatalf("save session: %v", err)
	}
	current, ok, err := accounts.Session()
	if err != nil || !ok {
		t.Fatalf("expected a session, ok=%v err=%v", ok, err)
	}
	if current.ID != "u-1" || !current.Remember {
		t.Fatalf("unexpected session: %+v", current)
	}

	if err := accounts.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if _, ok, _ := accounts.Session(); ok {
		t.Fatalf("expected session cleared")
	}

	// Clearing twice is fine.
	if err := accounts.ClearSession(); err != nil {
		t.Fatalf("clear absent session: %v", err)
	}
}

func TestStoreHydratesPlanner(t *testing.T) {
	p := load(t)
	records := ForUser(p, "user-a")

	first, err := planner.New(records)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	task, err := first.AddTask("read", "", time.Now().Add(time.Hour), planner.PriorityMedium, "math")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := first.AddGoal("algebra", "", time.Now().Add(24*time.Hour), 30); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	second, err := planner.New(ForUser(p, "user-a"))
	if err != nil {
		t.Fatalf("rehydrate store: %v", err)
	}
	if len(second.Tasks()) != 1 || second.Tasks()[0].ID != task.ID {
		t.Fatalf("expected hydrated task %d, got %+v", task.ID, second.Tasks())
	}
	if len(second.Goals()) != 1 || second.Goals()[0].Progress != 30 {
		t.Fatalf("expected hydrated goal, got %+v", second.Goals())
	}
}
