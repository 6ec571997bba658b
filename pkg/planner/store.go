package planner

import (
	"strings"
	"sync"
	"time"
)

// Persistence is the record store the planner writes through to. Loads that
// find no prior data (or data that fails to parse) return empty collections,
// never an error for absence.
type Persistence interface {
	Tasks() ([]*Task, error)
	SaveTasks([]*Task) error
	Goals() ([]*Goal, error)
	SaveGoals([]*Goal) error
	Reminders() ([]*Reminder, error)
	SaveReminders([]*Reminder) error
}

// Store owns the task, goal, and reminder collections for one user. It is
// the sole mutator of its collections; every mutation writes the full
// collection through to persistence before returning.
type Store struct {
	mu sync.Mutex
	p  Persistence

	tasks     []*Task
	goals     []*Goal
	reminders []*Reminder

	lastID int64
	now    func() time.Time
}

// New hydrates a Store from persistence. A read failure counts as "no prior
// data" and yields empty collections.
func New(p Persistence) (*Store, error) {
	s := &Store{p: p, now: time.Now}

	var err error
	if s.tasks, err = p.Tasks(); err != nil {
		s.tasks = nil
	}
	if s.goals, err = p.Goals(); err != nil {
		s.goals = nil
	}
	if s.reminders, err = p.Reminders(); err != nil {
		s.reminders = nil
	}

	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	for _, g := range s.goals {
		if g.ID > s.lastID {
			s.lastID = g.ID
		}
	}
	for _, r := range s.reminders {
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
	}

	return s, nil
}

// Reload rehydrates the collections from persistence, picking up writes made
// by another process. On failure the current snapshot stays in place.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.p.Tasks()
	if err != nil {
		return &PersistenceError{Op: "tasks", Err: err}
	}
	goals, err := s.p.Goals()
	if err != nil {
		return &PersistenceError{Op: "goals", Err: err}
	}
	reminders, err := s.p.Reminders()
	if err != nil {
		return &PersistenceError{Op: "reminders", Err: err}
	}
	s.tasks, s.goals, s.reminders = tasks, goals, reminders

	// lastID only ever moves forward, even if another process issued ids in
	// the past.
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	for _, g := range s.goals {
		if g.ID > s.lastID {
			s.lastID = g.ID
		}
	}
	for _, r := range s.reminders {
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
	}
	return nil
}

// nextID derives identifiers from wall-clock milliseconds, bumping past the
// last issued id so two mutations in the same millisecond stay unique.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// AddTask validates, appends, and persists a new task.
func (s *Store) AddTask(title, description string, due time.Time, priority Priority, subject string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if due.IsZero() {
		return nil, &ValidationError{Field: "due date"}
	}
	if priority == "" {
		priority = PriorityMedium
	}

	t := &Task{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
		DueDate:     Timestamp{Time: due},
		Priority:    priority,
		Subject:     subject,
		CreatedAt:   Timestamp{Time: s.now()},
	}
	s.tasks = append(s.tasks, t)

	if err := s.p.SaveTasks(s.tasks); err != nil {
		return t, &PersistenceError{Op: "tasks", Err: err}
	}
	return t, nil
}

// ToggleTask flips the completed flag on a task.
func (s *Store) ToggleTask(id int64) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	t.Completed = !t.Completed

	if err := s.p.SaveTasks(s.tasks); err != nil {
		return t, &PersistenceError{Op: "tasks", Err: err}
	}
	return t, nil
}

// DeleteTask removes a task. The caller is responsible for any confirmation
// prompt before destructive operations.
func (s *Store) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return &NotFoundError{Kind: "task", ID: id}
	}
	s.tasks = kept

	if err := s.p.SaveTasks(s.tasks); err != nil {
		return &PersistenceError{Op: "tasks", Err: err}
	}
	return nil
}

// AddGoal validates, appends, and persists a new goal. Progress is clamped
// to [0,100] at creation.
func (s *Store) AddGoal(title, description string, target time.Time, progress int) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if target.IsZero() {
		return nil, &ValidationError{Field: "target date"}
	}

	g := &Goal{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
		TargetDate:  Timestamp{Time: target},
		Progress:    ClampProgress(progress),
		CreatedAt:   Timestamp{Time: s.now()},
	}
	s.goals = append(s.goals, g)

	if err := s.p.SaveGoals(s.goals); err != nil {
		return g, &PersistenceError{Op: "goals", Err: err}
	}
	return g, nil
}

// SetGoalProgress sets a goal's progress to an absolute value, clamped to
// [0,100]. Callers wanting a delta compute the new value themselves.
func (s *Store) SetGoalProgress(id int64, progress int) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGoal(id)
	if g == nil {
		return nil, &NotFoundError{Kind: "goal", ID: id}
	}
	g.Progress = ClampProgress(progress)

	if err := s.p.SaveGoals(s.goals); err != nil {
		return g, &PersistenceError{Op: "goals", Err: err}
	}
	return g, nil
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.goals[:0]
	found := false
	for _, g := range s.goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return &NotFoundError{Kind: "goal", ID: id}
	}
	s.goals = kept

	if err := s.p.SaveGoals(s.goals); err != nil {
		return &PersistenceError{Op: "goals", Err: err}
	}
	return nil
}

// AddReminder validates, appends, and persists a new reminder.
func (s *Store) AddReminder(title string, due time.Time, message string) (*Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if due.IsZero() {
		return nil, &ValidationError{Field: "date and time"}
	}

	r := &Reminder{
		ID:        s.nextID(),
		Title:     title,
		Message:   message,
		DateTime:  Timestamp{Time: due},
		CreatedAt: Timestamp{Time: s.now()},
	}
	s.reminders = append(s.reminders, r)

	if err := s.p.SaveReminders(s.reminders); err != nil {
		return r, &PersistenceError{Op: "reminders", Err: err}
	}
	return r, nil
}

// TriggerDueReminders flips the triggered flag on every pending reminder
// whose due time has passed, persists once, and returns the newly triggered
// reminders in collection order. A reminder triggers at most once.
func (s *Store) TriggerDueReminders(now time.Time) ([]*Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fired []*Reminder
	for _, r := range s.reminders {
		if r.Triggered || r.DateTime.After(now) {
			continue
		}
		r.Triggered = true
		fired = append(fired, r)
	}
	if len(fired) == 0 {
		return nil, nil
	}

	if err := s.p.SaveReminders(s.reminders); err != nil {
		return fired, &PersistenceError{Op: "reminders", Err: err}
	}
	return fired, nil
}

// Tasks returns a snapshot of the task collection in insertion order.
func (s *Store) Tasks() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Goals returns a snapshot of the goal collection in insertion order.
func (s *Store) Goals() []*Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Reminders returns a snapshot of the reminder collection in insertion order.
func (s *Store) Reminders() []*Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

func (s *Store) findTask(id int64) *Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) findGoal(id int64) *Goal {
	for _, g := range s.goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}
