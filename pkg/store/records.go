package store

import (
	"fmt"
	"os"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/planner"
)

const (
	recordTasks     = "tasks"
	recordGoals     = "goals"
	recordReminders = "reminders"

	keyUsers   = "users"
	keySession = "session"
)

// UserRecords scopes the planner collections to one user id, so two accounts
// never share a task list. It satisfies planner.Persistence.
type UserRecords struct {
	p    Persistence
	user string
}

// ForUser returns the planner record set for the given user id.
func ForUser(p Persistence, userID string) *UserRecords {
	return &UserRecords{p: p, user: userID}
}

func (u *UserRecords) key(record string) string {
	return fmt.Sprintf("%s/%s", u.user, record)
}

// read hydrates a collection record. Absent or unreadable data counts as "no
// prior data": the planner starts empty rather than failing.
func (u *UserRecords) read(record string, v interface{}) {
	if _, err := u.p.Read(u.key(record), v); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", u.key(record), err)
	}
}

func (u *UserRecords) Tasks() ([]*planner.Task, error) {
	var tasks []*planner.Task
	u.read(recordTasks, &tasks)
	return tasks, nil
}

func (u *UserRecords) SaveTasks(tasks []*planner.Task) error {
	if tasks == nil {
		tasks = []*planner.Task{}
	}
	return u.p.Write(u.key(recordTasks), tasks)
}

func (u *UserRecords) Goals() ([]*planner.Goal, error) {
	var goals []*planner.Goal
	u.read(recordGoals, &goals)
	return goals, nil
}

func (u *UserRecords) SaveGoals(goals []*planner.Goal) error {
	if goals == nil {
		goals = []*planner.Goal{}
	}
	return u.p.Write(u.key(recordGoals), goals)
}

func (u *UserRecords) Reminders() ([]*planner.Reminder, error) {
	var reminders []*planner.Reminder
	u.read(recordReminders, &reminders)
	return reminders, nil
}

func (u *UserRecords) SaveReminders(reminders []*planner.Reminder) error {
	if reminders == nil {
		reminders = []*planner.Reminder{}
	}
	return u.p.Write(u.key(recordReminders), reminders)
}

// AccountRecords stores credential and session records. It satisfies
// auth.Persistence.
type AccountRecords struct {
	p Persistence
}

// ForAccounts returns the credential record set.
func ForAccounts(p Persistence) *AccountRecords {
	return &AccountRecords{p: p}
}

func (a *AccountRecords) Users() ([]*auth.User, error) {
	var users []*auth.User
	if _, err := a.p.Read(keyUsers, &users); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", keyUsers, err)
		return nil, nil
	}
	return users, nil
}

func (a *AccountRecords) SaveUsers(users []*auth.User) error {
	return a.p.Write(keyUsers, users)
}

func (a *AccountRecords) Session() (*auth.Identity, bool, error) {
	var id auth.Identity
	ok, err := a.p.Read(keySession, &id)
	if err != nil || !ok {
		return nil, false, err
	}
	return &id, true, nil
}

func (a *AccountRecords) SaveSession(id *auth.Identity) error {
	return a.p.Write(keySession, id)
}

func (a *AccountRecords) ClearSession() error {
	return a.p.Erase(keySession)
}
