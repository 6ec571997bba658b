package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/studyplan/pkg/planner"
)

var (
	// ErrUnknownEmail means no account exists for the given address.
	ErrUnknownEmail = errors.New("auth: no account found with this email")
	// ErrIncorrectPassword means the account exists but the password is wrong.
	ErrIncorrectPassword = errors.New("auth: incorrect password")
	// ErrDuplicateEmail means an account with this email already exists.
	ErrDuplicateEmail = errors.New("auth: an account with this email already exists")
	// ErrNotLoggedIn means no current session exists.
	ErrNotLoggedIn = errors.New("auth: not logged in")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// sessionTTL bounds non-remembered logins, standing in for the browser
// session lifetime of the web planner.
const sessionTTL = 24 * time.Hour

// Persistence stores account records and the current session.
type Persistence interface {
	Users() ([]*User, error)
	SaveUsers([]*User) error
	Session() (*Identity, bool, error)
	SaveSession(*Identity) error
	ClearSession() error
}

// Manager performs signup, login, and session resolution against a
// credential store.
type Manager struct {
	p   Persistence
	now func() time.Time
}

// NewManager returns a Manager over the given credential store.
func NewManager(p Persistence) *Manager {
	return &Manager{p: p, now: time.Now}
}

// SignupRequest carries the fields collected by the signup form.
type SignupRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	StudyLevel string
}

// Signup validates the request, stores a new account, and logs it in.
func (m *Manager) Signup(req SignupRequest) (*Identity, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, &planner.ValidationError{Field: "first name"}
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, &planner.ValidationError{Field: "last name"}
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.StudyLevel) == "" {
		return nil, &planner.ValidationError{Field: "study level"}
	}

	users, err := m.p.Users()
	if err != nil {
		return nil, fmt.Errorf("auth: load users: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		StudyLevel:   strings.TrimSpace(req.StudyLevel),
		PasswordHash: string(hash),
		CreatedAt:    planner.Timestamp{Time: m.now()},
	}
	users = append(users, user)
	if err := m.p.SaveUsers(users); err != nil {
		return nil, fmt.Errorf("auth: save users: %w", err)
	}

	return m.establishSession(user, true)
}

// Login checks credentials and establishes the current session. When
// remember is false the session expires after a day instead of persisting
// indefinitely.
func (m *Manager) Login(email, password string, remember bool) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &planner.ValidationError{Field: "password"}
	}

	users, err := m.p.Users()
	if err != nil {
		return nil, fmt.Errorf("auth: load users: %w", err)
	}

	var user *User
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			user = u
			break
		}
	}
	if user == nil {
		return nil, ErrUnknownEmail
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}

	return m.establishSession(user, remember)
}

// Logout clears the current session. Logging out while logged out is not an
// error.
func (m *Manager) Logout() error {
	return m.p.ClearSession()
}

// Current resolves the logged-in identity, reporting false when there is no
// session or a non-remembered session has expired.
func (m *Manager) Current() (*Identity, bool, error) {
	id, ok, err := m.p.Session()
	if err != nil || !ok {
		return nil, false, err
	}
	if !id.Remember && m.now().After(id.LoginTime.Add(sessionTTL)) {
		if err := m.p.ClearSession(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return id, true, nil
}

func (m *Manager) establishSession(user *User, remember bool) (*Identity, error) {
	id := &Identity{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		StudyLevel: user.StudyLevel,
		LoginTime:  planner.Timestamp{Time: m.now()},
		Remember:   remember,
	}
	if err := m.p.SaveSession(id); err != nil {
		return nil, fmt.Errorf("auth: save session: %w", err)
	}
	return id, nil
}

// ValidateEmail checks the address is present and plausibly formed.
func ValidateEmail(email string) error {
	if email == "" {
		return &planner.ValidationError{Field: "email"}
	}
	if !emailPattern.MatchString(email) {
		return &planner.ValidationError{Field: "email", Reason: "not a valid email address"}
	}
	return nil
}

// ValidatePassword enforces the signup password policy: at least eight
// characters with a lowercase letter, an uppercase letter, and a digit.
func ValidatePassword(password string) error {
	if password == "" {
		return &planner.ValidationError{Field: "password"}
	}
	if len(password) < 8 {
		return &planner.ValidationError{Field: "password", Reason: "must be at least 8 characters long"}
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !lower {
		return &planner.ValidationError{Field: "password", Reason: "must contain at least one lowercase letter"}
	}
	if !upper {
		return &planner.ValidationError{Field: "password", Reason: "must contain at least one uppercase letter"}
	}
	if !digit {
		return &planner.ValidationError{Field: "password", Reason: "must contain at least one number"}
	}
	return nil
}
