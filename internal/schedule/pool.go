package schedule

import (
	"sort"
	"sync"

	derr "github.com/tanvik/dayplan/internal/errors"
)

// DefaultName is the schedule every pool starts with. It cannot be
// deleted; adapters rely on one schedule always existing.
const DefaultName = "default"

// Pool is a named registry of schedules plus the "active" selection the
// adapter layer operates on. It is an explicit value passed to every
// entry point, not hidden process state.
type Pool struct {
	mu        sync.Mutex
	schedules map[string]*Schedule
	active    string
}

func NewPool() *Pool {
	return &Pool{
		schedules: map[string]*Schedule{DefaultName: New("Default Schedule")},
		active:    DefaultName,
	}
}

// Create registers a new schedule under name; duplicates are rejected.
func (p *Pool) Create(name string) (*Schedule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if name == "" {
		return nil, derr.NewValidation("name", "schedule name must not be empty")
	}
	if _, ok := p.schedules[name]; ok {
		return nil, derr.NewValidation("name", "schedule %q already exists", name)
	}
	s := New(name)
	p.schedules[name] = s
	return s, nil
}

func (p *Pool) Get(name string) (*Schedule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.schedules[name]
	if !ok {
		return nil, &derr.NotFoundError{Resource: "schedule", Name: name}
	}
	return s, nil
}

// Active returns the currently selected schedule.
func (p *Pool) Active() *Schedule {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.schedules[p.active]
}

func (p *Pool) ActiveName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Pool) SetActive(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.schedules[name]; !ok {
		return &derr.NotFoundError{Resource: "schedule", Name: name}
	}
	p.active = name
	return nil
}

// Delete removes a schedule. The default schedule is non-deletable.
// Deleting the active schedule falls back to the default.
func (p *Pool) Delete(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if name == DefaultName {
		return derr.NewValidation("name", "the %q schedule cannot be deleted", DefaultName)
	}
	if _, ok := p.schedules[name]; !ok {
		return &derr.NotFoundError{Resource: "schedule", Name: name}
	}
	delete(p.schedules, name)
	if p.active == name {
		p.active = DefaultName
	}
	return nil
}

// Names lists registered schedule names in sorted order.
func (p *Pool) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.schedules))
	for name := range p.schedules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
