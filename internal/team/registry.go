package team

import (
	"iter"
	"slices"
	"strconv"

	"github.com/Iron-Ham/clubhouse/internal/errors"
	"github.com/Iron-Ham/clubhouse/internal/event"
)

// Entry pairs a team ID with a team record.
type Entry struct {
	ID   int
	Team *Team
}

// Registry owns every team created during the process, keyed by an ID from
// its IDGenerator. Teams are never removed, so IDs are never reused.
//
// Registry is not safe for concurrent use; the interactive loop is its only caller.
type Registry struct {
	ids   *IDGenerator
	teams map[int]*Team
	order []int // ascending, since IDs are issued in increasing order
	bus   *event.Bus
}

// NewRegistry creates an empty Registry that draws IDs from ids.
// A nil ids gets a fresh generator starting at 0.
func NewRegistry(ids *IDGenerator, opts ...RegistryOption) *Registry {
	if ids == nil {
		ids = NewIDGenerator()
	}

	rc := &registryConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	return &Registry{
		ids:   ids,
		teams: make(map[int]*Team),
		bus:   rc.bus,
	}
}

// CreateTeam stores a new team and returns its ID. It always succeeds.
func (r *Registry) CreateTeam(kind Kind, info Info) int {
	id := r.ids.Next()
	r.teams[id] = New(kind, info)
	r.insertOrdered(id)

	r.publish(event.NewTeamCreatedEvent(id, info.Name, kind.String()))
	return id
}

// insertOrdered keeps order sorted even if a shared generator was advanced
// elsewhere.
func (r *Registry) insertOrdered(id int) {
	i, _ := slices.BinarySearch(r.order, id)
	r.order = slices.Insert(r.order, i, id)
}

// Get returns the stored team so callers can mutate it in place.
// A missing ID yields a NotFoundError matching errors.ErrTeamNotFound.
func (r *Registry) Get(id int) (*Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, errors.NewNotFoundError("team", strconv.Itoa(id)).WithCause(errors.ErrTeamNotFound)
	}
	return t, nil
}

// AddPlayer looks up the team and sets name's jersey number.
func (r *Registry) AddPlayer(id int, name string, number int) error {
	t, err := r.Get(id)
	if err != nil {
		return err
	}
	replaced := t.AddPlayer(name, number)

	r.publish(event.NewPlayerAddedEvent(id, name, number, replaced))
	return nil
}

// RemovePlayer looks up the team and removes name from its roster. An absent
// player is not an error; an absent team is.
func (r *Registry) RemovePlayer(id int, name string) error {
	t, err := r.Get(id)
	if err != nil {
		return err
	}
	existed := t.RemovePlayer(name)

	r.publish(event.NewPlayerRemovedEvent(id, name, existed))
	return nil
}

// SetStatistics looks up the team and replaces its record.
func (r *Registry) SetStatistics(id int, s Statistics) error {
	t, err := r.Get(id)
	if err != nil {
		return err
	}
	t.SetStatistics(s)

	r.publish(event.NewStatisticsUpdatedEvent(id, s.Wins, s.Losses, s.Draws))
	return nil
}

// All yields every team in ascending ID order. The yielded teams are the
// stored records, not copies.
func (r *Registry) All() iter.Seq2[int, *Team] {
	return func(yield func(int, *Team) bool) {
		for _, id := range r.order {
			if !yield(id, r.teams[id]) {
				return
			}
		}
	}
}

// Snapshot returns cloned teams in ascending ID order.
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, len(r.order))
	for id, t := range r.All() {
		out = append(out, Entry{ID: id, Team: t.Clone()})
	}
	return out
}

// Len returns the number of registered teams.
func (r *Registry) Len() int {
	return len(r.teams)
}

func (r *Registry) publish(e event.Event) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}
