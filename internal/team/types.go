package team

import "fmt"

// Kind tags a team as professional or amateur. It is informational only:
// both kinds behave identically.
type Kind int

const (
	// KindProfessional marks a professional club.
	KindProfessional Kind = iota + 1
	// KindAmateur marks an amateur club.
	KindAmateur
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindProfessional:
		return "professional"
	case KindAmateur:
		return "amateur"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsValid returns true if this is a recognized kind value.
func (k Kind) IsValid() bool {
	return k == KindProfessional || k == KindAmateur
}

// Info carries the identity fields collected when a team is created.
// No field is validated; empty strings are allowed.
type Info struct {
	Name    string
	Coach   string
	Stadium string
}

// Statistics is a team's win/loss/draw record.
type Statistics struct {
	Wins   int
	Losses int
	Draws  int
}

// Played returns the number of matches the record accounts for.
func (s Statistics) Played() int {
	return s.Wins + s.Losses + s.Draws
}

// String formats the record as W-L-D.
func (s Statistics) String() string {
	return fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Draws)
}
