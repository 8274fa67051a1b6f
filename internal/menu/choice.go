package menu

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/clubhouse/internal/errors"
)

// Choice is a menu selection code.
type Choice int

// Menu codes. The gap before ChoiceExit is part of the established menu.
const (
	ChoiceCreateProfessional Choice = 1
	ChoiceCreateAmateur      Choice = 2
	ChoiceAddPlayer          Choice = 3
	ChoiceRemovePlayer       Choice = 4
	ChoiceDisplayTeams       Choice = 5
	ChoiceSetStatistics      Choice = 6
	ChoiceExit               Choice = 9
)

// Choices lists every valid selection in menu order.
var Choices = []Choice{
	ChoiceCreateProfessional,
	ChoiceCreateAmateur,
	ChoiceAddPlayer,
	ChoiceRemovePlayer,
	ChoiceDisplayTeams,
	ChoiceSetStatistics,
	ChoiceExit,
}

// Label returns the menu text for the choice.
func (c Choice) Label() string {
	switch c {
	case ChoiceCreateProfessional:
		return "Create a new professional football team"
	case ChoiceCreateAmateur:
		return "Create a new amateur football team"
	case ChoiceAddPlayer:
		return "Add a player to a team"
	case ChoiceRemovePlayer:
		return "Remove a player from a team"
	case ChoiceDisplayTeams:
		return "Display all teams"
	case ChoiceSetStatistics:
		return "Set the numbers of victories, draws and losses"
	case ChoiceExit:
		return "Exit"
	default:
		return ""
	}
}

// operation is the name used in logs.
func (c Choice) operation() string {
	switch c {
	case ChoiceCreateProfessional, ChoiceCreateAmateur:
		return "create_team"
	case ChoiceAddPlayer:
		return "add_player"
	case ChoiceRemovePlayer:
		return "remove_player"
	case ChoiceDisplayTeams:
		return "display_teams"
	case ChoiceSetStatistics:
		return "set_statistics"
	case ChoiceExit:
		return "exit"
	default:
		return "unknown"
	}
}

// String returns "<code>. <label>".
func (c Choice) String() string {
	return strconv.Itoa(int(c)) + ". " + c.Label()
}

// ParseChoice interprets a menu token. Non-integer tokens and unknown codes
// both yield an error matching errors.ErrInvalidChoice.
func ParseChoice(token string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err == nil {
		c := Choice(n)
		if c.Label() != "" {
			return c, nil
		}
	}
	return 0, errors.NewValidationError("invalid choice").
		WithField("choice").
		WithValue(token).
		WithCause(errors.ErrInvalidChoice)
}
