package menu

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/clubhouse/internal/errors"
	"github.com/Iron-Ham/clubhouse/internal/team"
)

// field is one prompted input of an operation.
type field struct {
	name   string
	prompt string
}

var (
	fieldTeamName     = field{"team name", "Enter team name: "}
	fieldCoach        = field{"coach name", "Enter coach name: "}
	fieldStadium      = field{"stadium name", "Enter stadium name: "}
	fieldTeamID       = field{"team ID", "Enter team ID: "}
	fieldPlayerName   = field{"player name", "Enter player name: "}
	fieldPlayerNumber = field{"player number", "Enter player number: "}
	fieldWins         = field{"wins", "Enter number of wins: "}
	fieldLosses       = field{"losses", "Enter number of losses: "}
	fieldDraws        = field{"draws", "Enter number of draws: "}
)

// readFields prompts for and reads every field before anything is parsed, so
// a bad value never leaves later tokens to be mistaken for a menu choice.
func (l *Loop) readFields(fields ...field) ([]string, error) {
	values := make([]string, len(fields))
	for i, f := range fields {
		l.prompt(f.prompt)
		v, err := l.in.next(f.name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// parseInt converts a numeric field, reporting the field and offending text.
func parseInt(f field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewValidationError("expected an integer").
			WithField(f.name).
			WithValue(value).
			WithCause(errors.ErrInvalidNumber)
	}
	return n, nil
}

func (l *Loop) createTeam(kind team.Kind) error {
	values, err := l.readFields(fieldTeamName, fieldCoach, fieldStadium)
	if err != nil {
		return err
	}

	id := l.reg.CreateTeam(kind, team.Info{
		Name:    values[0],
		Coach:   values[1],
		Stadium: values[2],
	})
	l.println(l.styles.Success.Render(fmt.Sprintf("Created team %d", id)))
	return nil
}

func (l *Loop) addPlayer() error {
	values, err := l.readFields(fieldTeamID, fieldPlayerName, fieldPlayerNumber)
	if err != nil {
		return err
	}

	id, err := parseInt(fieldTeamID, values[0])
	if err != nil {
		return err
	}
	number, err := parseInt(fieldPlayerNumber, values[2])
	if err != nil {
		return err
	}

	if err := l.reg.AddPlayer(id, values[1], number); err != nil {
		return err
	}
	l.println(l.styles.Success.Render(fmt.Sprintf("Added %s (%d) to team %d", values[1], number, id)))
	return nil
}

func (l *Loop) removePlayer() error {
	values, err := l.readFields(fieldTeamID, fieldPlayerName)
	if err != nil {
		return err
	}

	id, err := parseInt(fieldTeamID, values[0])
	if err != nil {
		return err
	}

	t, err := l.reg.Get(id)
	if err != nil {
		return err
	}
	_, onRoster := t.Number(values[1])

	if err := l.reg.RemovePlayer(id, values[1]); err != nil {
		return err
	}
	if onRoster {
		l.println(l.styles.Success.Render(fmt.Sprintf("Removed %s from team %d", values[1], id)))
	} else {
		l.println(l.styles.Label.Render(fmt.Sprintf("%s is not on team %d", values[1], id)))
	}
	return nil
}

func (l *Loop) setStatistics() error {
	values, err := l.readFields(fieldTeamID, fieldWins, fieldLosses, fieldDraws)
	if err != nil {
		return err
	}

	id, err := parseInt(fieldTeamID, values[0])
	if err != nil {
		return err
	}
	var counts [3]int
	for i, f := range []field{fieldWins, fieldLosses, fieldDraws} {
		if counts[i], err = parseInt(f, values[i+1]); err != nil {
			return err
		}
	}

	stats := team.Statistics{Wins: counts[0], Losses: counts[1], Draws: counts[2]}
	if err := l.reg.SetStatistics(id, stats); err != nil {
		return err
	}
	l.println(l.styles.Success.Render(fmt.Sprintf("Updated team %d record to %s", id, stats)))
	return nil
}
