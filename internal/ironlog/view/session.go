package view

import (
	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
)

type ExerciseGroup struct {
	Name   string
	Muscle string
	Sets   []SetRow
}

type CardioGroup struct {
	Activity string
	Title    string
	Icon     string
	Entries  []CardioRow
}

type SessionView struct {
	ID       int64
	Date     string
	Notes    string
	Calories string
	Groups   []ExerciseGroup
	Cardio   []CardioGroup
	// Empty is set when nothing was logged; templates render a placeholder instead.
	Empty bool
}

func NewExerciseGroups(sets []api.LoggedSet) []ExerciseGroup {
	groups := GroupSets(sets)
	views := make([]ExerciseGroup, 0, len(groups))
	for _, g := range groups {
		ev := ExerciseGroup{
			Name: g.Name,
			Sets: make([]SetRow, 0, len(g.Items)),
		}
		if g.Muscle != nil {
			ev.Muscle = *g.Muscle
		}
		for _, s := range g.Items {
			ev.Sets = append(ev.Sets, NewSetRow(s))
		}
		views = append(views, ev)
	}
	return views
}

func NewCardioGroups(entries []api.CardioEntry) []CardioGroup {
	groups := GroupCardio(entries)
	views := make([]CardioGroup, 0, len(groups))
	for _, g := range groups {
		at := api.ActivityType(g.Name)
		cv := CardioGroup{
			Activity: g.Name,
			Title:    ActivityTitle(at),
			Icon:     ActivityIcon(at),
			Entries:  make([]CardioRow, 0, len(g.Items)),
		}
		for _, c := range g.Items {
			cv.Entries = append(cv.Entries, NewCardioRow(c))
		}
		views = append(views, cv)
	}
	return views
}

// NewSessionView builds the view model for one session. A nil session
// yields an empty view.
func NewSessionView(s *api.SessionDetail) SessionView {
	if s == nil {
		return SessionView{
			Groups: []ExerciseGroup{},
			Cardio: []CardioGroup{},
			Empty:  true,
		}
	}

	sv := SessionView{
		ID:     s.ID,
		Groups: NewExerciseGroups(s.Sets),
		Cardio: NewCardioGroups(s.Cardio),
	}
	if s.SessionDate != "" {
		sv.Date = format.DisplayDate(s.SessionDate)
	}
	if s.Notes != nil {
		sv.Notes = *s.Notes
	}
	if s.CaloriesBurned != nil {
		sv.Calories = format.Thousands(*s.CaloriesBurned) + " kcal"
	}
	sv.Empty = len(sv.Groups) == 0 && len(sv.Cardio) == 0
	return sv
}
