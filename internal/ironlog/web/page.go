package web

import (
	"strings"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/view"
)

type ExerciseOption struct {
	ID       int64
	Label    string
	Selected bool
}

type ExerciseSelect struct {
	Options []ExerciseOption
	OOB     bool
}

type ExerciseModal struct {
	Open      bool
	OOB       bool
	Name      string
	Muscle    string
	Equipment string
	Error     string
}

type SessionPanels struct {
	Active    bool
	ID        int64
	Today     string
	Session   SessionGroups
	Exercise  ExerciseSelect
	SetInputs SetInputs
	Cardio    CardioInputs
}

type AppPage struct {
	Username   string
	Panels     SessionPanels
	BodyWeight BodyWeightInputs
	Modal      ExerciseModal
	Toast      *Toast
}

// SessionGroups renders the grouped sets and cardio of a session;
// only the current session offers delete buttons.
type SessionGroups struct {
	View     view.SessionView
	Editable bool
}

type SetInputs struct {
	SetNumber int
	OOB       bool
}

type CardioInputs struct {
	OOB     bool
	Preview PacePreview
}

type BodyWeightInputs struct {
	Today string
	OOB   bool
}

type SessionModal struct {
	Title  string
	Notes  string
	Groups SessionGroups
}

type PacePreview struct {
	Label string
}

// ExerciseOptionLabel renders "Bench Press (Chest)", or the bare name
// when the muscle group is unknown.
func ExerciseOptionLabel(e api.Exercise) string {
	if e.MuscleGroup != nil && *e.MuscleGroup != "" {
		return e.Name + " (" + *e.MuscleGroup + ")"
	}
	return e.Name
}

// NewExerciseOptions builds the picker entries. With a non-empty
// selectPrefix the first option whose label starts with it is selected,
// otherwise the option matching selectedID keeps its selection.
func NewExerciseOptions(exercises []api.Exercise, selectedID int64, selectPrefix string) []ExerciseOption {
	options := make([]ExerciseOption, 0, len(exercises))
	selected := false
	for _, e := range exercises {
		opt := ExerciseOption{ID: e.ID, Label: ExerciseOptionLabel(e)}
		if !selected {
			if selectPrefix != "" {
				opt.Selected = strings.HasPrefix(opt.Label, selectPrefix)
			} else {
				opt.Selected = selectedID > 0 && e.ID == selectedID
			}
			selected = opt.Selected
		}
		options = append(options, opt)
	}
	return options
}
