package view

import "github.com/2beens/ironlog/internal/ironlog/api"

// Group is one display group: all records sharing a name, in input order.
type Group[T any] struct {
	Name   string
	Muscle *string
	Items  []T
}

// GroupBy groups records by name in a single pass. Groups appear in the order
// their name is first seen, and the first record of a group fixes its muscle
// value. Nothing is sorted. A nil muscle func leaves Muscle unset.
func GroupBy[T any](items []T, name func(T) string, muscle func(T) *string) []Group[T] {
	groups := make([]Group[T], 0)
	index := make(map[string]int)
	for _, item := range items {
		n := name(item)
		i, ok := index[n]
		if !ok {
			g := Group[T]{Name: n}
			if muscle != nil {
				g.Muscle = muscle(item)
			}
			groups = append(groups, g)
			i = len(groups) - 1
			index[n] = i
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func GroupSets(sets []api.LoggedSet) []Group[api.LoggedSet] {
	return GroupBy(
		sets,
		func(s api.LoggedSet) string { return s.ExerciseName },
		func(s api.LoggedSet) *string { return s.MuscleGroup },
	)
}

func GroupCardio(entries []api.CardioEntry) []Group[api.CardioEntry] {
	return GroupBy(
		entries,
		func(c api.CardioEntry) string { return c.ActivityType.String() },
		nil,
	)
}
