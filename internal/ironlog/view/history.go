package view

import (
	"fmt"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/format"
)

type Chip struct {
	Text  string
	Class string
}

type HistoryCard struct {
	ID    int64
	Date  string
	Chips []Chip
	Notes string
}

type BodyWeightRow struct {
	Weight string
	Notes  string
	Date   string
}

func NewHistoryCard(s api.SessionSummary) HistoryCard {
	card := HistoryCard{
		ID:   s.ID,
		Date: format.DisplayDate(s.SessionDate),
		Chips: []Chip{
			{Text: fmt.Sprintf("%d sets", s.TotalSets), Class: "chip-green"},
		},
	}
	// aggregates of zero carry no information, so those chips are skipped
	if s.TotalVolume != nil && *s.TotalVolume > 0 {
		card.Chips = append(card.Chips, Chip{
			Text:  format.Thousands(*s.TotalVolume) + " kg vol",
			Class: "chip-blue",
		})
	}
	if s.TotalCardio != nil && *s.TotalCardio > 0 {
		card.Chips = append(card.Chips, Chip{
			Text:  format.Number(*s.TotalCardio) + " cardio",
			Class: "chip-teal",
		})
	}
	if s.CaloriesBurned != nil && *s.CaloriesBurned > 0 {
		card.Chips = append(card.Chips, Chip{
			Text:  format.Thousands(*s.CaloriesBurned) + " kcal",
			Class: "chip-red",
		})
	}
	card.Chips = append(card.Chips, Chip{Text: fmt.Sprintf("#%d", s.ID), Class: "chip-gray"})

	if s.Notes != nil {
		card.Notes = *s.Notes
	}
	return card
}

func NewHistoryCards(sessions []api.SessionSummary) []HistoryCard {
	cards := make([]HistoryCard, 0, len(sessions))
	for _, s := range sessions {
		cards = append(cards, NewHistoryCard(s))
	}
	return cards
}

func NewBodyWeightRows(entries []api.BodyWeightEntry) []BodyWeightRow {
	rows := make([]BodyWeightRow, 0, len(entries))
	for _, e := range entries {
		row := BodyWeightRow{
			Weight: format.Number(e.WeightKg),
			Date:   format.DisplayDate(e.LoggedAt),
		}
		if e.Notes != nil {
			row.Notes = *e.Notes
		}
		rows = append(rows, row)
	}
	return rows
}
