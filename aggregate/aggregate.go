// Package aggregate turns an event's stored responses into the per-slot
// tallies and the participant × slot matrix the schedule view renders. It is
// a pure computation: no store access, no hidden state, safe to rerun on
// every view refresh.
package aggregate

import (
	"log"
	"time"

	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

// SlotTally counts the three answer kinds for one candidate slot.
// Participants with no entry for the slot are not counted anywhere.
type SlotTally struct {
	DateOption  string `json:"date_option"`
	Available   int    `json:"available"`
	Maybe       int    `json:"maybe"`
	Unavailable int    `json:"unavailable"`
}

// MatrixCell is one participant's answer for one slot: the availability tag
// (models.NoAnswer when the participant skipped the slot) and the optional
// comment.
type MatrixCell struct {
	Availability models.Availability `json:"availability"`
	Comment      string              `json:"comment,omitempty"`
}

// ParticipantRow is one matrix row; Cells is parallel to the event's date
// option sequence.
type ParticipantRow struct {
	ParticipantName string       `json:"participant_name"`
	Cells           []MatrixCell `json:"cells"`
	SubmittedAt     string       `json:"submitted_at"`
}

type Summary struct {
	Tallies      []SlotTally      `json:"tallies"`
	Participants []ParticipantRow `json:"participants"`
}

// Summarize folds the responses for one event into a Summary. Rows keep the
// order of the responses slice, columns keep the date option order. Map keys
// referencing options no longer on the event are skipped; unrecognized
// availability values count as no answer and are logged.
func Summarize(dateOptions []string, responses []models.EventResponse) Summary {
	summary := Summary{
		Tallies:      make([]SlotTally, len(dateOptions)),
		Participants: make([]ParticipantRow, 0, len(responses)),
	}
	for i, opt := range dateOptions {
		summary.Tallies[i].DateOption = opt
	}

	slotIndex := make(map[string]int, len(dateOptions))
	for i, opt := range dateOptions {
		slotIndex[opt] = i
	}

	for _, resp := range responses {
		row := ParticipantRow{
			ParticipantName: resp.ParticipantName,
			Cells:           make([]MatrixCell, len(dateOptions)),
			SubmittedAt:     resp.SubmittedAt.Format(time.RFC3339),
		}
		for i := range row.Cells {
			row.Cells[i].Availability = models.NoAnswer
		}

		for opt, raw := range resp.Responses {
			i, known := slotIndex[opt]
			if !known {
				// A slot the event no longer carries; the answer stays
				// stored but does not surface.
				continue
			}
			tag, ok := models.ParseAvailability(string(raw))
			if !ok {
				log.Printf("Participant %q has unrecognized availability %q for slot %q", resp.ParticipantName, raw, opt)
				continue
			}
			row.Cells[i].Availability = tag
			switch tag {
			case models.Available:
				summary.Tallies[i].Available++
			case models.Maybe:
				summary.Tallies[i].Maybe++
			case models.Unavailable:
				summary.Tallies[i].Unavailable++
			}
		}

		for opt, comment := range resp.Comments {
			if i, known := slotIndex[opt]; known && comment != "" {
				row.Cells[i].Comment = comment
			}
		}

		summary.Participants = append(summary.Participants, row)
	}

	return summary
}
