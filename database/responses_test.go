package database

import (
	"errors"
	"testing"

	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

func createTestEvent(t *testing.T) *models.Event {
	t.Helper()
	event, err := CreateEvent(models.CreateEventRequest{
		Title:       "Year-end party",
		DateOptions: []string{"2024-12-20T19:00", "2024-12-21T19:00"},
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return event
}

func TestUpsertResponseReplacesNotMerges(t *testing.T) {
	setupTestDB(t)
	event := createTestEvent(t)

	first := map[string]models.Availability{
		"2024-12-20T19:00": models.Available,
		"2024-12-21T19:00": models.Maybe,
	}
	if _, err := UpsertResponse(event.ID, "Alice", first, map[string]string{"2024-12-20T19:00": "looking forward"}); err != nil {
		t.Fatalf("First submission failed: %v", err)
	}

	// Resubmission answers only one slot and drops the comment; the stored
	// record must reflect exactly that, nothing from the first submission.
	second := map[string]models.Availability{
		"2024-12-20T19:00": models.Unavailable,
	}
	stored, err := UpsertResponse(event.ID, "Alice", second, nil)
	if err != nil {
		t.Fatalf("Second submission failed: %v", err)
	}

	if stored.Responses["2024-12-20T19:00"] != models.Unavailable {
		t.Errorf("Slot 1: got %q, want unavailable", stored.Responses["2024-12-20T19:00"])
	}
	if _, leaked := stored.Responses["2024-12-21T19:00"]; leaked {
		t.Error("Slot 2 answer from the first submission leaked into the replacement")
	}
	if len(stored.Comments) != 0 {
		t.Errorf("Comments from the first submission leaked: %v", stored.Comments)
	}

	responses, err := ListResponses(event.ID)
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("Resubmission must not add a row: got %d responses", len(responses))
	}
}

func TestUpsertResponseEmptyNameRejected(t *testing.T) {
	setupTestDB(t)
	event := createTestEvent(t)

	_, err := UpsertResponse(event.ID, "   ", nil, nil)
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

func TestUpsertResponseTrimsName(t *testing.T) {
	setupTestDB(t)
	event := createTestEvent(t)

	if _, err := UpsertResponse(event.ID, "Alice", map[string]models.Availability{"2024-12-20T19:00": models.Available}, nil); err != nil {
		t.Fatalf("First submission failed: %v", err)
	}
	// Same name with a trailing space is the same participant
	if _, err := UpsertResponse(event.ID, "Alice ", map[string]models.Availability{"2024-12-20T19:00": models.Maybe}, nil); err != nil {
		t.Fatalf("Second submission failed: %v", err)
	}

	responses, err := ListResponses(event.ID)
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("Trimmed name should upsert the same row: got %d responses", len(responses))
	}
	if responses[0].Responses["2024-12-20T19:00"] != models.Maybe {
		t.Error("Second submission did not replace the first")
	}
}

func TestListResponsesKeepsFirstSubmissionOrder(t *testing.T) {
	setupTestDB(t)
	event := createTestEvent(t)

	answer := func(name string, tag models.Availability) {
		t.Helper()
		if _, err := UpsertResponse(event.ID, name, map[string]models.Availability{"2024-12-20T19:00": tag}, nil); err != nil {
			t.Fatalf("Submission from %s failed: %v", name, err)
		}
	}

	answer("Alice", models.Available)
	answer("Bob", models.Unavailable)
	answer("Carol", models.Maybe)
	// Alice resubmits; her row must stay first
	answer("Alice", models.Unavailable)

	responses, err := ListResponses(event.ID)
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}

	want := []string{"Alice", "Bob", "Carol"}
	if len(responses) != len(want) {
		t.Fatalf("Expected %d responses, got %d", len(want), len(responses))
	}
	for i, name := range want {
		if responses[i].ParticipantName != name {
			t.Errorf("Position %d: got %s, want %s", i, responses[i].ParticipantName, name)
		}
	}
	if responses[0].Responses["2024-12-20T19:00"] != models.Unavailable {
		t.Error("Alice's row kept her position but not her latest answer")
	}
}

func TestListResponsesEmptyEvent(t *testing.T) {
	setupTestDB(t)
	event := createTestEvent(t)

	responses, err := ListResponses(event.ID)
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	if len(responses) != 0 {
		t.Fatalf("Expected no responses, got %d", len(responses))
	}
}

func TestTwoParticipantsNeverConflict(t *testing.T) {
	setupTestDB(t)
	event := createTestEvent(t)

	if _, err := UpsertResponse(event.ID, "Alice", map[string]models.Availability{"2024-12-20T19:00": models.Available}, nil); err != nil {
		t.Fatalf("Alice's submission failed: %v", err)
	}
	if _, err := UpsertResponse(event.ID, "Bob", map[string]models.Availability{"2024-12-20T19:00": models.Unavailable}, nil); err != nil {
		t.Fatalf("Bob's submission failed: %v", err)
	}

	responses, err := ListResponses(event.ID)
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("Disjoint participants should hold separate rows: got %d", len(responses))
	}
}
