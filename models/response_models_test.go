package models

import "testing"

func TestParseAvailability(t *testing.T) {
	cases := []struct {
		raw  string
		want Availability
		ok   bool
	}{
		{"available", Available, true},
		{"maybe", Maybe, true},
		{"unavailable", Unavailable, true},
		{" Available ", Available, true},
		{"MAYBE", Maybe, true},
		{"", NoAnswer, false},
		{"going", NoAnswer, false},
		{"no_answer", NoAnswer, false}, // the sentinel itself is not a valid answer
	}

	for _, tc := range cases {
		got, ok := ParseAvailability(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseAvailability(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSubmitResponseRequestValidate(t *testing.T) {
	req := SubmitResponseRequest{
		ParticipantName: "Alice",
		Responses: map[string]string{
			"2024-12-20T19:00": "Available",
			"2024-12-21T19:00": "maybe",
		},
	}

	availability, err := req.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if availability["2024-12-20T19:00"] != Available {
		t.Errorf("Tag not normalized: %v", availability)
	}

	req.Responses["2024-12-21T19:00"] = "perhaps"
	if _, err := req.Validate(); err == nil {
		t.Error("Unknown tag should be rejected at the boundary")
	}
}

func TestCreateEventRequestValidate(t *testing.T) {
	valid := CreateEventRequest{
		Title:       "Party",
		DateOptions: []string{"2024-12-20T19:00", "2024-12-21", "2024-12-22T19:00:00Z"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid request rejected: %v", err)
	}

	for _, bad := range []CreateEventRequest{
		{Title: "", DateOptions: []string{"2024-12-20T19:00"}},
		{Title: "Party"},
		{Title: "Party", DateOptions: []string{"20th of December"}},
	} {
		if err := bad.Validate(); err == nil {
			t.Errorf("Invalid request accepted: %+v", bad)
		}
	}
}
