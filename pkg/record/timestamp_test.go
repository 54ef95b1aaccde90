package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, 1, 12, 9, 30, 0, 0, time.UTC)}

	raw, err := json.Marshal(&ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2025-01-12T09:30:00Z"` {
		t.Fatalf("unexpected encoding: %s", raw)
	}

	var back Timestamp
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip changed the moment: %v", back)
	}
}

func TestTimestampZeroIsEmptyString(t *testing.T) {
	var ts Timestamp

	raw, err := json.Marshal(&ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `""` {
		t.Fatalf("zero timestamp must encode as empty, got %s", raw)
	}

	var back Timestamp
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.IsZero() {
		t.Fatalf("empty string must decode to zero, got %v", back)
	}
}

func TestParseDate(t *testing.T) {
	if d, ok := ParseDate("2025-01-10"); !ok || d.Day() != 10 {
		t.Fatalf("plain date must parse, got %v ok=%v", d, ok)
	}
	if d, ok := ParseDate("2025-01-10T12:00:00Z"); !ok || d.Hour() != 12 {
		t.Fatalf("full timestamp must parse, got %v ok=%v", d, ok)
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("empty input is not a date")
	}
	if _, ok := ParseDate("next tuesday"); ok {
		t.Fatalf("prose is not a date")
	}
}

func TestParseStageAcceptsEveryStage(t *testing.T) {
	for _, s := range Stages() {
		got, err := ParseStage(string(s))
		if err != nil || got != s {
			t.Fatalf("stage %s must parse, got %s err=%v", s, got, err)
		}
	}
	if _, err := ParseStage("shipped"); err == nil {
		t.Fatalf("unknown stage must fail")
	}
	if got, err := ParseStage(""); err != nil || got != StageIdea {
		t.Fatalf("empty stage defaults to idea, got %s err=%v", got, err)
	}
}

func TestPaperTouchRefreshesUpdatedAt(t *testing.T) {
	p := &Paper{Title: "T"}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.Stamp("id-1", created)

	later := created.Add(48 * time.Hour)
	p.Touch(later)

	if !p.CreatedAt.Equal(created) {
		t.Fatalf("touch must not move createdAt")
	}
	if !p.UpdatedAt.Equal(later) {
		t.Fatalf("touch must move updatedAt")
	}
}

func TestMetaTouchIsNoop(t *testing.T) {
	g := &Grant{Title: "G"}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	g.Stamp("id-1", created)
	g.Touch(created.Add(time.Hour))

	if !g.CreatedAt.Equal(created) {
		t.Fatalf("kinds without updatedAt keep only createdAt")
	}
}
