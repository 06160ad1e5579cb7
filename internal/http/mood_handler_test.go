package http

import (
	"net/http"
	"testing"

	"ai-listener/internal/domain"
)

func TestMoodHandlerLogHistorySummary(t *testing.T) {
	ts := newTestServer(t, nil)
	_, token := ts.login(t, "sam@example.com")

	rec := performRequest(ts.router, http.MethodPost, "/api/mood", token, map[string]any{"emotion": "sad", "intensity": 0.9})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var entry domain.MoodLog
	decodeBody(t, rec, &entry)
	if entry.Intensity != 0.9 || entry.SentimentScore != -0.7 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	rec = performRequest(ts.router, http.MethodPost, "/api/mood", token, map[string]any{"emotion": "happy", "note": "sunny"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	decodeBody(t, rec, &entry)
	if entry.Intensity != 0.5 {
		t.Fatalf("expected default intensity, got %v", entry.Intensity)
	}

	rec = performRequest(ts.router, http.MethodGet, "/api/mood/history", token, nil)
	var history struct {
		Moods []domain.MoodLog `json:"moods"`
	}
	decodeBody(t, rec, &history)
	if len(history.Moods) != 2 || history.Moods[0].Emotion != "happy" {
		t.Fatalf("expected newest first, got %+v", history.Moods)
	}

	rec = performRequest(ts.router, http.MethodGet, "/api/mood/summary", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var summary domain.MoodSummary
	decodeBody(t, rec, &summary)
	if summary.Total != 2 || summary.Counts["sad"] != 1 || summary.Dominant != "happy" || summary.AverageSentiment != 0.05 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestMoodHandlerLog_Invalid(t *testing.T) {
	ts := newTestServer(t, nil)
	_, token := ts.login(t, "sam@example.com")

	for _, body := range []map[string]any{
		{},
		{"emotion": "sad", "intensity": 2},
		{"emotion": "sad", "intensity": -1},
	} {
		if rec := performRequest(ts.router, http.MethodPost, "/api/mood", token, body); rec.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected status 400, got %d", body, rec.Code)
		}
	}
	if rec := performRequest(ts.router, http.MethodGet, "/api/mood/summary", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
