package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

func TestGetDailyLineup_DefaultIncludeMaster(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"eventId":"e1","date":"2026-09-01","sessions":[]}`))
	})

	result := callTool(t, s, "get_daily_lineup", map[string]any{
		"eventId": "e1",
		"date":    "2026-09-01",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotPath != "/events/e1/daily-lineup/2026-09-01" {
		t.Errorf("Unexpected path %s", gotPath)
	}
	if gotQuery.Get("includeMaster") != "false" {
		t.Errorf("Expected includeMaster=false by default, got %q", gotQuery.Get("includeMaster"))
	}
}

func TestUpdateDailyLineup_BodyAndOverrideFlag(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery url.Values
	var gotBody map[string]any
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		okUpstream(w, r)
	})

	lineup := map[string]any{
		"sessions": []any{
			map[string]any{"performerId": "p1", "stage": "Main", "startsAt": "2026-09-01T20:00:00Z"},
		},
	}
	result := callTool(t, s, "update_daily_lineup", map[string]any{
		"eventId": "e1",
		"date":    "2026-09-01",
		"lineup":  lineup,
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}

	if gotMethod != http.MethodPut || gotPath != "/events/e1/daily-lineup/2026-09-01" {
		t.Errorf("Expected PUT /events/e1/daily-lineup/2026-09-01, got %s %s", gotMethod, gotPath)
	}
	if gotQuery.Get("overrideData") != "false" {
		t.Errorf("Expected overrideData=false by default, got %q", gotQuery.Get("overrideData"))
	}
	sessions, ok := gotBody["sessions"].([]any)
	if !ok || len(sessions) != 1 {
		t.Errorf("Expected lineup document as body, got %v", gotBody)
	}
	for _, key := range []string{"eventId", "date", "overrideData", "lineup"} {
		if _, present := gotBody[key]; present {
			t.Errorf("Key %q must not leak into the body", key)
		}
	}
}

func TestPublishDailyLineup_Path(t *testing.T) {
	var gotMethod, gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		okUpstream(w, r)
	})

	result := callTool(t, s, "publish_daily_lineup", map[string]any{
		"eventId": "e1",
		"date":    "2026-09-01",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotMethod != http.MethodPost || gotPath != "/events/e1/daily-lineup/2026-09-01/publish" {
		t.Errorf("Expected POST .../publish, got %s %s", gotMethod, gotPath)
	}
}

func TestCreateSession_ForwardsAllFields(t *testing.T) {
	var gotBody map[string]any
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		okUpstream(w, r)
	})

	result := callTool(t, s, "create_session", map[string]any{
		"eventId":     "e1",
		"performerId": "p1",
		"stage":       "Main",
		"startsAt":    "2026-09-01T20:00:00Z",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	// Create bodies keep eventId: it is a body field here, not a path segment.
	if gotBody["eventId"] != "e1" || gotBody["performerId"] != "p1" {
		t.Errorf("Expected full body forwarded, got %v", gotBody)
	}
}

func TestListSessions_EventFilter(t *testing.T) {
	var gotQuery url.Values
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		okUpstream(w, r)
	})

	result := callTool(t, s, "list_sessions", map[string]any{"eventId": "e1"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotQuery.Get("eventId") != "e1" {
		t.Errorf("Expected eventId filter, got %s", gotQuery.Encode())
	}
	if gotQuery.Get("page") != "0" || gotQuery.Get("size") != "20" {
		t.Errorf("Expected default pagination, got %s", gotQuery.Encode())
	}
}

func TestGetPublicLineup_NoAdminPrefix(t *testing.T) {
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		okUpstream(w, r)
	})

	result := callTool(t, s, "get_public_lineup", map[string]any{"eventId": "e1"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotPath != "/public/events/e1/lineup" {
		t.Errorf("Expected /public/events/e1/lineup, got %s", gotPath)
	}
}

func TestDeletePerformer_MissingArgument(t *testing.T) {
	handler := handleDeletePerformer(unreachableClient())

	request := mcpgo.CallToolRequest{}
	request.Params.Arguments = map[string]any{}

	result, err := handler(t.Context(), request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing performerId")
	}
}
