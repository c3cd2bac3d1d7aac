package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/iamsamuelfraga/mcp-nevent/internal/models"
)

func TestGenerateEmailContent_PassThrough(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"subject":"Summer Sale Is Here!","content":"<p>Hot deals.</p>"}`))
	})

	result := callTool(t, s, "generate_email_content", map[string]any{
		"prompt": "Summer sale",
		"tone":   "exciting",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotPath != "/campaigns/generate" {
		t.Errorf("Expected /campaigns/generate, got %s", gotPath)
	}
	if gotBody["prompt"] != "Summer sale" || gotBody["tone"] != "exciting" {
		t.Errorf("Expected body forwarded verbatim, got %v", gotBody)
	}

	var resp models.GeneratedContent
	if err := json.Unmarshal([]byte(resultText(t, result)), &resp); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if resp.Subject != "Summer Sale Is Here!" {
		t.Errorf("Expected generated subject unmodified, got %q", resp.Subject)
	}
}

func TestSendCampaign_BodylessAction(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		okUpstream(w, r)
	})

	result := callTool(t, s, "send_campaign", map[string]any{"campaignId": "c1"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotMethod != http.MethodPost || gotPath != "/campaigns/c1/send" {
		t.Errorf("Expected POST /campaigns/c1/send, got %s %s", gotMethod, gotPath)
	}
	if len(gotBody) != 0 {
		t.Errorf("Lifecycle actions carry no body, got %q", string(gotBody))
	}
}

func TestCampaignLifecycleActions_Paths(t *testing.T) {
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		okUpstream(w, r)
	})

	actions := map[string]string{
		"pause_campaign":  "/campaigns/c9/pause",
		"resume_campaign": "/campaigns/c9/resume",
		"cancel_campaign": "/campaigns/c9/cancel",
	}
	for tool, wantPath := range actions {
		result := callTool(t, s, tool, map[string]any{"campaignId": "c9"})
		if result.IsError {
			t.Fatalf("%s: expected success, got error: %v", tool, result.Content)
		}
		if gotPath != wantPath {
			t.Errorf("%s: expected path %s, got %s", tool, wantPath, gotPath)
		}
	}
}

func TestScheduleCampaign_Body(t *testing.T) {
	var gotBody map[string]any
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		okUpstream(w, r)
	})

	result := callTool(t, s, "schedule_campaign", map[string]any{
		"campaignId":  "c1",
		"scheduledAt": "2026-09-01T10:00:00Z",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotBody["scheduledAt"] != "2026-09-01T10:00:00Z" {
		t.Errorf("Expected scheduledAt in body, got %v", gotBody)
	}
	if _, present := gotBody["campaignId"]; present {
		t.Error("campaignId must not be duplicated into the body")
	}
}

func TestSendTestCampaign_RequiresRecipients(t *testing.T) {
	handler := handleSendTestCampaign(unreachableClient())

	request := mcpgo.CallToolRequest{}
	request.Params.Arguments = map[string]any{"campaignId": "c1"}

	result, err := handler(t.Context(), request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result when recipients are missing")
	}
	if !strings.Contains(resultText(t, result), "recipients") {
		t.Errorf("Error should mention recipients, got %q", resultText(t, result))
	}
}

func TestCreateCampaign_RequiresNameAndType(t *testing.T) {
	handler := handleCreateCampaign(unreachableClient())

	for _, args := range []map[string]any{
		{"name": "Launch"},
		{"type": "EMAIL"},
	} {
		request := mcpgo.CallToolRequest{}
		request.Params.Arguments = args

		result, err := handler(t.Context(), request)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatalf("Expected error result for args %v", args)
		}
	}
}

func TestPreviewSegment_ForwardsCriteria(t *testing.T) {
	var gotBody map[string]any
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matchCount":42}`))
	})

	result := callTool(t, s, "preview_segment", map[string]any{
		"criteria": map[string]any{"tags": []any{"vip"}},
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotPath != "/segments/preview" {
		t.Errorf("Expected /segments/preview, got %s", gotPath)
	}
	criteria, ok := gotBody["criteria"].(map[string]any)
	if !ok {
		t.Fatalf("Expected criteria object in body, got %v", gotBody)
	}
	if _, ok := criteria["tags"]; !ok {
		t.Errorf("Expected tags inside criteria, got %v", criteria)
	}
}

func TestRemoveUserFromList_Path(t *testing.T) {
	var gotMethod, gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		okUpstream(w, r)
	})

	result := callTool(t, s, "remove_user_from_list", map[string]any{
		"listId": "l1",
		"userId": "u1",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotMethod != http.MethodDelete || gotPath != "/lists/l1/users/u1" {
		t.Errorf("Expected DELETE /lists/l1/users/u1, got %s %s", gotMethod, gotPath)
	}
}

func TestRenderEmailTemplate_Variables(t *testing.T) {
	var gotBody map[string]any
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"html":"<html>Hi Ann</html>"}`))
	})

	result := callTool(t, s, "render_email_template", map[string]any{
		"templateId": "t1",
		"variables":  map[string]any{"firstName": "Ann"},
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotPath != "/templates/email/t1/render" {
		t.Errorf("Expected /templates/email/t1/render, got %s", gotPath)
	}
	vars, ok := gotBody["variables"].(map[string]any)
	if !ok || vars["firstName"] != "Ann" {
		t.Errorf("Expected variables forwarded, got %v", gotBody)
	}
	if _, present := gotBody["templateId"]; present {
		t.Error("templateId must not be duplicated into the body")
	}
}

func TestGetCampaignMetrics_UpstreamError(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`unavailable`))
	})

	result := callTool(t, s, "get_campaign_metrics", map[string]any{"campaignId": "c1"})
	if !result.IsError {
		t.Fatal("Expected error result for 503 response")
	}
	if text := resultText(t, result); text != "Error: HTTP 503: Service Unavailable" {
		t.Errorf("Expected synthesized status error, got %q", text)
	}
}
