package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/iamsamuelfraga/mcp-nevent/internal/models"
)

func TestListUsers_DefaultPagination(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[],"totalElements":0,"totalPages":0,"size":20,"number":0,"first":true,"last":true,"empty":true}`))
	})

	result := callTool(t, s, "list_users", map[string]any{})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}

	var page models.Page[models.User]
	if err := json.Unmarshal([]byte(resultText(t, result)), &page); err != nil {
		t.Fatalf("result is not a page envelope: %v", err)
	}
	if !page.Empty || page.Size != 20 {
		t.Errorf("Unexpected page envelope: %+v", page)
	}

	if gotPath != "/users" {
		t.Errorf("Expected path /users, got %s", gotPath)
	}
	if gotQuery.Get("page") != "0" {
		t.Errorf("Expected page=0, got %q", gotQuery.Get("page"))
	}
	if gotQuery.Get("size") != "20" {
		t.Errorf("Expected size=20, got %q", gotQuery.Get("size"))
	}
	for _, key := range []string{"sort", "search", "propertyId"} {
		if _, present := gotQuery[key]; present {
			t.Errorf("Omitted filter %q must not appear in the query", key)
		}
	}
}

func TestListUsers_ForwardsFilters(t *testing.T) {
	var gotQuery url.Values
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		okUpstream(w, r)
	})

	result := callTool(t, s, "list_users", map[string]any{
		"page":   float64(2),
		"size":   float64(50),
		"search": "ann",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("size") != "50" {
		t.Errorf("Expected page=2&size=50, got %s", gotQuery.Encode())
	}
	if gotQuery.Get("search") != "ann" {
		t.Errorf("Expected search=ann, got %q", gotQuery.Get("search"))
	}
}

func TestUpdateUser_PathIDNotInBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		okUpstream(w, r)
	})

	result := callTool(t, s, "update_user", map[string]any{
		"userId": "u1",
		"name":   "Ann",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("Expected PUT, got %s", gotMethod)
	}
	if gotPath != "/users/u1" {
		t.Errorf("Expected /users/u1, got %s", gotPath)
	}
	if gotBody["name"] != "Ann" {
		t.Errorf("Expected body name=Ann, got %v", gotBody)
	}
	if _, present := gotBody["userId"]; present {
		t.Error("userId must not be duplicated into the body")
	}
}

func TestGetUser_NotFoundErrorText(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"User not found"}`))
	})

	result := callTool(t, s, "get_user", map[string]any{"userId": "missing"})
	if !result.IsError {
		t.Fatal("Expected error result for 404 response")
	}
	if text := resultText(t, result); text != "Error: User not found" {
		t.Errorf("Expected exactly 'Error: User not found', got %q", text)
	}
}

func TestGetUser_MissingArgument(t *testing.T) {
	// Handler invoked directly: argument errors must surface as error
	// results without any upstream call.
	handler := handleGetUser(unreachableClient())

	request := mcpgo.CallToolRequest{}
	request.Params.Arguments = map[string]any{}

	result, err := handler(t.Context(), request)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing userId")
	}
}

func TestGetUserByEmail_PathEscaped(t *testing.T) {
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		okUpstream(w, r)
	})

	result := callTool(t, s, "get_user_by_email", map[string]any{"email": "ann+vip@example.com"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotPath != "/users/email/ann+vip@example.com" {
		t.Errorf("Unexpected path %q", gotPath)
	}
}

func TestExportUsers_DefaultFormat(t *testing.T) {
	var gotQuery url.Values
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("id,email\nu1,ann@example.com\n"))
	})

	result := callTool(t, s, "export_users", map[string]any{})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotQuery.Get("format") != "csv" {
		t.Errorf("Expected format=csv by default, got %q", gotQuery.Get("format"))
	}
	// Non-JSON bodies pass through unchanged.
	if text := resultText(t, result); text != "id,email\nu1,ann@example.com\n" {
		t.Errorf("Expected raw CSV passthrough, got %q", text)
	}
}

func TestUpdateCommunicationPreferences_BooleanBody(t *testing.T) {
	var gotBody map[string]any
	var gotPath string
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		okUpstream(w, r)
	})

	result := callTool(t, s, "update_communication_preferences", map[string]any{
		"userId": "u1",
		"email":  true,
		"sms":    false,
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if gotPath != "/users/u1/communication-preferences" {
		t.Errorf("Unexpected path %s", gotPath)
	}
	if gotBody["email"] != true || gotBody["sms"] != false {
		t.Errorf("Booleans must arrive natively, got %v", gotBody)
	}
	if _, present := gotBody["userId"]; present {
		t.Error("userId must not be duplicated into the body")
	}
}
