package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iamsamuelfraga/mcp-nevent/internal/client"
)

// registerLineupTools registers the performer, session, and lineup tools.
func registerLineupTools(s *server.MCPServer, c *client.Client) {
	s.AddTool(createListPerformersTool(), handleListPerformers(c))
	s.AddTool(createGetPerformerTool(), handleGetPerformer(c))
	s.AddTool(createCreatePerformerTool(), handleCreatePerformer(c))
	s.AddTool(createUpdatePerformerTool(), handleUpdatePerformer(c))
	s.AddTool(createDeletePerformerTool(), handleDeletePerformer(c))
	s.AddTool(createListSessionsTool(), handleListSessions(c))
	s.AddTool(createGetSessionTool(), handleGetSession(c))
	s.AddTool(createCreateSessionTool(), handleCreateSession(c))
	s.AddTool(createUpdateSessionTool(), handleUpdateSession(c))
	s.AddTool(createDeleteSessionTool(), handleDeleteSession(c))
	s.AddTool(createGetEventSessionsTool(), handleGetEventSessions(c))
	s.AddTool(createGetPublicLineupTool(), handleGetPublicLineup(c))
	s.AddTool(createGetEventLineupTool(), handleGetEventLineup(c))
	s.AddTool(createGetDailyLineupTool(), handleGetDailyLineup(c))
	s.AddTool(createUpdateDailyLineupTool(), handleUpdateDailyLineup(c))
	s.AddTool(createPublishDailyLineupTool(), handlePublishDailyLineup(c))
}

// --- Tool definitions ---

func createListPerformersTool() mcp.Tool {
	return mcp.NewTool("list_performers",
		mcp.WithDescription("List performers with pagination and free-text search."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
		mcp.WithString("search", mcp.Description("Free-text search over performer names")),
	)
}

func createGetPerformerTool() mcp.Tool {
	return mcp.NewTool("get_performer",
		mcp.WithDescription("Get a single performer by ID, including bio and links."),
		mcp.WithString("performerId", mcp.Required(), mcp.Description("The performer ID")),
	)
}

func createCreatePerformerTool() mcp.Tool {
	return mcp.NewTool("create_performer",
		mcp.WithDescription("Create a performer profile."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Performer name")),
		mcp.WithString("bio", mcp.Description("Short biography")),
		mcp.WithString("imageUrl", mcp.Description("Profile image URL")),
		mcp.WithArray("genres", mcp.WithStringItems(), mcp.Description("Music genres")),
		mcp.WithArray("links", mcp.WithStringItems(), mcp.Description("Social/streaming links")),
	)
}

func createUpdatePerformerTool() mcp.Tool {
	return mcp.NewTool("update_performer",
		mcp.WithDescription("Update fields on a performer profile. Only the supplied fields are changed."),
		mcp.WithString("performerId", mcp.Required(), mcp.Description("The performer ID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("bio", mcp.Description("New biography")),
		mcp.WithString("imageUrl", mcp.Description("New profile image URL")),
		mcp.WithArray("genres", mcp.WithStringItems(), mcp.Description("Replacement genre list")),
		mcp.WithArray("links", mcp.WithStringItems(), mcp.Description("Replacement link list")),
	)
}

func createDeletePerformerTool() mcp.Tool {
	return mcp.NewTool("delete_performer",
		mcp.WithDescription("Delete a performer by ID. Sessions referencing the performer keep a tombstone entry."),
		mcp.WithString("performerId", mcp.Required(), mcp.Description("The performer ID")),
	)
}

func createListSessionsTool() mcp.Tool {
	return mcp.NewTool("list_sessions",
		mcp.WithDescription("List performance sessions with pagination, optionally filtered to one event."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
		mcp.WithString("eventId", mcp.Description("Filter to sessions of one event")),
	)
}

func createGetSessionTool() mcp.Tool {
	return mcp.NewTool("get_session",
		mcp.WithDescription("Get a single performance session by ID."),
		mcp.WithString("sessionId", mcp.Required(), mcp.Description("The session ID")),
	)
}

func createCreateSessionTool() mcp.Tool {
	return mcp.NewTool("create_session",
		mcp.WithDescription("Create a performance session (a performer slot on an event schedule)."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event the session belongs to")),
		mcp.WithString("performerId", mcp.Description("The performer filling the slot")),
		mcp.WithString("stage", mcp.Description("Stage or room name")),
		mcp.WithString("startsAt", mcp.Description("Start time in RFC 3339 format")),
		mcp.WithString("endsAt", mcp.Description("End time in RFC 3339 format")),
	)
}

func createUpdateSessionTool() mcp.Tool {
	return mcp.NewTool("update_session",
		mcp.WithDescription("Update fields on a performance session. Only the supplied fields are changed."),
		mcp.WithString("sessionId", mcp.Required(), mcp.Description("The session ID")),
		mcp.WithString("performerId", mcp.Description("New performer")),
		mcp.WithString("stage", mcp.Description("New stage or room name")),
		mcp.WithString("startsAt", mcp.Description("New start time in RFC 3339 format")),
		mcp.WithString("endsAt", mcp.Description("New end time in RFC 3339 format")),
	)
}

func createDeleteSessionTool() mcp.Tool {
	return mcp.NewTool("delete_session",
		mcp.WithDescription("Delete a performance session by ID."),
		mcp.WithString("sessionId", mcp.Required(), mcp.Description("The session ID")),
	)
}

func createGetEventSessionsTool() mcp.Tool {
	return mcp.NewTool("get_event_sessions",
		mcp.WithDescription("Get all sessions scheduled for an event."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event ID")),
	)
}

func createGetPublicLineupTool() mcp.Tool {
	return mcp.NewTool("get_public_lineup",
		mcp.WithDescription("Get the published, public-facing lineup for an event."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event ID")),
	)
}

func createGetEventLineupTool() mcp.Tool {
	return mcp.NewTool("get_event_lineup",
		mcp.WithDescription("Get the admin view of an event lineup, including unpublished slots."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event ID")),
		mcp.WithBoolean("includeMaster", mcp.Description("Include the master schedule alongside per-day overrides (default: false)")),
	)
}

func createGetDailyLineupTool() mcp.Tool {
	return mcp.NewTool("get_daily_lineup",
		mcp.WithDescription("Get the lineup of one event day."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event ID")),
		mcp.WithString("date", mcp.Required(), mcp.Description("The day in YYYY-MM-DD format")),
		mcp.WithBoolean("includeMaster", mcp.Description("Include the master schedule alongside per-day overrides (default: false)")),
	)
}

func createUpdateDailyLineupTool() mcp.Tool {
	return mcp.NewTool("update_daily_lineup",
		mcp.WithDescription("Replace the lineup of one event day. Changes stay unpublished until publish_daily_lineup is called."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event ID")),
		mcp.WithString("date", mcp.Required(), mcp.Description("The day in YYYY-MM-DD format")),
		mcp.WithObject("lineup", mcp.Required(), mcp.Description("The lineup document with its sessions array")),
		mcp.WithBoolean("overrideData", mcp.Description("Overwrite slots inherited from the master schedule (default: false)")),
	)
}

func createPublishDailyLineupTool() mcp.Tool {
	return mcp.NewTool("publish_daily_lineup",
		mcp.WithDescription("Publish the lineup of one event day to the public endpoint."),
		mcp.WithString("eventId", mcp.Required(), mcp.Description("The event ID")),
		mcp.WithString("date", mcp.Required(), mcp.Description("The day in YYYY-MM-DD format")),
	)
}

// --- Handlers ---

func handleListPerformers(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page":   request.GetInt("page", 0),
			"size":   request.GetInt("size", 20),
			"search": request.GetString("search", ""),
		}
		body, err := c.Get(ctx, "/admin/performers", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetPerformer(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		performerID, err := request.RequireString("performerId")
		if err != nil || performerID == "" {
			return errorResult("Error: performerId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/admin/performers/"+url.PathEscape(performerID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreatePerformer(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if name := request.GetString("name", ""); name == "" {
			return errorResult("Error: name parameter is required"), nil
		}
		body, err := c.Post(ctx, "/admin/performers", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdatePerformer(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		performerID, err := request.RequireString("performerId")
		if err != nil || performerID == "" {
			return errorResult("Error: performerId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/admin/performers/"+url.PathEscape(performerID), restArgs(request, "performerId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDeletePerformer(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		performerID, err := request.RequireString("performerId")
		if err != nil || performerID == "" {
			return errorResult("Error: performerId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/admin/performers/"+url.PathEscape(performerID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleListSessions(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page":    request.GetInt("page", 0),
			"size":    request.GetInt("size", 20),
			"eventId": request.GetString("eventId", ""),
		}
		body, err := c.Get(ctx, "/admin/sessions", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetSession(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := request.RequireString("sessionId")
		if err != nil || sessionID == "" {
			return errorResult("Error: sessionId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/admin/sessions/"+url.PathEscape(sessionID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreateSession(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if eventID := request.GetString("eventId", ""); eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		body, err := c.Post(ctx, "/admin/sessions", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateSession(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := request.RequireString("sessionId")
		if err != nil || sessionID == "" {
			return errorResult("Error: sessionId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/admin/sessions/"+url.PathEscape(sessionID), restArgs(request, "sessionId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDeleteSession(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := request.RequireString("sessionId")
		if err != nil || sessionID == "" {
			return errorResult("Error: sessionId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/admin/sessions/"+url.PathEscape(sessionID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetEventSessions(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		eventID, err := request.RequireString("eventId")
		if err != nil || eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/admin/events/"+url.PathEscape(eventID)+"/sessions", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetPublicLineup(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		eventID, err := request.RequireString("eventId")
		if err != nil || eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/public/events/"+url.PathEscape(eventID)+"/lineup", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetEventLineup(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		eventID, err := request.RequireString("eventId")
		if err != nil || eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		params := client.Params{
			"includeMaster": request.GetBool("includeMaster", false),
		}
		body, err := c.Get(ctx, "/admin/events/"+url.PathEscape(eventID)+"/lineup", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetDailyLineup(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		eventID, err := request.RequireString("eventId")
		if err != nil || eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil || date == "" {
			return errorResult("Error: date parameter is required"), nil
		}
		params := client.Params{
			"includeMaster": request.GetBool("includeMaster", false),
		}
		body, err := c.Get(ctx, "/events/"+url.PathEscape(eventID)+"/daily-lineup/"+url.PathEscape(date), params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateDailyLineup(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		eventID, err := request.RequireString("eventId")
		if err != nil || eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil || date == "" {
			return errorResult("Error: date parameter is required"), nil
		}
		args := request.GetArguments()
		lineup, ok := args["lineup"]
		if !ok {
			return errorResult("Error: lineup parameter is required"), nil
		}
		resp, err := c.Do(ctx, http.MethodPut,
			"/events/"+url.PathEscape(eventID)+"/daily-lineup/"+url.PathEscape(date),
			client.RequestOptions{
				Body:   lineup,
				Params: client.Params{"overrideData": request.GetBool("overrideData", false)},
			})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(resp.Data), nil
	}
}

func handlePublishDailyLineup(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		eventID, err := request.RequireString("eventId")
		if err != nil || eventID == "" {
			return errorResult("Error: eventId parameter is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil || date == "" {
			return errorResult("Error: date parameter is required"), nil
		}
		body, err := c.Post(ctx, "/events/"+url.PathEscape(eventID)+"/daily-lineup/"+url.PathEscape(date)+"/publish", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}
