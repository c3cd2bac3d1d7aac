package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iamsamuelfraga/mcp-nevent/internal/client"
)

// registerUserTools registers the user, property, and export tools.
func registerUserTools(s *server.MCPServer, c *client.Client) {
	s.AddTool(createListUsersTool(), handleListUsers(c))
	s.AddTool(createGetUserTool(), handleGetUser(c))
	s.AddTool(createGetUserByEmailTool(), handleGetUserByEmail(c))
	s.AddTool(createCreateUserTool(), handleCreateUser(c))
	s.AddTool(createUpdateUserTool(), handleUpdateUser(c))
	s.AddTool(createDeleteUserTool(), handleDeleteUser(c))
	s.AddTool(createGetUserPurchasesTool(), handleGetUserPurchases(c))
	s.AddTool(createGetUserEventsTool(), handleGetUserEvents(c))
	s.AddTool(createGetCommunicationPreferencesTool(), handleGetCommunicationPreferences(c))
	s.AddTool(createUpdateCommunicationPreferencesTool(), handleUpdateCommunicationPreferences(c))
	s.AddTool(createCountUsersTool(), handleCountUsers(c))
	s.AddTool(createExportUsersTool(), handleExportUsers(c))
	s.AddTool(createListPropertiesTool(), handleListProperties(c))
	s.AddTool(createGetPropertyTool(), handleGetProperty(c))
}

// --- Tool definitions ---

func createListUsersTool() mcp.Tool {
	return mcp.NewTool("list_users",
		mcp.WithDescription("List CRM users with pagination. Supports free-text search and filtering by property."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
		mcp.WithString("sort", mcp.Description("Sort expression, e.g. 'createdAt,desc'")),
		mcp.WithString("search", mcp.Description("Free-text search over name and email")),
		mcp.WithString("propertyId", mcp.Description("Filter to users belonging to a property")),
	)
}

func createGetUserTool() mcp.Tool {
	return mcp.NewTool("get_user",
		mcp.WithDescription("Get a single CRM user by ID, including tags and custom attributes."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
	)
}

func createGetUserByEmailTool() mcp.Tool {
	return mcp.NewTool("get_user_by_email",
		mcp.WithDescription("Look up a CRM user by email address."),
		mcp.WithString("email", mcp.Required(), mcp.Description("The email address to look up")),
	)
}

func createCreateUserTool() mcp.Tool {
	return mcp.NewTool("create_user",
		mcp.WithDescription("Create a new CRM user."),
		mcp.WithString("email", mcp.Required(), mcp.Description("Email address (unique per tenant)")),
		mcp.WithString("name", mcp.Description("Full name")),
		mcp.WithString("phone", mcp.Description("Phone number in E.164 format")),
		mcp.WithString("propertyId", mcp.Description("Property the user belongs to")),
		mcp.WithArray("tags", mcp.WithStringItems(), mcp.Description("Tags to attach to the user")),
	)
}

func createUpdateUserTool() mcp.Tool {
	return mcp.NewTool("update_user",
		mcp.WithDescription("Update fields on an existing CRM user. Only the supplied fields are changed."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
		mcp.WithString("email", mcp.Description("New email address")),
		mcp.WithString("name", mcp.Description("New full name")),
		mcp.WithString("phone", mcp.Description("New phone number")),
		mcp.WithArray("tags", mcp.WithStringItems(), mcp.Description("Replacement tag list")),
	)
}

func createDeleteUserTool() mcp.Tool {
	return mcp.NewTool("delete_user",
		mcp.WithDescription("Delete a CRM user by ID. This is irreversible."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
	)
}

func createGetUserPurchasesTool() mcp.Tool {
	return mcp.NewTool("get_user_purchases",
		mcp.WithDescription("Get a user's purchase history with pagination."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
	)
}

func createGetUserEventsTool() mcp.Tool {
	return mcp.NewTool("get_user_events",
		mcp.WithDescription("Get the events a user has attended or registered for, with pagination."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
	)
}

func createGetCommunicationPreferencesTool() mcp.Tool {
	return mcp.NewTool("get_communication_preferences",
		mcp.WithDescription("Get a user's channel opt-ins (email, push, SMS, WhatsApp)."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
	)
}

func createUpdateCommunicationPreferencesTool() mcp.Tool {
	return mcp.NewTool("update_communication_preferences",
		mcp.WithDescription("Update a user's channel opt-ins. Only the supplied channels are changed."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID")),
		mcp.WithBoolean("email", mcp.Description("Email opt-in")),
		mcp.WithBoolean("push", mcp.Description("Push notification opt-in")),
		mcp.WithBoolean("sms", mcp.Description("SMS opt-in")),
		mcp.WithBoolean("whatsapp", mcp.Description("WhatsApp opt-in")),
	)
}

func createCountUsersTool() mcp.Tool {
	return mcp.NewTool("count_users",
		mcp.WithDescription("Count CRM users, optionally filtered by property."),
		mcp.WithString("propertyId", mcp.Description("Filter to users belonging to a property")),
	)
}

func createExportUsersTool() mcp.Tool {
	return mcp.NewTool("export_users",
		mcp.WithDescription("Export users as CSV or JSON, optionally filtered by property or segment."),
		mcp.WithString("format", mcp.Description("Export format (default: csv)"), mcp.Enum("csv", "json")),
		mcp.WithString("propertyId", mcp.Description("Filter to users belonging to a property")),
		mcp.WithString("segmentId", mcp.Description("Filter to users in a segment")),
	)
}

func createListPropertiesTool() mcp.Tool {
	return mcp.NewTool("list_properties",
		mcp.WithDescription("List properties (venues/brands) with pagination."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
	)
}

func createGetPropertyTool() mcp.Tool {
	return mcp.NewTool("get_property",
		mcp.WithDescription("Get a single property by ID."),
		mcp.WithString("propertyId", mcp.Required(), mcp.Description("The property ID")),
	)
}

// --- Handlers ---

func handleListUsers(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page":       request.GetInt("page", 0),
			"size":       request.GetInt("size", 20),
			"sort":       request.GetString("sort", ""),
			"search":     request.GetString("search", ""),
			"propertyId": request.GetString("propertyId", ""),
		}
		body, err := c.Get(ctx, "/users", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetUser(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/users/"+url.PathEscape(userID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetUserByEmail(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		email, err := request.RequireString("email")
		if err != nil || email == "" {
			return errorResult("Error: email parameter is required"), nil
		}
		body, err := c.Get(ctx, "/users/email/"+url.PathEscape(email), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreateUser(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		email, err := request.RequireString("email")
		if err != nil || email == "" {
			return errorResult("Error: email parameter is required"), nil
		}
		body, err := c.Post(ctx, "/users", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateUser(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/users/"+url.PathEscape(userID), restArgs(request, "userId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDeleteUser(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/users/"+url.PathEscape(userID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetUserPurchases(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		params := client.Params{
			"page": request.GetInt("page", 0),
			"size": request.GetInt("size", 20),
		}
		body, err := c.Get(ctx, "/users/"+url.PathEscape(userID)+"/purchases", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetUserEvents(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		params := client.Params{
			"page": request.GetInt("page", 0),
			"size": request.GetInt("size", 20),
		}
		body, err := c.Get(ctx, "/users/"+url.PathEscape(userID)+"/events", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetCommunicationPreferences(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/users/"+url.PathEscape(userID)+"/communication-preferences", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateCommunicationPreferences(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/users/"+url.PathEscape(userID)+"/communication-preferences", restArgs(request, "userId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCountUsers(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"propertyId": request.GetString("propertyId", ""),
		}
		body, err := c.Get(ctx, "/users/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleExportUsers(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"format":     request.GetString("format", "csv"),
			"propertyId": request.GetString("propertyId", ""),
			"segmentId":  request.GetString("segmentId", ""),
		}
		body, err := c.Get(ctx, "/users/export", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleListProperties(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page": request.GetInt("page", 0),
			"size": request.GetInt("size", 20),
		}
		body, err := c.Get(ctx, "/properties", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetProperty(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		propertyID, err := request.RequireString("propertyId")
		if err != nil || propertyID == "" {
			return errorResult("Error: propertyId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/properties/"+url.PathEscape(propertyID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}
