package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iamsamuelfraga/mcp-nevent/internal/client"
)

// registerCampaignTools registers the campaign, segment, template, and
// list-membership tools.
func registerCampaignTools(s *server.MCPServer, c *client.Client) {
	s.AddTool(createListCampaignsTool(), handleListCampaigns(c))
	s.AddTool(createGetCampaignTool(), handleGetCampaign(c))
	s.AddTool(createCreateCampaignTool(), handleCreateCampaign(c))
	s.AddTool(createUpdateCampaignTool(), handleUpdateCampaign(c))
	s.AddTool(createDeleteCampaignTool(), handleDeleteCampaign(c))
	s.AddTool(createSendCampaignTool(), handleCampaignAction(c, "send"))
	s.AddTool(createScheduleCampaignTool(), handleScheduleCampaign(c))
	s.AddTool(createPauseCampaignTool(), handleCampaignAction(c, "pause"))
	s.AddTool(createResumeCampaignTool(), handleCampaignAction(c, "resume"))
	s.AddTool(createCancelCampaignTool(), handleCampaignAction(c, "cancel"))
	s.AddTool(createGetCampaignMetricsTool(), handleGetCampaignMetrics(c))
	s.AddTool(createSendTestCampaignTool(), handleSendTestCampaign(c))
	s.AddTool(createDuplicateCampaignTool(), handleDuplicateCampaign(c))
	s.AddTool(createGenerateEmailContentTool(), handleGenerateEmailContent(c))
	s.AddTool(createListSegmentsTool(), handleListSegments(c))
	s.AddTool(createGetSegmentTool(), handleGetSegment(c))
	s.AddTool(createCreateSegmentTool(), handleCreateSegment(c))
	s.AddTool(createUpdateSegmentTool(), handleUpdateSegment(c))
	s.AddTool(createDeleteSegmentTool(), handleDeleteSegment(c))
	s.AddTool(createPreviewSegmentTool(), handlePreviewSegment(c))
	s.AddTool(createExecuteSegmentTool(), handleExecuteSegment(c))
	s.AddTool(createGetSegmentUsersTool(), handleGetSegmentUsers(c))
	s.AddTool(createListEmailTemplatesTool(), handleListEmailTemplates(c))
	s.AddTool(createGetEmailTemplateTool(), handleGetEmailTemplate(c))
	s.AddTool(createCreateEmailTemplateTool(), handleCreateEmailTemplate(c))
	s.AddTool(createUpdateEmailTemplateTool(), handleUpdateEmailTemplate(c))
	s.AddTool(createDeleteEmailTemplateTool(), handleDeleteEmailTemplate(c))
	s.AddTool(createRenderEmailTemplateTool(), handleRenderEmailTemplate(c))
	s.AddTool(createAddUserToListTool(), handleAddUserToList(c))
	s.AddTool(createRemoveUserFromListTool(), handleRemoveUserFromList(c))
}

// --- Campaign tool definitions ---

func createListCampaignsTool() mcp.Tool {
	return mcp.NewTool("list_campaigns",
		mcp.WithDescription("List marketing campaigns with pagination. Supports filtering by status and channel type."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
		mcp.WithString("sort", mcp.Description("Sort expression, e.g. 'createdAt,desc'")),
		mcp.WithString("status", mcp.Description("Filter by status"), mcp.Enum("DRAFT", "SCHEDULED", "SENDING", "SENT", "PAUSED", "CANCELLED")),
		mcp.WithString("type", mcp.Description("Filter by channel type"), mcp.Enum("EMAIL", "PUSH", "SMS", "WHATSAPP")),
	)
}

func createGetCampaignTool() mcp.Tool {
	return mcp.NewTool("get_campaign",
		mcp.WithDescription("Get a single campaign by ID, including its content and targeting."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createCreateCampaignTool() mcp.Tool {
	return mcp.NewTool("create_campaign",
		mcp.WithDescription("Create a new campaign in DRAFT status. Use send_campaign or schedule_campaign to dispatch it."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Campaign name")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Channel type"), mcp.Enum("EMAIL", "PUSH", "SMS", "WHATSAPP")),
		mcp.WithString("subject", mcp.Description("Email subject line (EMAIL campaigns)")),
		mcp.WithString("content", mcp.Description("Message content or HTML body")),
		mcp.WithString("segmentId", mcp.Description("Target segment ID")),
		mcp.WithString("templateId", mcp.Description("Email template ID (EMAIL campaigns)")),
	)
}

func createUpdateCampaignTool() mcp.Tool {
	return mcp.NewTool("update_campaign",
		mcp.WithDescription("Update fields on a draft campaign. Only the supplied fields are changed."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
		mcp.WithString("name", mcp.Description("New campaign name")),
		mcp.WithString("subject", mcp.Description("New subject line")),
		mcp.WithString("content", mcp.Description("New message content")),
		mcp.WithString("segmentId", mcp.Description("New target segment ID")),
		mcp.WithString("templateId", mcp.Description("New template ID")),
	)
}

func createDeleteCampaignTool() mcp.Tool {
	return mcp.NewTool("delete_campaign",
		mcp.WithDescription("Delete a campaign by ID. Only draft campaigns can be deleted."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createSendCampaignTool() mcp.Tool {
	return mcp.NewTool("send_campaign",
		mcp.WithDescription("Send a campaign immediately to its target segment."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createScheduleCampaignTool() mcp.Tool {
	return mcp.NewTool("schedule_campaign",
		mcp.WithDescription("Schedule a campaign to send at a future time."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
		mcp.WithString("scheduledAt", mcp.Required(), mcp.Description("Send time in RFC 3339 format, e.g. '2026-09-01T10:00:00Z'")),
	)
}

func createPauseCampaignTool() mcp.Tool {
	return mcp.NewTool("pause_campaign",
		mcp.WithDescription("Pause a sending or scheduled campaign."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createResumeCampaignTool() mcp.Tool {
	return mcp.NewTool("resume_campaign",
		mcp.WithDescription("Resume a paused campaign."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createCancelCampaignTool() mcp.Tool {
	return mcp.NewTool("cancel_campaign",
		mcp.WithDescription("Cancel a scheduled or paused campaign. Cancelled campaigns cannot be resumed."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createGetCampaignMetricsTool() mcp.Tool {
	return mcp.NewTool("get_campaign_metrics",
		mcp.WithDescription("Get delivery and engagement metrics for a campaign: sent, delivered, opened, clicked, bounced, unsubscribed."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
	)
}

func createSendTestCampaignTool() mcp.Tool {
	return mcp.NewTool("send_test_campaign",
		mcp.WithDescription("Send a test rendering of a campaign to specific recipients without touching the target segment."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID")),
		mcp.WithArray("recipients", mcp.WithStringItems(), mcp.Required(), mcp.Description("Email addresses to send the test to")),
	)
}

func createDuplicateCampaignTool() mcp.Tool {
	return mcp.NewTool("duplicate_campaign",
		mcp.WithDescription("Duplicate a campaign into a new draft."),
		mcp.WithString("campaignId", mcp.Required(), mcp.Description("The campaign ID to duplicate")),
		mcp.WithString("name", mcp.Description("Name for the copy (default: server-generated)")),
	)
}

func createGenerateEmailContentTool() mcp.Tool {
	return mcp.NewTool("generate_email_content",
		mcp.WithDescription("Generate email subject and content with AI from a prompt. Returns {subject, content} ready for create_campaign."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("What the email should be about, e.g. 'Summer sale announcement'")),
		mcp.WithString("tone", mcp.Description("Desired tone, e.g. 'exciting', 'formal', 'friendly'")),
		mcp.WithString("language", mcp.Description("Output language code, e.g. 'en', 'es'")),
	)
}

// --- Segment tool definitions ---

func createListSegmentsTool() mcp.Tool {
	return mcp.NewTool("list_segments",
		mcp.WithDescription("List saved user segments with pagination."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
	)
}

func createGetSegmentTool() mcp.Tool {
	return mcp.NewTool("get_segment",
		mcp.WithDescription("Get a single segment by ID, including its filter criteria."),
		mcp.WithString("segmentId", mcp.Required(), mcp.Description("The segment ID")),
	)
}

func createCreateSegmentTool() mcp.Tool {
	return mcp.NewTool("create_segment",
		mcp.WithDescription("Create a saved segment from filter criteria."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Segment name")),
		mcp.WithString("description", mcp.Description("Human-readable description")),
		mcp.WithObject("criteria", mcp.Required(), mcp.Description("Filter criteria object, e.g. {\"tags\": [\"vip\"], \"lastPurchaseAfter\": \"2026-01-01\"}")),
	)
}

func createUpdateSegmentTool() mcp.Tool {
	return mcp.NewTool("update_segment",
		mcp.WithDescription("Update a segment's name, description, or criteria."),
		mcp.WithString("segmentId", mcp.Required(), mcp.Description("The segment ID")),
		mcp.WithString("name", mcp.Description("New segment name")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithObject("criteria", mcp.Description("Replacement filter criteria object")),
	)
}

func createDeleteSegmentTool() mcp.Tool {
	return mcp.NewTool("delete_segment",
		mcp.WithDescription("Delete a segment by ID. Campaigns referencing it keep their last materialized audience."),
		mcp.WithString("segmentId", mcp.Required(), mcp.Description("The segment ID")),
	)
}

func createPreviewSegmentTool() mcp.Tool {
	return mcp.NewTool("preview_segment",
		mcp.WithDescription("Preview how many users match filter criteria without saving a segment."),
		mcp.WithObject("criteria", mcp.Required(), mcp.Description("Filter criteria object to evaluate")),
	)
}

func createExecuteSegmentTool() mcp.Tool {
	return mcp.NewTool("execute_segment",
		mcp.WithDescription("Re-evaluate a saved segment against the current user base and refresh its membership."),
		mcp.WithString("segmentId", mcp.Required(), mcp.Description("The segment ID")),
	)
}

func createGetSegmentUsersTool() mcp.Tool {
	return mcp.NewTool("get_segment_users",
		mcp.WithDescription("List the users currently in a segment, with pagination."),
		mcp.WithString("segmentId", mcp.Required(), mcp.Description("The segment ID")),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
	)
}

// --- Template tool definitions ---

func createListEmailTemplatesTool() mcp.Tool {
	return mcp.NewTool("list_email_templates",
		mcp.WithDescription("List email templates with pagination."),
		mcp.WithNumber("page", mcp.Description("Page number, zero-based (default: 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default: 20)")),
	)
}

func createGetEmailTemplateTool() mcp.Tool {
	return mcp.NewTool("get_email_template",
		mcp.WithDescription("Get a single email template by ID, including its MJML source."),
		mcp.WithString("templateId", mcp.Required(), mcp.Description("The template ID")),
	)
}

func createCreateEmailTemplateTool() mcp.Tool {
	return mcp.NewTool("create_email_template",
		mcp.WithDescription("Create an email template from MJML source. The server compiles MJML to responsive HTML."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Template name")),
		mcp.WithString("subject", mcp.Description("Default subject line")),
		mcp.WithString("mjml", mcp.Required(), mcp.Description("MJML markup source")),
	)
}

func createUpdateEmailTemplateTool() mcp.Tool {
	return mcp.NewTool("update_email_template",
		mcp.WithDescription("Update an email template's name, subject, or MJML source."),
		mcp.WithString("templateId", mcp.Required(), mcp.Description("The template ID")),
		mcp.WithString("name", mcp.Description("New template name")),
		mcp.WithString("subject", mcp.Description("New default subject")),
		mcp.WithString("mjml", mcp.Description("New MJML markup source")),
	)
}

func createDeleteEmailTemplateTool() mcp.Tool {
	return mcp.NewTool("delete_email_template",
		mcp.WithDescription("Delete an email template by ID."),
		mcp.WithString("templateId", mcp.Required(), mcp.Description("The template ID")),
	)
}

func createRenderEmailTemplateTool() mcp.Tool {
	return mcp.NewTool("render_email_template",
		mcp.WithDescription("Render a template to final HTML with variable substitution. Use to preview before sending."),
		mcp.WithString("templateId", mcp.Required(), mcp.Description("The template ID")),
		mcp.WithObject("variables", mcp.Description("Substitution variables, e.g. {\"firstName\": \"Ann\"}")),
	)
}

// --- List membership tool definitions ---

func createAddUserToListTool() mcp.Tool {
	return mcp.NewTool("add_user_to_list",
		mcp.WithDescription("Add a user to a static mailing list."),
		mcp.WithString("listId", mcp.Required(), mcp.Description("The list ID")),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID to add")),
	)
}

func createRemoveUserFromListTool() mcp.Tool {
	return mcp.NewTool("remove_user_from_list",
		mcp.WithDescription("Remove a user from a static mailing list."),
		mcp.WithString("listId", mcp.Required(), mcp.Description("The list ID")),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The user ID to remove")),
	)
}

// --- Handlers ---

func handleListCampaigns(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page":   request.GetInt("page", 0),
			"size":   request.GetInt("size", 20),
			"sort":   request.GetString("sort", ""),
			"status": request.GetString("status", ""),
			"type":   request.GetString("type", ""),
		}
		body, err := c.Get(ctx, "/campaigns", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/campaigns/"+url.PathEscape(campaignID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreateCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if name := request.GetString("name", ""); name == "" {
			return errorResult("Error: name parameter is required"), nil
		}
		if campaignType := request.GetString("type", ""); campaignType == "" {
			return errorResult("Error: type parameter is required"), nil
		}
		body, err := c.Post(ctx, "/campaigns", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/campaigns/"+url.PathEscape(campaignID), restArgs(request, "campaignId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDeleteCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/campaigns/"+url.PathEscape(campaignID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

// handleCampaignAction covers the bodyless lifecycle transitions:
// send, pause, resume, cancel.
func handleCampaignAction(c *client.Client, action string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		body, err := c.Post(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/"+action, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleScheduleCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		scheduledAt, err := request.RequireString("scheduledAt")
		if err != nil || scheduledAt == "" {
			return errorResult("Error: scheduledAt parameter is required"), nil
		}
		body, err := c.Post(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/schedule",
			map[string]any{"scheduledAt": scheduledAt})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetCampaignMetrics(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/metrics", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleSendTestCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		recipients := request.GetStringSlice("recipients", nil)
		if len(recipients) == 0 {
			return errorResult("Error: recipients parameter is required"), nil
		}
		body, err := c.Post(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/test",
			map[string]any{"recipients": recipients})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDuplicateCampaign(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaignId")
		if err != nil || campaignID == "" {
			return errorResult("Error: campaignId parameter is required"), nil
		}
		body, err := c.Post(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/duplicate",
			bodyOrNil(restArgs(request, "campaignId")))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGenerateEmailContent(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prompt, err := request.RequireString("prompt")
		if err != nil || prompt == "" {
			return errorResult("Error: prompt parameter is required"), nil
		}
		body, err := c.Post(ctx, "/campaigns/generate", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleListSegments(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page": request.GetInt("page", 0),
			"size": request.GetInt("size", 20),
		}
		body, err := c.Get(ctx, "/segments", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetSegment(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		segmentID, err := request.RequireString("segmentId")
		if err != nil || segmentID == "" {
			return errorResult("Error: segmentId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/segments/"+url.PathEscape(segmentID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreateSegment(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if name := request.GetString("name", ""); name == "" {
			return errorResult("Error: name parameter is required"), nil
		}
		body, err := c.Post(ctx, "/segments", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateSegment(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		segmentID, err := request.RequireString("segmentId")
		if err != nil || segmentID == "" {
			return errorResult("Error: segmentId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/segments/"+url.PathEscape(segmentID), restArgs(request, "segmentId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDeleteSegment(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		segmentID, err := request.RequireString("segmentId")
		if err != nil || segmentID == "" {
			return errorResult("Error: segmentId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/segments/"+url.PathEscape(segmentID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handlePreviewSegment(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if _, ok := args["criteria"]; !ok {
			return errorResult("Error: criteria parameter is required"), nil
		}
		body, err := c.Post(ctx, "/segments/preview", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleExecuteSegment(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		segmentID, err := request.RequireString("segmentId")
		if err != nil || segmentID == "" {
			return errorResult("Error: segmentId parameter is required"), nil
		}
		body, err := c.Post(ctx, "/segments/"+url.PathEscape(segmentID)+"/execute", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetSegmentUsers(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		segmentID, err := request.RequireString("segmentId")
		if err != nil || segmentID == "" {
			return errorResult("Error: segmentId parameter is required"), nil
		}
		params := client.Params{
			"page": request.GetInt("page", 0),
			"size": request.GetInt("size", 20),
		}
		body, err := c.Get(ctx, "/segments/"+url.PathEscape(segmentID)+"/users", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleListEmailTemplates(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := client.Params{
			"page": request.GetInt("page", 0),
			"size": request.GetInt("size", 20),
		}
		body, err := c.Get(ctx, "/templates/email", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetEmailTemplate(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templateID, err := request.RequireString("templateId")
		if err != nil || templateID == "" {
			return errorResult("Error: templateId parameter is required"), nil
		}
		body, err := c.Get(ctx, "/templates/email/"+url.PathEscape(templateID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreateEmailTemplate(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if name := request.GetString("name", ""); name == "" {
			return errorResult("Error: name parameter is required"), nil
		}
		if mjml := request.GetString("mjml", ""); mjml == "" {
			return errorResult("Error: mjml parameter is required"), nil
		}
		body, err := c.Post(ctx, "/templates/email", restArgs(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateEmailTemplate(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templateID, err := request.RequireString("templateId")
		if err != nil || templateID == "" {
			return errorResult("Error: templateId parameter is required"), nil
		}
		body, err := c.Put(ctx, "/templates/email/"+url.PathEscape(templateID), restArgs(request, "templateId"))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleDeleteEmailTemplate(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templateID, err := request.RequireString("templateId")
		if err != nil || templateID == "" {
			return errorResult("Error: templateId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/templates/email/"+url.PathEscape(templateID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleRenderEmailTemplate(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templateID, err := request.RequireString("templateId")
		if err != nil || templateID == "" {
			return errorResult("Error: templateId parameter is required"), nil
		}
		body, err := c.Post(ctx, "/templates/email/"+url.PathEscape(templateID)+"/render",
			bodyOrNil(restArgs(request, "templateId")))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleAddUserToList(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID, err := request.RequireString("listId")
		if err != nil || listID == "" {
			return errorResult("Error: listId parameter is required"), nil
		}
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Post(ctx, "/lists/"+url.PathEscape(listID)+"/users/"+url.PathEscape(userID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleRemoveUserFromList(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID, err := request.RequireString("listId")
		if err != nil || listID == "" {
			return errorResult("Error: listId parameter is required"), nil
		}
		userID, err := request.RequireString("userId")
		if err != nil || userID == "" {
			return errorResult("Error: userId parameter is required"), nil
		}
		body, err := c.Delete(ctx, "/lists/"+url.PathEscape(listID)+"/users/"+url.PathEscape(userID))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}
