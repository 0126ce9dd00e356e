// Package mcp exposes the tracking engine to LLM clients over the Model
// Context Protocol, mirroring the REST surface as tools and resources.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/liftplan/internal/tracker"
)

// New creates an MCP server with all tools and resources registered.
func New(svc *tracker.Service, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftPlan workout tracking server. Query the training program, today's workout, session history and adherence stats, or log a completed session."),
	)

	h := &handlers{svc: svc, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetTodayWorkout, Handler: h.getTodayWorkout},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetWeeklyStats, Handler: h.getWeeklyStats},
		server.ServerTool{Tool: toolGetWorkoutStats, Handler: h.getWorkoutStats},
		server.ServerTool{Tool: toolGetWorkoutHistory, Handler: h.getWorkoutHistory},
		server.ServerTool{Tool: toolLogWorkoutSession, Handler: h.logWorkoutSession},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resToday, Handler: h.todayResource},
		server.ServerResource{Resource: resProgram, Handler: h.programResource},
		server.ServerResource{Resource: resWeeklySchedule, Handler: h.scheduleResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	svc *tracker.Service
	log *slog.Logger
}

// --- Resource definitions ---

var resToday = mcp.NewResource(
	"liftplan://today",
	"Today's Workout",
	mcp.WithResourceDescription("The resolved workout for today: rest day or exercise list with A/B variant and duration estimate"),
	mcp.WithMIMEType("application/json"),
)

var resProgram = mcp.NewResource(
	"liftplan://program",
	"Training Program",
	mcp.WithResourceDescription("The active training program: frequency, split type and exercise lists"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklySchedule = mcp.NewResource(
	"liftplan://weekly_schedule",
	"Weekly Schedule",
	mcp.WithResourceDescription("The current week's day-by-day schedule with completion flags"),
	mcp.WithMIMEType("application/json"),
)

// --- Resource handlers ---

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) todayResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workout := h.svc.TodayWorkout(ctx)
	if workout == nil {
		return jsonResource(req.Params.URI, map[string]any{"program": nil})
	}
	return jsonResource(req.Params.URI, map[string]any{
		"workout":           workout,
		"estimatedDuration": tracker.EstimateDuration(workout.Exercises),
	})
}

func (h *handlers) programResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.svc.Program(ctx))
}

func (h *handlers) scheduleResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.svc.Schedule(ctx))
}
