package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/tracker"
)

// --- Tool definitions ---

var toolGetTodayWorkout = mcp.NewTool("get_today_workout",
	mcp.WithDescription("Resolve today's workout from the active program: rest day, or the exercise list with the A/B variant and an estimated duration in minutes. Returns null when no program is configured."),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get the active training program: weekly frequency, split type (single or alternating A/B) and exercise ids."),
)

var toolGetWeeklyStats = mcp.NewTool("get_weekly_stats",
	mcp.WithDescription("Adherence for the current week: planned vs completed workout days, progress percentage, total duration and sets, and this week's sessions."),
)

var toolGetWorkoutStats = mcp.NewTool("get_workout_stats",
	mcp.WithDescription("Lifetime statistics over the session ledger: totals, average duration, current and longest streaks, and the five most-trained exercises."),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("The session ledger, newest first. The ledger keeps at most the 100 most recent sessions."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions to return. Defaults to all retained sessions.")),
)

var toolLogWorkoutSession = mcp.NewTool("log_workout_session",
	mcp.WithDescription("Record a workout session in the ledger and mark the matching schedule day completed."),
	mcp.WithString("session", mcp.Required(), mcp.Description(`Session as JSON: {"date":"RFC3339","duration":minutes,"completed":bool,"exercises":[{"exerciseId":n,"type":"strength|cardio","sets":[...],"cardioSessions":[...]}]}`)),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog exercises, optionally filtered by category (e.g. Chest, Back, Legs, Shoulders, Arms, Core, Cardio)."),
	mcp.WithString("category", mcp.Description("Category filter. Omit for the full catalog.")),
)

// --- Tool handlers ---

func (h *handlers) getTodayWorkout(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workout := h.svc.TodayWorkout(ctx)
	if workout == nil {
		return mcp.NewToolResultText("null"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"workout":           workout,
		"estimatedDuration": tracker.EstimateDuration(workout.Exercises),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	program := h.svc.Program(ctx)
	if program == nil {
		return mcp.NewToolResultText("null"), nil
	}
	result, err := mcp.NewToolResultJSON(program)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.svc.WeeklyStats(ctx))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.svc.Stats(ctx))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history := h.svc.History(ctx)
	if limit := req.GetInt("limit", 0); limit > 0 && limit < len(history) {
		history = history[:limit]
	}
	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logWorkoutSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("session")
	if err != nil {
		return mcp.NewToolResultError("session parameter is required"), nil
	}

	var session models.WorkoutSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return mcp.NewToolResultError("invalid session JSON: " + err.Error()), nil
	}

	if err := h.svc.SaveSession(ctx, session); err != nil {
		h.log.Error("mcp log_workout_session", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("session saved"), nil
}

func (h *handlers) listExercises(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var list []catalog.Exercise
	if category := req.GetString("category", ""); category != "" {
		list = catalog.ByCategory(category)
	} else {
		list = catalog.All()
	}
	result, err := mcp.NewToolResultJSON(list)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
