package mcp

import (
	"log/slog"
	"strconv"

	"github.com/claude/racecoach/internal/coach"
	"github.com/claude/racecoach/internal/taxonomy"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered. The
// coach may be nil, in which case generate_plan reports itself unavailable
// and only the pure validation/conflict tools plus stored-data tools work.
func New(ds DataSource, c *coach.Coach, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RaceCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RaceCoach training-plan safety engine. Detect constraint conflicts before generating, validate candidate weeks against hard safety caps, and browse accepted plans and the validation audit log."),
	)

	h := &handlers{ds: ds, coach: c, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolDetectConflicts, Handler: h.detectConflicts},
		server.ServerTool{Tool: toolValidatePlan, Handler: h.validatePlan},
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGetSavedPlans, Handler: h.getSavedPlans},
		server.ServerTool{Tool: toolGetValidationHistory, Handler: h.getValidationHistory},
	)

	s.AddResources(
		server.ServerResource{Resource: resStationCatalog, Handler: h.stationCatalog},
		server.ServerResource{Resource: resSafetyCaps, Handler: h.safetyCaps},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds    DataSource
	coach *coach.Coach
	log   *slog.Logger
}

// --- Resource definitions ---

var resStationCatalog = mcp.NewResource(
	"racecoach://stations",
	"Station Catalog",
	mcp.WithResourceDescription("The eight fixed race stations in race order"),
	mcp.WithMIMEType("application/json"),
)

var resSafetyCaps = mcp.NewResource(
	"racecoach://safety_caps",
	"Safety Caps",
	mcp.WithResourceDescription("Hard per-experience-level safety ceilings the validator enforces"),
	mcp.WithMIMEType("application/json"),
)

func stationCatalogDoc() []map[string]string {
	out := make([]map[string]string, 0, len(taxonomy.AllStations))
	for i, st := range taxonomy.AllStations {
		out = append(out, map[string]string{
			"id":    string(st),
			"name":  st.DisplayName(),
			"order": strconv.Itoa(i + 1),
		})
	}
	return out
}
