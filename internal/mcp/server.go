// Package mcp exposes the calculator as MCP tools over stdio, so
// agent hosts can call the pipeline directly. All tools are stateless;
// there are no sessions to manage.
package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"jungtsi/internal/cycle"
	"jungtsi/internal/mewa"
	"jungtsi/internal/obstacle"
	"jungtsi/internal/prosperity"
	"jungtsi/internal/report"
)

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server
	version   string
}

// NewServer creates an MCP server with the calculation tools registered.
func NewServer(version string) *Server {
	s := &Server{version: version}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "jungtsi", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves over the given transport until ctx is cancelled.
func (s *Server) Run(ctx context.Context, t sdkmcp.Transport) error {
	return s.MCPServer.Run(ctx, t)
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "calculate_profile",
		Description: "Resolve a Gregorian year to its sexagenary sign and the three Mewa numbers (Life, Body, Power).",
	}, s.handleCalculateProfile)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_obstacles",
		Description: "Compute the full obstacle report for a birth year against a reference year, given age, gender and status.",
	}, s.handleAnalyzeObstacles)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "assess_prosperity",
		Description: "Assess the auspiciousness of an event from its type, date (YYYY-MM-DD) and hour (0-23).",
	}, s.handleAssessProsperity)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "system_info",
		Description: "Describe the supported input domains: year and age ranges, genders, statuses, event types, obstacle kinds.",
	}, s.handleSystemInfo)
}

// --- Tool input/output types ---

type calculateProfileInput struct {
	Year int `json:"year" jsonschema:"Gregorian year, 1900-2100"`
}

type calculateProfileOutput struct {
	Profile cycle.Profile `json:"profile"`
	Label   string        `json:"label"`
	Mewas   mewa.Profile  `json:"mewas"`
}

type analyzeObstaclesInput struct {
	BirthYear   int    `json:"birth_year" jsonschema:"subject's birth year, 1900-2100"`
	CurrentYear int    `json:"current_year" jsonschema:"reference year to evaluate against, 1900-2100"`
	Age         int    `json:"age" jsonschema:"subject's age, 0-150"`
	Gender      string `json:"gender" jsonschema:"male or female"`
	Status      string `json:"status,omitempty" jsonschema:"general, official, monastic, lay_practitioner or sex_worker (default general)"`
}

type assessProsperityInput struct {
	EventType string `json:"event_type" jsonschema:"one of the prosperity event types (see system_info)"`
	EventDate string `json:"event_date" jsonschema:"event date as YYYY-MM-DD"`
	EventHour int    `json:"event_hour" jsonschema:"hour of the event, 0-23"`
}

type systemInfoOutput struct {
	SystemName    string                 `json:"system_name"`
	Version       string                 `json:"version"`
	YearRange     [2]int                 `json:"year_range"`
	AgeRange      [2]int                 `json:"age_range"`
	Genders       []obstacle.Gender      `json:"genders"`
	Statuses      []obstacle.Status      `json:"statuses"`
	EventTypes    []prosperity.EventType `json:"event_types"`
	ObstacleKinds []string               `json:"obstacle_kinds"`
}

// --- Tool handlers ---

func (s *Server) handleCalculateProfile(_ context.Context, _ *sdkmcp.CallToolRequest, input calculateProfileInput) (*sdkmcp.CallToolResult, calculateProfileOutput, error) {
	if input.Year < report.MinYear || input.Year > report.MaxYear {
		return nil, calculateProfileOutput{}, fmt.Errorf("year must be between %d and %d", report.MinYear, report.MaxYear)
	}
	profile := cycle.Resolve(input.Year)
	return nil, calculateProfileOutput{
		Profile: profile,
		Label:   profile.Label(),
		Mewas:   mewa.FromPosition(profile.Position),
	}, nil
}

func (s *Server) handleAnalyzeObstacles(_ context.Context, _ *sdkmcp.CallToolRequest, input analyzeObstaclesInput) (*sdkmcp.CallToolResult, report.Report, error) {
	rep, err := report.Build(report.Input{
		BirthYear:     input.BirthYear,
		ReferenceYear: input.CurrentYear,
		Age:           input.Age,
		Gender:        input.Gender,
		Status:        input.Status,
	})
	if err != nil {
		return nil, report.Report{}, fmt.Errorf("analyze_obstacles: %w", err)
	}
	return nil, *rep, nil
}

func (s *Server) handleAssessProsperity(_ context.Context, _ *sdkmcp.CallToolRequest, input assessProsperityInput) (*sdkmcp.CallToolResult, prosperity.Assessment, error) {
	var none prosperity.Assessment
	eventType, err := prosperity.ParseEventType(input.EventType)
	if err != nil {
		return nil, none, err
	}
	eventDate, err := time.Parse("2006-01-02", input.EventDate)
	if err != nil {
		return nil, none, fmt.Errorf("event_date must be YYYY-MM-DD")
	}
	if y := eventDate.Year(); y < report.MinYear || y > report.MaxYear {
		return nil, none, fmt.Errorf("event year must be between %d and %d", report.MinYear, report.MaxYear)
	}
	assessment, err := prosperity.Assess(eventType, eventDate, input.EventHour)
	if err != nil {
		return nil, none, err
	}
	return nil, *assessment, nil
}

func (s *Server) handleSystemInfo(_ context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, systemInfoOutput, error) {
	kinds := make([]string, 0, len(obstacle.Kinds))
	for _, k := range obstacle.Kinds {
		kinds = append(kinds, fmt.Sprintf("%s (%s)", k, k.Name()))
	}
	return nil, systemInfoOutput{
		SystemName: "Nine Palaces Outer Calculation",
		Version:    s.version,
		YearRange:  [2]int{report.MinYear, report.MaxYear},
		AgeRange:   [2]int{0, report.MaxAge},
		Genders:    []obstacle.Gender{obstacle.Male, obstacle.Female},
		Statuses: []obstacle.Status{
			obstacle.General, obstacle.Official, obstacle.Monastic,
			obstacle.LayPractitioner, obstacle.SexWorker,
		},
		EventTypes:    prosperity.EventTypes,
		ObstacleKinds: kinds,
	}, nil
}
