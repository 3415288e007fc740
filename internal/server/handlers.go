package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jungtsi/internal/logging"
	"jungtsi/internal/obstacle"
	"jungtsi/internal/prosperity"
	"jungtsi/internal/report"
	"jungtsi/internal/store"
)

// Error codes owned by the transport layer; the validation codes come
// from the report package.
const (
	codeMissingFields    = "MISSING_FIELDS"
	codeInvalidBody      = "INVALID_BODY"
	codeInvalidEventType = "INVALID_EVENT_TYPE"
	codeInvalidEventDate = "INVALID_EVENT_DATE"
	codeInvalidEventHour = "INVALID_EVENT_HOUR"
	codeNotFound         = "NOT_FOUND"
	codeNoArchive        = "NO_ARCHIVE"
	codeServerError      = "SERVER_ERROR"
)

// calculateRequest uses pointers for the required fields so a missing
// field is distinguishable from a zero value.
type calculateRequest struct {
	BirthYear   *int    `json:"birth_year"`
	CurrentYear *int    `json:"current_year"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	Status      string  `json:"status"`
	// Profession is the legacy alias for status kept for old clients.
	Profession string `json:"profession"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	logger := logging.New("server")

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "request body is not valid JSON")
		return
	}

	var missing []string
	if req.BirthYear == nil {
		missing = append(missing, "birth_year")
	}
	if req.CurrentYear == nil {
		missing = append(missing, "current_year")
	}
	if req.Age == nil {
		missing = append(missing, "age")
	}
	if req.Gender == nil {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, codeMissingFields,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	status := req.Status
	if status == "" {
		status = req.Profession
	}

	rep, err := report.Build(report.Input{
		BirthYear:     *req.BirthYear,
		ReferenceYear: *req.CurrentYear,
		Age:           *req.Age,
		Gender:        strings.ToLower(*req.Gender),
		Status:        strings.ToLower(status),
	})
	if err != nil {
		if ve, ok := report.AsValidation(err); ok {
			writeError(w, http.StatusBadRequest, ve.Code, ve.Error())
			return
		}
		logger.Error("calculate failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeServerError, "internal server error")
		return
	}

	if s.archive != nil {
		rec, err := s.archive.Save(report.Input{
			BirthYear:     *req.BirthYear,
			ReferenceYear: *req.CurrentYear,
			Age:           *req.Age,
			Gender:        strings.ToLower(*req.Gender),
			Status:        strings.ToLower(status),
		}, rep)
		if err != nil {
			// Archiving is best-effort; the computation already succeeded.
			logger.Warn("archive save failed", "error", err)
		} else {
			w.Header().Set("X-Report-ID", rec.ID)
		}
	}

	writeData(w, rep)
}

type prosperityRequest struct {
	EventType *string `json:"event_type"`
	EventDate *string `json:"event_date"`
	EventHour *int    `json:"event_hour"`
}

func (s *Server) handleProsperity(w http.ResponseWriter, r *http.Request) {
	var req prosperityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "request body is not valid JSON")
		return
	}

	var missing []string
	if req.EventType == nil {
		missing = append(missing, "event_type")
	}
	if req.EventDate == nil {
		missing = append(missing, "event_date")
	}
	if req.EventHour == nil {
		missing = append(missing, "event_hour")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, codeMissingFields,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	eventType, err := prosperity.ParseEventType(strings.ToLower(*req.EventType))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidEventType, err.Error())
		return
	}
	eventDate, err := time.Parse("2006-01-02", *req.EventDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidEventDate, "event_date must be YYYY-MM-DD")
		return
	}
	if y := eventDate.Year(); y < report.MinYear || y > report.MaxYear {
		writeError(w, http.StatusBadRequest, codeInvalidEventDate,
			fmt.Sprintf("event year must be between %d and %d", report.MinYear, report.MaxYear))
		return
	}
	if *req.EventHour < 0 || *req.EventHour > 23 {
		writeError(w, http.StatusBadRequest, codeInvalidEventHour, "event_hour must be between 0 and 23")
		return
	}

	assessment, err := prosperity.Assess(eventType, eventDate, *req.EventHour)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidEventType, err.Error())
		return
	}
	writeData(w, assessment)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusNotFound, codeNoArchive, "report archive is not configured")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "limit must be a positive integer")
			return
		}
		limit = n
	}
	recs, err := s.archive.List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeServerError, "failed to list reports")
		return
	}
	writeData(w, recs)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusNotFound, codeNoArchive, "report archive is not configured")
		return
	}
	rec, err := s.archive.Get(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "no report with that id")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeServerError, "failed to load report")
		return
	}
	writeData(w, rec)
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeData(w, map[string]any{
		"system_name":            "Nine Palaces Outer Calculation",
		"version":                s.version,
		"supported_genders":      []obstacle.Gender{obstacle.Male, obstacle.Female},
		"supported_statuses":     []obstacle.Status{obstacle.General, obstacle.Official, obstacle.Monastic, obstacle.LayPractitioner, obstacle.SexWorker},
		"year_range":             map[string]int{"min": report.MinYear, "max": report.MaxYear},
		"age_range":              map[string]int{"min": 0, "max": report.MaxAge},
		"prosperity_event_types": prosperity.EventTypes,
		"obstacle_types": []map[string]string{
			{"code": string(obstacle.Regional), "name": obstacle.Regional.Name()},
			{"code": string(obstacle.Home), "name": obstacle.Home.Name()},
			{"code": string(obstacle.Bedding), "name": obstacle.Bedding.Name()},
			{"code": string(obstacle.Door), "name": obstacle.Door.Name()},
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.version,
	})
}
