package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"jungtsi/internal/report"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVerifyCommand(t *testing.T) {
	out, err := execRoot(t, "verify")
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All checks passed.") {
		t.Errorf("unexpected verify output:\n%s", out)
	}
}

func TestCalculateCommand_JSON(t *testing.T) {
	out, err := execRoot(t, "calculate",
		"--birth-year", "1984", "--current-year", "2026",
		"--age", "42", "--gender", "male", "--output", "json")
	if err != nil {
		t.Fatalf("calculate: %v\n%s", err, out)
	}
	var rep report.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if rep.SubjectLabel != "Wood-Yang-Rat" {
		t.Errorf("subject label = %q", rep.SubjectLabel)
	}
}

func TestCalculateCommand_RejectsBadInput(t *testing.T) {
	out, err := execRoot(t, "calculate",
		"--birth-year", "1776", "--current-year", "2026",
		"--age", "42", "--gender", "male")
	if err == nil {
		t.Fatalf("expected validation error, got:\n%s", out)
	}
	if ve, ok := report.AsValidation(err); !ok || ve.Code != report.CodeInvalidBirthYear {
		t.Errorf("error = %v, want %s", err, report.CodeInvalidBirthYear)
	}
}

func TestForecastCommand(t *testing.T) {
	out, err := execRoot(t, "forecast",
		"--birth-year", "1984", "--from", "2026", "--to", "2030",
		"--age", "42", "--gender", "male")
	if err != nil {
		t.Fatalf("forecast: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2030") {
		t.Errorf("span end missing from output:\n%s", out)
	}
}

func TestHistoryCommand_EmptyArchive(t *testing.T) {
	out, err := execRoot(t, "history", "--db", filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No archived reports.") {
		t.Errorf("unexpected history output:\n%s", out)
	}
}
