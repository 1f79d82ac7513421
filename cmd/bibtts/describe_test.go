package main

import (
	"io"
	"strings"
	"testing"
)

func TestRunDescribeCommand_PrintsAllRecords(t *testing.T) {
	var out strings.Builder

	if err := runDescribeCommand(writeRenderFixture(t), nil, &out); err != nil {
		t.Fatalf("runDescribeCommand: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d: %q", len(lines), out.String())
	}

	if !strings.HasPrefix(lines[0], "smith2020: In 2020, John Smith published a paper entitled: A Study of Things.") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[0], "This was published in Journal of Useful Results.") {
		t.Errorf("first line misses the venue sentence: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "doe2019: In 2019, Jane Doe published a paper entitled: Another Work.") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestRunDescribeCommand_KeyFilter(t *testing.T) {
	var out strings.Builder

	if err := runDescribeCommand(writeRenderFixture(t), []string{"doe2019"}, &out); err != nil {
		t.Fatalf("runDescribeCommand: %v", err)
	}

	if strings.Contains(out.String(), "smith2020") {
		t.Errorf("unselected record in output: %q", out.String())
	}
	if !strings.Contains(out.String(), "doe2019: ") {
		t.Errorf("selected record missing from output: %q", out.String())
	}
}

func TestRunDescribeCommand_UnknownKey(t *testing.T) {
	err := runDescribeCommand(writeRenderFixture(t), []string{"missing"}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), `unknown record key "missing"`) {
		t.Fatalf("expected unknown key error, got: %v", err)
	}
}

func TestRunDescribeCommand_MissingFile(t *testing.T) {
	err := runDescribeCommand("/nonexistent/refs.bib", nil, io.Discard)
	if err == nil {
		t.Fatal("expected error for missing bibliography file")
	}
}
