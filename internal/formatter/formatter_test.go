package formatter

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func sampleExport() *ListExport {
	return &ListExport{
		List: models.CustomList{
			ListID:      1,
			Name:        "Summer Reading",
			Description: "beach picks",
			IsPublic:    true,
		},
		Books: []models.Book{
			{GoogleBookID: "g1", Title: "Dune", Authors: "Frank Herbert", Genres: []string{"SF"}, AverageRatingAPI: 4.5},
			{GoogleBookID: "g2", Title: "Piranesi", Authors: "Susanna Clarke"},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleExport())
	if err != nil {
		t.Fatalf("csv export failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[1][1] != "Dune" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(sampleExport())
	if err != nil {
		t.Fatalf("markdown export failed: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "# Summer Reading") {
		t.Error("expected list name heading")
	}
	if !strings.Contains(text, "Dune") || !strings.Contains(text, "Piranesi") {
		t.Error("expected every book in the output")
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleExport())
	if err != nil {
		t.Fatalf("text export failed: %v", err)
	}
	if !strings.Contains(string(data), "Summer Reading") {
		t.Error("expected list name in text output")
	}
}

func TestWriteExportFormats(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"csv", ".csv"},
		{"markdown", ".md"},
		{"txt", ".txt"},
		{"json", ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			base := filepath.Join(t.TempDir(), "list_1")

			path, err := WriteExport(sampleExport(), tt.format, base)
			if err != nil {
				t.Fatalf("write failed: %v", err)
			}
			if filepath.Ext(path) != tt.ext {
				t.Errorf("expected extension %s, got %s", tt.ext, filepath.Ext(path))
			}
			tu.AssertFileExists(t, path)
		})
	}
}

func TestWriteExportUnknownFormatFallsBackToJSON(t *testing.T) {
	base := filepath.Join(t.TempDir(), "list_1")

	path, err := WriteExport(sampleExport(), "yaml", base)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Ext(path) != ".json" {
		t.Errorf("expected json fallback, got %s", path)
	}
}
