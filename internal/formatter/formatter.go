// package formatter renders book collections to CSV, Markdown, and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// ListExport pairs a custom list with its fully resolved books.
type ListExport struct {
	List  models.CustomList
	Books []models.Book
}

// ExportToCSV converts a ListExport to CSV with columns: GoogleBookID, Title, Authors, Genres, Rating
func ExportToCSV(export *ListExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"GoogleBookID", "Title", "Authors", "Genres", "Rating"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, book := range export.Books {
		rating := ""
		if book.AverageRatingAPI != 0 {
			rating = strconv.FormatFloat(book.AverageRatingAPI, 'f', 1, 64)
		}
		record := []string{
			book.GoogleBookID,
			book.Title,
			book.Authors,
			strings.Join(book.Genres, "; "),
			rating,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a ListExport to Markdown
func ExportToMarkdown(export *ListExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.List.Name))

	if export.List.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", export.List.Description))
	}

	buf.WriteString(fmt.Sprintf("**Books**: %d\n", len(export.Books)))
	buf.WriteString(fmt.Sprintf("**Visibility**: %s\n\n", visibility(export.List.IsPublic)))

	buf.WriteString("## Books\n\n")
	for i, book := range export.Books {
		genrePart := ""
		if len(book.Genres) > 0 {
			genrePart = fmt.Sprintf(" (%s)", strings.Join(book.Genres, ", "))
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, book.Authors, book.Title, genrePart))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a ListExport to plain text
func ExportToText(export *ListExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("List: %s\n", export.List.Name))
	if export.List.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", export.List.Description))
	}
	buf.WriteString(fmt.Sprintf("Books: %d\n\n", len(export.Books)))

	for i, book := range export.Books {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, book.Authors, book.Title))
	}

	return buf.Bytes(), nil
}

// WriteExport renders a list in the requested format ("csv", "markdown",
// "txt", or "json" by default) and writes it under baseFilepath with the
// matching extension. Returns the file written.
func WriteExport(export *ListExport, format, baseFilepath string) (string, error) {
	var (
		data []byte
		ext  string
		err  error
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(export)
		ext = ".csv"
	case "markdown":
		data, err = ExportToMarkdown(export)
		ext = ".md"
	case "txt":
		data, err = ExportToText(export)
		ext = ".txt"
	default:
		data, err = shared.MarshalJSON(export, true)
		ext = ".json"
	}
	if err != nil {
		return "", fmt.Errorf("failed to render %s export: %w", format, err)
	}

	path := baseFilepath + ext
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func visibility(public bool) string {
	if public {
		return "Public"
	}
	return "Private"
}
