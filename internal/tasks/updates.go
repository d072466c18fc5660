package tasks

import "fmt"

// ProgressPhase identifies the stage of a running export.
type ProgressPhase int

const (
	FetchLists ProgressPhase = iota
	ResolveBooks
	WriteFiles
)

// ProgressUpdate is a point-in-time report sent to the progress channel.
type ProgressUpdate struct {
	Phase   ProgressPhase
	Step    int
	Total   int
	Message string
}

func fetchListsUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: FetchLists, Message: "Fetching custom lists..."}
}

func resolveUpdate(step, total int, listName string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveBooks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Resolving books for '%s'", listName),
	}
}

func writeUpdate(step, total int, listName string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteFiles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exported '%s'", listName),
	}
}

func writeFailedUpdate(step, total int, listName string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteFiles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to export '%s': %v", listName, err),
	}
}
