package domain

// TaskStats is an aggregate view over a set of tasks.
type TaskStats struct {
	Total      int
	Completed  int
	Pending    int
	MostRecent *Task
	Oldest     *Task
}

// ComputeStats folds over tasks in order. Extremum comparisons are strict,
// so on equal CreatedAt values the earliest task in the slice wins.
// The returned extremum tasks are copies; both are nil for an empty slice.
func ComputeStats(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}

	var newest, oldest *Task
	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			stats.Completed++
		}
		if newest == nil || t.CreatedAt.After(newest.CreatedAt) {
			newest = t
		}
		if oldest == nil || t.CreatedAt.Before(oldest.CreatedAt) {
			oldest = t
		}
	}
	stats.Pending = stats.Total - stats.Completed

	if newest != nil {
		c := *newest
		stats.MostRecent = &c
	}
	if oldest != nil {
		c := *oldest
		stats.Oldest = &c
	}

	return stats
}
