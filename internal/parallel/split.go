// Package parallel provides the work-splitting arithmetic for the
// sampling workers.
package parallel

// SplitBudget divides a total sample budget evenly across workers.
// Each worker receives total/workers samples (integer division), so up
// to workers-1 samples of the budget are dropped. Callers that care
// about the exact total should round it to a multiple of the worker
// count.
func SplitBudget(total, workers int) []int {
	if workers < 1 {
		workers = 1
	}
	per := total / workers
	chunks := make([]int, workers)
	for i := range chunks {
		chunks[i] = per
	}
	return chunks
}
