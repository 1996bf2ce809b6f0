package client

import (
	"sort"

	"github.com/QuickTask/QT-Backend/internal/tasks"
)

// sortTasksByStatus puts in-progress tasks ahead of completed ones. The sort
// must be stable: tasks that share a status keep their original relative
// order instead of being reshuffled on every refresh.
func sortTasksByStatus(list []tasks.Task) []tasks.Task {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Status == tasks.StatusInProgress && list[j].Status != tasks.StatusInProgress
	})
	return list
}
