package api

import (
	"sheetcal/app/tasks"
)

// Handler serves the rendered calendar documents and build statistics.
type Handler struct {
	store     *tasks.Store
	scheduler tasks.TaskSchedulerInterface
	newBuild  func() tasks.TaskInterface
}
