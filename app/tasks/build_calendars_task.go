package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"sheetcal/app/calendar"
	"sheetcal/app/ics"
	"sheetcal/app/output"
	"sheetcal/app/source"
)

var _ TaskInterface = (*BuildCalendarsTask)(nil)

// BuildCalendarsTask runs the whole pipeline once: read rows, assemble
// events, partition by category, render every feed, write the documents,
// publish the result to the store. Any error aborts the run before the
// store or any file is touched; dirty rows are counted, not errors.
type BuildCalendarsTask struct {
	Task
	rowSource   source.RowSource
	assembler   *calendar.Assembler
	partitioner *calendar.Partitioner
	renderer    *ics.Renderer
	writer      *output.Writer
	store       *Store
	meta        ics.Calendar
}

func NewBuildCalendarsTask(rowSource source.RowSource, assembler *calendar.Assembler,
	partitioner *calendar.Partitioner, renderer *ics.Renderer, writer *output.Writer,
	store *Store, meta ics.Calendar) *BuildCalendarsTask {
	return &BuildCalendarsTask{
		Task:        NewTask(TaskTypeBuildCalendars),
		rowSource:   rowSource,
		assembler:   assembler,
		partitioner: partitioner,
		renderer:    renderer,
		writer:      writer,
		store:       store,
		meta:        meta,
	}
}

func (t *BuildCalendarsTask) Execute(ctx context.Context) error {
	rows, err := t.rowSource.Read()
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	events, stats := t.assembler.Run(rows)

	feeds, err := t.partitioner.Run(events)
	if err != nil {
		return fmt.Errorf("failed to partition events: %w", err)
	}

	// Feeds are independent pure functions of their event subset, so they
	// render in parallel; results are collected before anything is written.
	docs := make([]Document, len(feeds))
	errs := make([]error, len(feeds))
	var wg sync.WaitGroup
	for i, feed := range feeds {
		wg.Add(1)
		go func(i int, feed calendar.Feed) {
			defer wg.Done()

			cal := t.meta
			if !feed.Combined {
				cal.Name = fmt.Sprintf("%s: %s", t.meta.Name, feed.Name)
			}

			body, err := t.renderer.Run(cal, feed.Events)
			if err != nil {
				errs[i] = fmt.Errorf("failed to render %s: %w", feed.Slug, err)
				return
			}

			docs[i] = Document{
				Name:     cal.Name,
				Slug:     feed.Slug,
				Body:     body,
				Events:   len(feed.Events),
				Combined: feed.Combined,
			}
		}(i, feed)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range docs {
		path, err := t.writer.Run(docs[i].Slug, docs[i].Body)
		if err != nil {
			return err
		}
		docs[i].Path = path
	}

	t.store.Update(docs, *stats)

	slog.Info("Calendars built",
		"documents", len(docs),
		"rows", stats.Total,
		"events", stats.Built,
		"dropped_no_title", stats.DroppedNoTitle,
		"dropped_bad_date", stats.DroppedBadDate,
		"dropped_bad_time", stats.DroppedBadTime,
		"duration", t.GetDuration().String())

	return nil
}
