package app

import (
	"context"
	"fmt"
	"log/slog"
)

// StartupTask is a one-time initialization step run before the server
// accepts requests. Tasks are expected to be create-if-absent operations,
// safe to run again after a failed start.
type StartupTask struct {
	Name string
	Run  func(ctx context.Context) error
}

// Sequencer runs startup tasks strictly in order. A task only starts once
// its predecessor completed; the first failure aborts the sequence and is
// treated as fatal by the caller. There is no retry and no partial-success
// mode.
type Sequencer struct {
	logger *slog.Logger
	tasks  []StartupTask
}

// NewSequencer creates a sequencer over the given ordered task list.
func NewSequencer(logger *slog.Logger, tasks ...StartupTask) *Sequencer {
	return &Sequencer{
		logger: logger.With(slog.String("component", "startup")),
		tasks:  tasks,
	}
}

// Run executes the tasks in order, halting on the first failure.
func (s *Sequencer) Run(ctx context.Context) error {
	for _, task := range s.tasks {
		s.logger.InfoContext(ctx, "running startup task", slog.String("task", task.Name))
		if err := task.Run(ctx); err != nil {
			s.logger.ErrorContext(ctx, "startup task failed",
				slog.String("task", task.Name),
				slog.String("error", err.Error()))
			return fmt.Errorf("startup task %q: %w", task.Name, err)
		}
	}
	return nil
}
