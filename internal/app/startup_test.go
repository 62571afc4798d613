package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSequencer_RunsTasksInOrder(t *testing.T) {
	var order []string
	task := func(name string) StartupTask {
		return StartupTask{Name: name, Run: func(ctx context.Context) error {
			order = append(order, name)
			return nil
		}}
	}

	seq := NewSequencer(testLogger(), task("superuser"), task("menus"))
	require.NoError(t, seq.Run(context.Background()))

	assert.Equal(t, []string{"superuser", "menus"}, order)
}

func TestSequencer_FirstFailureHaltsSequence(t *testing.T) {
	boom := errors.New("database unreachable")
	menuCalls := 0

	seq := NewSequencer(testLogger(),
		StartupTask{Name: "ensure superuser", Run: func(ctx context.Context) error {
			return boom
		}},
		StartupTask{Name: "ensure baseline menus", Run: func(ctx context.Context) error {
			menuCalls++
			return nil
		}},
	)

	err := seq.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ensure superuser")
	assert.Zero(t, menuCalls, "a later task must not run after a failure")
}

func TestSequencer_SecondFailureIsFatal(t *testing.T) {
	boom := errors.New("menu seed failed")

	seq := NewSequencer(testLogger(),
		StartupTask{Name: "ensure superuser", Run: func(ctx context.Context) error {
			return nil
		}},
		StartupTask{Name: "ensure baseline menus", Run: func(ctx context.Context) error {
			return boom
		}},
	)

	err := seq.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestSequencer_NoTasks(t *testing.T) {
	assert.NoError(t, NewSequencer(testLogger()).Run(context.Background()))
}
