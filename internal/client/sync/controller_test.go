package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pvolkovs/staffdesk/internal/client/models"
	"github.com/pvolkovs/staffdesk/internal/logging"
)

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeNotifier struct {
	msgs []string
}

func (f *fakeNotifier) Notify(msg string) { f.msgs = append(f.msgs, msg) }

func noDelete(ctx context.Context, id string) error { return nil }

func TestLoad_ReplacesSnapshotWholesale(t *testing.T) {
	recs := []models.Employee{{ID: "1"}, {ID: "2"}}
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			return recs, nil
		},
		noDelete, &fakeNotifier{}, nopLogger(),
	)

	require.Equal(t, StateIdle, c.State())
	require.NoError(t, c.Load(context.Background(), models.SearchFilter{}))
	require.Equal(t, StateReady, c.State())
	require.Equal(t, recs, c.Snapshot())
}

func TestLoad_FailureKeepsPreviousSnapshot(t *testing.T) {
	n := &fakeNotifier{}
	fail := false
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return []models.Employee{{ID: "1"}}, nil
		},
		noDelete, n, nopLogger(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{}))

	fail = true
	require.Error(t, c.Load(ctx, models.SearchFilter{}))
	require.Equal(t, StateError, c.State())
	require.Equal(t, []models.Employee{{ID: "1"}}, c.Snapshot())
	require.Len(t, n.msgs, 1)
}

func TestLoad_FailureClearsSnapshotWhenConfigured(t *testing.T) {
	n := &fakeNotifier{}
	fail := false
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return []models.Employee{{ID: "1"}}, nil
		},
		noDelete, n, nopLogger(), WithClearOnError(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{Designation: "Engineer"}))
	require.NotEmpty(t, c.Snapshot())

	fail = true
	require.Error(t, c.Load(ctx, models.SearchFilter{Designation: "Engineer"}))
	require.Empty(t, c.Snapshot())
	require.Len(t, n.msgs, 1)
}

func TestMutate_SuccessRefetches(t *testing.T) {
	server := []models.Employee{{ID: "1"}, {ID: "2"}}
	fetches := 0
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			fetches++
			return append([]models.Employee(nil), server...), nil
		},
		noDelete, &fakeNotifier{}, nopLogger(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{}))
	require.Equal(t, 1, fetches)

	// The mutation changes server truth; the snapshot must equal the
	// refetched result, never a locally patched version.
	err := c.Mutate(ctx, func(ctx context.Context) error {
		server = append(server, models.Employee{ID: "3"})
		return nil
	}, "")
	require.NoError(t, err)
	require.Equal(t, 2, fetches)
	require.Equal(t, server, c.Snapshot())
	require.Equal(t, StateReady, c.State())
}

func TestMutate_FailureKeepsSnapshotNoRefetch(t *testing.T) {
	n := &fakeNotifier{}
	fetches := 0
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			fetches++
			return []models.Employee{{ID: "1"}}, nil
		},
		noDelete, n, nopLogger(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{}))

	err := c.Mutate(ctx, func(ctx context.Context) error {
		return errors.New("rejected")
	}, "")
	require.Error(t, err)
	require.Equal(t, 1, fetches)
	require.Equal(t, []models.Employee{{ID: "1"}}, c.Snapshot())
	require.Equal(t, StateError, c.State())
	require.Len(t, n.msgs, 1)
}

func TestConfirmDelete_FiresMutationAndRefetches(t *testing.T) {
	server := []models.Employee{{ID: "1"}, {ID: "2"}}
	var deleted []string
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			return append([]models.Employee(nil), server...), nil
		},
		func(ctx context.Context, id string) error {
			deleted = append(deleted, id)
			kept := server[:0:0]
			for _, e := range server {
				if e.ID != id {
					kept = append(kept, e)
				}
			}
			server = kept
			return nil
		},
		&fakeNotifier{}, nopLogger(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{}))

	c.RequestDelete("2")
	require.NoError(t, c.ConfirmDelete(ctx))

	require.Equal(t, []string{"2"}, deleted)
	require.Equal(t, []models.Employee{{ID: "1"}}, c.Snapshot())
	require.Empty(t, c.PendingDelete())
}

func TestCancelDelete_IssuesZeroCalls(t *testing.T) {
	deletes := 0
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			return []models.Employee{{ID: "1"}}, nil
		},
		func(ctx context.Context, id string) error {
			deletes++
			return nil
		},
		&fakeNotifier{}, nopLogger(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{}))
	before := c.Snapshot()

	c.RequestDelete("1")
	c.CancelDelete()

	require.Zero(t, deletes)
	require.Equal(t, before, c.Snapshot())
	require.ErrorIs(t, c.ConfirmDelete(ctx), ErrNoPendingDelete)
	require.Zero(t, deletes)
}

func TestConfirmDelete_UsesFilterActiveAtConfirmation(t *testing.T) {
	var fetched []models.SearchFilter
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			fetched = append(fetched, f)
			return nil, nil
		},
		noDelete, &fakeNotifier{}, nopLogger(),
	)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, models.SearchFilter{Designation: "Engineer"}))
	c.RequestDelete("1")

	// The active filter changes between the request and the confirmation.
	require.NoError(t, c.Load(ctx, models.SearchFilter{Department: "Sales"}))
	require.NoError(t, c.ConfirmDelete(ctx))

	require.Len(t, fetched, 3)
	require.Equal(t, models.SearchFilter{Department: "Sales"}, fetched[2])
}

func TestLoad_StaleResponseIsDropped(t *testing.T) {
	slowEntered := make(chan struct{})
	release := make(chan struct{})
	c := NewController(
		func(ctx context.Context, f models.SearchFilter) ([]models.Employee, error) {
			if f.Designation == "slow" {
				close(slowEntered)
				<-release
				return []models.Employee{{ID: "stale"}}, nil
			}
			return []models.Employee{{ID: "fresh"}}, nil
		},
		noDelete, &fakeNotifier{}, nopLogger(),
	)
	ctx := context.Background()

	done := make(chan error)
	go func() {
		done <- c.Load(ctx, models.SearchFilter{Designation: "slow"})
	}()
	<-slowEntered

	// A newer query for different criteria resolves first.
	require.NoError(t, c.Load(ctx, models.SearchFilter{Designation: "fresh"}))

	close(release)
	require.NoError(t, <-done)

	// The superseded response must not overwrite the newer snapshot.
	require.Equal(t, []models.Employee{{ID: "fresh"}}, c.Snapshot())
	require.Equal(t, models.SearchFilter{Designation: "fresh"}, c.Filter())
}
