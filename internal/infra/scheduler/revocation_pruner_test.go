package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"uploader/config"
	"uploader/internal/domain/entity"
)

type fakeAuthUsecase struct {
	pruneCalls []time.Time
	pruneErr   error
	deleted    int64
}

func (f *fakeAuthUsecase) Authenticate(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) Logout(context.Context, string) error { return nil }

func (f *fakeAuthUsecase) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func (f *fakeAuthUsecase) PruneRevocations(_ context.Context, now time.Time) (int64, error) {
	f.pruneCalls = append(f.pruneCalls, now)

	return f.deleted, f.pruneErr
}

func newParams(t *testing.T, cfg *config.Config, auth *fakeAuthUsecase) Params {
	return Params{
		Lifecycle:   fxtest.NewLifecycle(t),
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthUsecase: auth,
	}
}

func TestRevocationPruner_Prune(t *testing.T) {
	auth := &fakeAuthUsecase{deleted: 4}
	cfg := &config.Config{Revocation: &config.RevocationConfig{PruneEnabled: true, PruneSchedule: "@daily"}}

	pruner, err := NewRevocationPruner(newParams(t, cfg, auth))
	require.NoError(t, err)
	now := time.Date(2024, time.March, 1, 3, 0, 0, 0, time.UTC)
	pruner.clock = func() time.Time { return now }

	deleted, err := pruner.Prune(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.Equal(t, []time.Time{now}, auth.pruneCalls)
	assert.Len(t, pruner.cron.Entries(), 1)
}

func TestRevocationPruner_PruneError(t *testing.T) {
	auth := &fakeAuthUsecase{pruneErr: errors.New("db down")}
	cfg := &config.Config{Revocation: &config.RevocationConfig{}}

	pruner, err := NewRevocationPruner(newParams(t, cfg, auth))
	require.NoError(t, err)

	_, err = pruner.Prune(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestRevocationPruner_Disabled(t *testing.T) {
	cfg := &config.Config{Revocation: &config.RevocationConfig{PruneEnabled: false, PruneSchedule: "@daily"}}

	pruner, err := NewRevocationPruner(newParams(t, cfg, &fakeAuthUsecase{}))
	require.NoError(t, err)
	assert.Empty(t, pruner.cron.Entries())
}

func TestRevocationPruner_InvalidSchedule(t *testing.T) {
	cfg := &config.Config{Revocation: &config.RevocationConfig{PruneEnabled: true, PruneSchedule: "every tuesday"}}

	_, err := NewRevocationPruner(newParams(t, cfg, &fakeAuthUsecase{}))
	assert.Error(t, err)
}

func TestRevocationPruner_Lifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Revocation: &config.RevocationConfig{PruneEnabled: true, PruneSchedule: "@every 1h"}}
	params := newParams(t, cfg, &fakeAuthUsecase{})
	params.Lifecycle = lc

	_, err := NewRevocationPruner(params)
	require.NoError(t, err)

	lc.RequireStart()
	lc.RequireStop()
}
