package sync

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalops/sigconsole/internal/client/api"
	"github.com/signalops/sigconsole/internal/models"
	pkgapi "github.com/signalops/sigconsole/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func boolPtr(b bool) *bool { return &b }

func TestFetchAll(t *testing.T) {
	gw := &GatewayMock{
		ListSignalsFunc: func(ctx context.Context) ([]models.Signal, error) {
			return []models.Signal{{ID: 1, Modulation: "FM", LockVersion: 0}}, nil
		},
		ListAssetsFunc: func(ctx context.Context) ([]models.Asset, error) {
			return []models.Asset{{ID: 2, Name: "array-a", SignalIDs: []int64{1}}}, nil
		},
	}
	s := NewService(gw, testLogger())

	cols, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, cols.Signals, 1)
	require.Len(t, cols.Assets, 1)
	assert.Len(t, gw.ListSignalsCalls(), 1)
	assert.Len(t, gw.ListAssetsCalls(), 1)

	require.NotNil(t, cols.SignalByID(1))
	assert.Nil(t, cols.SignalByID(99), "stale lookups miss silently")
	require.NotNil(t, cols.AssetByID(2))
	assert.Nil(t, cols.AssetByID(99))
}

func TestFetchAll_PartialFailure(t *testing.T) {
	listErr := errors.New("boom")
	gw := &GatewayMock{
		ListSignalsFunc: func(ctx context.Context) ([]models.Signal, error) {
			return nil, listErr
		},
		ListAssetsFunc: func(ctx context.Context) ([]models.Asset, error) {
			return []models.Asset{}, nil
		},
	}
	s := NewService(gw, testLogger())

	_, err := s.FetchAll(context.Background())
	require.ErrorIs(t, err, listErr)
}

func TestUpdateSignal_ReplacesTokenInPlace(t *testing.T) {
	gw := &GatewayMock{
		UpdateSignalFunc: func(ctx context.Context, id int64, req pkgapi.SignalUpdate) (*pkgapi.UpdateResponse, error) {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, int64(3), req.LockVersion)
			return &pkgapi.UpdateResponse{LockVersion: 4, Updated: boolPtr(true)}, nil
		},
	}
	s := NewService(gw, testLogger())

	signal := &models.Signal{ID: 7, Modulation: "AM", LockVersion: 3}
	outcome, err := s.UpdateSignal(context.Background(), signal, pkgapi.SignalPayload{
		FrequencyFrom: 100, FrequencyTo: 200, Modulation: "FM", Power: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, UpdateApplied, outcome)
	// Round-trip property: displayed token equals the server-returned one,
	// strictly greater than the submitted one
	assert.Equal(t, int64(4), signal.LockVersion)
	assert.Greater(t, signal.LockVersion, int64(3))
	assert.Equal(t, "FM", signal.Modulation)
	assert.Len(t, gw.UpdateSignalCalls(), 1)
}

func TestUpdateSignal_NoopIsDistinct(t *testing.T) {
	gw := &GatewayMock{
		UpdateSignalFunc: func(ctx context.Context, id int64, req pkgapi.SignalUpdate) (*pkgapi.UpdateResponse, error) {
			return &pkgapi.UpdateResponse{LockVersion: req.LockVersion, Updated: boolPtr(false)}, nil
		},
	}
	s := NewService(gw, testLogger())

	signal := &models.Signal{ID: 7, LockVersion: 3}
	outcome, err := s.UpdateSignal(context.Background(), signal, pkgapi.SignalPayload{})
	require.NoError(t, err)
	assert.Equal(t, UpdateNoop, outcome)
}

func TestUpdateSignal_MissingUpdatedFlagMeansApplied(t *testing.T) {
	gw := &GatewayMock{
		UpdateSignalFunc: func(ctx context.Context, id int64, req pkgapi.SignalUpdate) (*pkgapi.UpdateResponse, error) {
			return &pkgapi.UpdateResponse{LockVersion: req.LockVersion + 1}, nil
		},
	}
	s := NewService(gw, testLogger())

	signal := &models.Signal{ID: 7, LockVersion: 3}
	outcome, err := s.UpdateSignal(context.Background(), signal, pkgapi.SignalPayload{})
	require.NoError(t, err)
	assert.Equal(t, UpdateApplied, outcome)
	assert.Equal(t, int64(4), signal.LockVersion)
}

func TestUpdateSignal_ConflictIsNeverRetried(t *testing.T) {
	gw := &GatewayMock{
		UpdateSignalFunc: func(ctx context.Context, id int64, req pkgapi.SignalUpdate) (*pkgapi.UpdateResponse, error) {
			return nil, &api.Error{Kind: api.KindConflict, Status: 409, Message: "stale token"}
		},
	}
	s := NewService(gw, testLogger())

	signal := &models.Signal{ID: 7, LockVersion: 2}
	_, err := s.UpdateSignal(context.Background(), signal, pkgapi.SignalPayload{})
	require.Error(t, err)
	assert.True(t, api.IsConflict(err))

	// The local token is untouched and exactly one request went out
	assert.Equal(t, int64(2), signal.LockVersion)
	assert.Len(t, gw.UpdateSignalCalls(), 1)
}

func TestUpdateTwiceWithStaleToken(t *testing.T) {
	// Server-side state: record at version 3; the second attempt with the
	// same stale token must conflict while the server stays at 4.
	serverLock := int64(3)
	gw := &GatewayMock{
		UpdateSignalFunc: func(ctx context.Context, id int64, req pkgapi.SignalUpdate) (*pkgapi.UpdateResponse, error) {
			if req.LockVersion != serverLock {
				return nil, &api.Error{Kind: api.KindConflict, Status: 409}
			}
			serverLock++
			return &pkgapi.UpdateResponse{LockVersion: serverLock, Updated: boolPtr(true)}, nil
		},
	}
	s := NewService(gw, testLogger())

	first := &models.Signal{ID: 7, LockVersion: 3}
	second := &models.Signal{ID: 7, LockVersion: 3}

	_, err := s.UpdateSignal(context.Background(), first, pkgapi.SignalPayload{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), first.LockVersion)

	_, err = s.UpdateSignal(context.Background(), second, pkgapi.SignalPayload{})
	require.Error(t, err)
	assert.True(t, api.IsConflict(err))
	assert.Equal(t, int64(4), serverLock, "conflict leaves the server value unchanged")
}

func TestDeleteSignal(t *testing.T) {
	gw := &GatewayMock{
		DeleteSignalFunc: func(ctx context.Context, id int64, lockVersion int64) error {
			assert.Equal(t, int64(9), id)
			assert.Equal(t, int64(5), lockVersion)
			return nil
		},
	}
	s := NewService(gw, testLogger())

	err := s.DeleteSignal(context.Background(), &models.Signal{ID: 9, LockVersion: 5})
	require.NoError(t, err)
	assert.Len(t, gw.DeleteSignalCalls(), 1)
}

func TestDeleteAsset_ConflictPropagates(t *testing.T) {
	gw := &GatewayMock{
		DeleteAssetFunc: func(ctx context.Context, id int64, lockVersion int64) error {
			return &api.Error{Kind: api.KindConflict, Status: 409}
		},
	}
	s := NewService(gw, testLogger())

	err := s.DeleteAsset(context.Background(), &models.Asset{ID: 4, LockVersion: 1})
	require.Error(t, err)
	assert.True(t, api.IsConflict(err))
	assert.Len(t, gw.DeleteAssetCalls(), 1)
}

func TestCreateSignal(t *testing.T) {
	created := &models.Signal{ID: 11, LockVersion: 0}
	gw := &GatewayMock{
		CreateSignalFunc: func(ctx context.Context, req pkgapi.SignalPayload) (*models.Signal, error) {
			assert.Equal(t, 100.0, req.FrequencyFrom)
			return created, nil
		},
	}
	s := NewService(gw, testLogger())

	err := s.CreateSignal(context.Background(), pkgapi.SignalPayload{
		FrequencyFrom: 100, FrequencyTo: 100, Modulation: "FM", Power: 5,
	})
	require.NoError(t, err)
	assert.Len(t, gw.CreateSignalCalls(), 1)
}

func TestUpdateAsset_AppliesPayloadLocally(t *testing.T) {
	gw := &GatewayMock{
		UpdateAssetFunc: func(ctx context.Context, id int64, req pkgapi.AssetUpdate) (*pkgapi.UpdateResponse, error) {
			return &pkgapi.UpdateResponse{LockVersion: req.LockVersion + 1, Updated: boolPtr(true)}, nil
		},
	}
	s := NewService(gw, testLogger())

	asset := &models.Asset{ID: 2, Name: "old", LockVersion: 0, SignalIDs: []int64{1}}
	outcome, err := s.UpdateAsset(context.Background(), asset, pkgapi.AssetPayload{
		Name: "new", Description: "d", SignalIDs: []int64{1, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, UpdateApplied, outcome)
	assert.Equal(t, int64(1), asset.LockVersion)
	assert.Equal(t, "new", asset.Name)
	assert.Equal(t, []int64{1, 3}, asset.SignalIDs)
}
