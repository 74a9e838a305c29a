// Package sync keeps the locally rendered record collections consistent
// with the backend under optimistic concurrency: every mutation carries the
// last observed lock_version, a conflict is surfaced and answered with a
// full reload, never an automatic retry.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/signalops/sigconsole/internal/client/api"
	"github.com/signalops/sigconsole/internal/models"
	pkgapi "github.com/signalops/sigconsole/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the slice of the API client the synchronizer uses.
type Gateway interface {
	ListSignals(ctx context.Context) ([]models.Signal, error)
	CreateSignal(ctx context.Context, req pkgapi.SignalPayload) (*models.Signal, error)
	UpdateSignal(ctx context.Context, id int64, req pkgapi.SignalUpdate) (*pkgapi.UpdateResponse, error)
	DeleteSignal(ctx context.Context, id, lockVersion int64) error

	ListAssets(ctx context.Context) ([]models.Asset, error)
	CreateAsset(ctx context.Context, req pkgapi.AssetPayload) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, req pkgapi.AssetUpdate) (*pkgapi.UpdateResponse, error)
	DeleteAsset(ctx context.Context, id, lockVersion int64) error
}

// Service is the per-collection record synchronizer.
type Service struct {
	gw     Gateway
	logger *slog.Logger
}

// NewService creates a new record synchronizer.
func NewService(gw Gateway, logger *slog.Logger) *Service {
	return &Service{gw: gw, logger: logger}
}

// Collections holds both record collections of the main screen. They are
// fetched together because the asset picker needs the full signal list.
type Collections struct {
	Signals []models.Signal
	Assets  []models.Asset
}

// SignalByID returns the signal with the given id, nil when absent. A stale
// response targeting a record that a reload already removed simply misses.
func (c *Collections) SignalByID(id int64) *models.Signal {
	for i := range c.Signals {
		if c.Signals[i].ID == id {
			return &c.Signals[i]
		}
	}
	return nil
}

// AssetByID returns the asset with the given id, nil when absent.
func (c *Collections) AssetByID(id int64) *models.Asset {
	for i := range c.Assets {
		if c.Assets[i].ID == id {
			return &c.Assets[i]
		}
	}
	return nil
}

type signalsResult struct {
	signals []models.Signal
	err     error
}

// FetchAll loads both collections unconditionally. The two fetches run
// concurrently; neither waits on the other beyond the final join.
func (s *Service) FetchAll(ctx context.Context) (*Collections, error) {
	sigc := make(chan signalsResult, 1)
	go func() {
		signals, err := s.gw.ListSignals(ctx)
		sigc <- signalsResult{signals: signals, err: err}
	}()

	assets, assetsErr := s.gw.ListAssets(ctx)
	sig := <-sigc

	if err := errors.Join(sig.err, assetsErr); err != nil {
		return nil, err
	}

	s.logger.Debug("collections fetched", "signals", len(sig.signals), "assets", len(assets))
	return &Collections{Signals: sig.signals, Assets: assets}, nil
}

// UpdateOutcome distinguishes a real update from the backend reporting that
// no field actually changed.
type UpdateOutcome int

const (
	UpdateApplied UpdateOutcome = iota
	UpdateNoop
)

// CreateSignal submits a new signal. The caller must follow up with a full
// reload so the server-assigned id and initial lock_version are picked up
// verbatim; the returned record is not inserted locally.
func (s *Service) CreateSignal(ctx context.Context, payload pkgapi.SignalPayload) error {
	if _, err := s.gw.CreateSignal(ctx, payload); err != nil {
		return fmt.Errorf("create signal: %w", err)
	}
	return nil
}

// UpdateSignal submits the edited fields together with the lock_version last
// rendered for the record. On success the record's token is replaced in
// place with the server-returned one, the single case of incremental UI
// mutation, so in-progress edits to other records survive. On conflict the
// caller reloads; there is no automatic retry.
func (s *Service) UpdateSignal(ctx context.Context, signal *models.Signal, payload pkgapi.SignalPayload) (UpdateOutcome, error) {
	req := pkgapi.SignalUpdate{SignalPayload: payload, LockVersion: signal.LockVersion}

	resp, err := s.gw.UpdateSignal(ctx, signal.ID, req)
	if err != nil {
		if api.IsConflict(err) {
			s.logger.Debug("signal update conflict", "id", signal.ID, "lock_version", signal.LockVersion)
		}
		return UpdateApplied, err
	}

	signal.LockVersion = resp.LockVersion
	signal.FrequencyFrom = payload.FrequencyFrom
	signal.FrequencyTo = payload.FrequencyTo
	signal.Modulation = payload.Modulation
	signal.Power = payload.Power

	if !resp.Applied() {
		return UpdateNoop, nil
	}
	return UpdateApplied, nil
}

// DeleteSignal submits the held lock_version as a precondition. The explicit
// user confirmation happens upstream, before this is called.
func (s *Service) DeleteSignal(ctx context.Context, signal *models.Signal) error {
	err := s.gw.DeleteSignal(ctx, signal.ID, signal.LockVersion)
	if err != nil && api.IsConflict(err) {
		s.logger.Debug("signal delete conflict", "id", signal.ID, "lock_version", signal.LockVersion)
	}
	return err
}

// CreateAsset submits a new asset; see CreateSignal for the reload contract.
func (s *Service) CreateAsset(ctx context.Context, payload pkgapi.AssetPayload) error {
	if _, err := s.gw.CreateAsset(ctx, payload); err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}

// UpdateAsset submits a conditional asset mutation; see UpdateSignal.
func (s *Service) UpdateAsset(ctx context.Context, asset *models.Asset, payload pkgapi.AssetPayload) (UpdateOutcome, error) {
	req := pkgapi.AssetUpdate{AssetPayload: payload, LockVersion: asset.LockVersion}

	resp, err := s.gw.UpdateAsset(ctx, asset.ID, req)
	if err != nil {
		if api.IsConflict(err) {
			s.logger.Debug("asset update conflict", "id", asset.ID, "lock_version", asset.LockVersion)
		}
		return UpdateApplied, err
	}

	asset.LockVersion = resp.LockVersion
	asset.Name = payload.Name
	asset.Description = payload.Description
	asset.SignalIDs = payload.SignalIDs

	if !resp.Applied() {
		return UpdateNoop, nil
	}
	return UpdateApplied, nil
}

// DeleteAsset submits the held lock_version as a precondition.
func (s *Service) DeleteAsset(ctx context.Context, asset *models.Asset) error {
	err := s.gw.DeleteAsset(ctx, asset.ID, asset.LockVersion)
	if err != nil && api.IsConflict(err) {
		s.logger.Debug("asset delete conflict", "id", asset.ID, "lock_version", asset.LockVersion)
	}
	return err
}
