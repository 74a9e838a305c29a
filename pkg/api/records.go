package api

// SignalPayload is the mutable field set of a signal record.
type SignalPayload struct {
	FrequencyFrom float64 `json:"frequency_from"`
	FrequencyTo   float64 `json:"frequency_to"`
	Modulation    string  `json:"modulation"`
	Power         float64 `json:"power"`
}

// SignalUpdate is a conditional signal mutation. LockVersion must be the
// token the client last observed for the record; the backend rejects the
// request with 409 when it no longer matches.
type SignalUpdate struct {
	SignalPayload
	LockVersion int64 `json:"lock_version"`
}

// AssetPayload is the mutable field set of an asset record.
type AssetPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SignalIDs   []int64 `json:"signal_ids"`
}

// AssetUpdate is a conditional asset mutation; see SignalUpdate.
type AssetUpdate struct {
	AssetPayload
	LockVersion int64 `json:"lock_version"`
}

// DeleteRequest carries the concurrency token as a delete precondition.
type DeleteRequest struct {
	LockVersion int64 `json:"lock_version"`
}

// UpdateResponse is returned by a successful PATCH. Updated distinguishes a
// real update from a no-op; backends predating the field omit it, which the
// client reads as a real update.
type UpdateResponse struct {
	LockVersion int64 `json:"lock_version"`
	Updated     *bool `json:"updated,omitempty"`
}

// Applied reports whether the mutation changed any field. An absent Updated
// flag counts as applied.
func (r *UpdateResponse) Applied() bool {
	return r.Updated == nil || *r.Updated
}
