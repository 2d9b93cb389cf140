package devicesync

import "time"

// Operation is one change an offline device queued while disconnected
type Operation struct {
	Type               string         `json:"type" validate:"required"`
	Resource           string         `json:"resource" validate:"required"`
	ResourceID         string         `json:"resourceId" validate:"required"`
	Data               map[string]any `json:"data" validate:"required"`
	Timestamp          time.Time      `json:"timestamp" validate:"required"`
	ConflictResolution *string        `json:"conflictResolution"`
}

// SyncRequest is a device's batch of queued operations
type SyncRequest struct {
	DeviceID      string      `json:"deviceId" validate:"required"`
	SyncTimestamp time.Time   `json:"syncTimestamp" validate:"required"`
	Operations    []Operation `json:"operations" validate:"required,dive"`
}
