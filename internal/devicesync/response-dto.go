package devicesync

import "time"

// ResolutionServerWins means the server copy was kept over the device's change
const ResolutionServerWins = "SERVER_WINS"

// Conflict reports an operation the server did not accept as-is
type Conflict struct {
	Resource   string `json:"resource"`
	ResourceID string `json:"resourceId"`
	Resolution string `json:"resolution"`
}

// SyncResponse summarizes how a batch was reconciled
type SyncResponse struct {
	DeviceID      string     `json:"deviceId"`
	SyncTimestamp time.Time  `json:"syncTimestamp"`
	Processed     int        `json:"processed"`
	Conflicts     []Conflict `json:"conflicts"`
}
