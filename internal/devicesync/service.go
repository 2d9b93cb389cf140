package devicesync

import (
	"context"

	"waitwise/pkg/logger"
)

// Service reconciles batches uploaded by offline devices
type Service interface {
	Reconcile(ctx context.Context, req *SyncRequest) *SyncResponse
}

type service struct{}

func NewService() Service {
	return &service{}
}

// Reconcile counts every operation as processed. Operations that carry no
// conflictResolution of their own are reported as server-wins conflicts.
// Nothing is written to the live queue.
func (s *service) Reconcile(ctx context.Context, req *SyncRequest) *SyncResponse {
	conflicts := make([]Conflict, 0)
	for _, op := range req.Operations {
		if op.ConflictResolution != nil {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Resource:   op.Resource,
			ResourceID: op.ResourceID,
			Resolution: ResolutionServerWins,
		})
	}

	logger.GetDefault().LogSyncProcessed(ctx, req.DeviceID, len(req.Operations), len(conflicts))

	return &SyncResponse{
		DeviceID:      req.DeviceID,
		SyncTimestamp: req.SyncTimestamp,
		Processed:     len(req.Operations),
		Conflicts:     conflicts,
	}
}
