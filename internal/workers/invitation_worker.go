package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"talentia_backend/internal/logger"
	"talentia_backend/internal/repositories"
)

const (
	sweepInterval = 6 * time.Hour
	// Expired invitations are kept for a while so faculty still see them
	// in their list before they disappear.
	retentionPeriod = 30 * 24 * time.Hour
)

// InvitationWorker removes long-expired invitation links. Expiry itself
// never depends on this worker; the visibility engine checks timestamps
// on every read.
type InvitationWorker struct {
	db             *gorm.DB
	invitationRepo repositories.InvitationRepository
}

func NewInvitationWorker(db *gorm.DB, invitationRepo repositories.InvitationRepository) *InvitationWorker {
	return &InvitationWorker{db: db, invitationRepo: invitationRepo}
}

func (w *InvitationWorker) Start(ctx context.Context) {
	go w.sweepExpiredInvitations(ctx)
}

func (w *InvitationWorker) sweepExpiredInvitations(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Invitation worker stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-retentionPeriod)
			deleted, err := w.invitationRepo.DeleteExpiredBefore(w.db, cutoff)
			if err != nil {
				logger.WithError(err).Error("Failed to sweep expired invitations")
				continue
			}
			if deleted > 0 {
				logger.Info("Swept expired invitations", "count", deleted)
			}
		}
	}
}
