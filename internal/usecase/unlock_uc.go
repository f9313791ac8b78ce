package usecase

import (
	"context"

	"go.uber.org/zap"

	"unlock-service/internal/domain"
	"unlock-service/internal/repository"
	"unlock-service/internal/service"
)

// Sender is the outbound mail transport boundary.
type Sender interface {
	Send(msg service.Message) error
}

type UnlockUsecase struct {
	repo       repository.Repository
	sender     Sender
	adminEmail string
	logger     *zap.Logger
}

func NewUnlockUsecase(repo repository.Repository, sender Sender, adminEmail string, logger *zap.Logger) *UnlockUsecase {
	return &UnlockUsecase{
		repo:       repo,
		sender:     sender,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Submit validates an incoming request and persists it, returning the
// store-generated identifier. It does not dispatch notifications; the
// handler does that after the response has been written.
func (uc *UnlockUsecase) Submit(ctx context.Context, req *domain.UnlockRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := uc.repo.CreateUnlockRequest(ctx, req)
	if err != nil {
		return "", err
	}

	uc.logger.Info("unlock request persisted",
		zap.String("id", id),
		zap.String("brand", req.Brand),
		zap.String("model", req.Model))
	return id, nil
}

// List returns the most recent stored requests, capped by the store's
// limit clamping.
func (uc *UnlockUsecase) List(ctx context.Context, limit int) ([]*domain.StoredUnlockRequest, error) {
	return uc.repo.ListUnlockRequests(ctx, limit)
}

// NotifyNewRequest dispatches the administrator alert and the customer
// acknowledgment on detached goroutines and returns immediately. The caller
// never observes a result; each send fails independently and a failure is
// logged, never propagated. Goroutine lifetime is process-scoped, so a
// client disconnect cannot cancel an already-dispatched notification.
func (uc *UnlockUsecase) NotifyNewRequest(req *domain.UnlockRequest, id string) {
	r := *req

	go uc.deliver("admin_alert", service.ComposeAdminAlert(&r, id, uc.adminEmail))
	go uc.deliver("customer_ack", service.ComposeCustomerAck(&r, id))
}

func (uc *UnlockUsecase) deliver(kind string, msg service.Message) {
	defer func() {
		if rec := recover(); rec != nil {
			uc.logger.Error("notification dispatch panicked",
				zap.String("kind", kind),
				zap.Any("panic", rec))
		}
	}()

	if err := uc.sender.Send(msg); err != nil {
		uc.logger.Error("notification send failed",
			zap.String("kind", kind),
			zap.String("recipient", msg.To),
			zap.Error(err))
		return
	}

	uc.logger.Info("notification dispatched",
		zap.String("kind", kind),
		zap.String("recipient", msg.To))
}
