package membership

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
)

// ConnectService handles connection requests between members and experts
type ConnectService struct {
	userRepo    directory.UserRepository
	requestRepo directory.ConnectionRequestRepository
	sender      notification.Sender
	logger      *zap.Logger
}

// NewConnectService creates a new connect service
func NewConnectService(
	userRepo directory.UserRepository,
	requestRepo directory.ConnectionRequestRepository,
	sender notification.Sender,
	logger *zap.Logger,
) *ConnectService {
	return &ConnectService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		sender:      sender,
		logger:      logger,
	}
}

// Create persists a connection request and notifies the expert. The
// notification carries the seeker's email as reply-to so the expert can
// answer directly.
func (s *ConnectService) Create(ctx context.Context, input ConnectInput) (*directory.ConnectionRequest, error) {
	if input.SeekerID == uuid.Nil {
		return nil, shared.NewDomainError("UNAUTHENTICATED", "Sign in to send a connection request")
	}

	seeker, err := s.userRepo.FindByID(ctx, input.SeekerID)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHENTICATED", "Sign in to send a connection request")
	}

	expert, err := s.userRepo.FindByID(ctx, input.ExpertID)
	if err != nil {
		return nil, shared.NewDomainError("EXPERT_NOT_FOUND", "Expert not found")
	}

	request, err := directory.NewConnectionRequest(
		seeker.ID,
		expert.ID,
		input.Message,
		directory.ContactMethod(input.PreferredContactMethod),
	)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		s.logger.Error("Failed to save connection request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create connection request")
	}

	if !s.sender.Send(ctx, notification.Message{
		To:       expert.Email,
		Template: notification.TemplateExpertNewMessage,
		Context: map[string]string{
			"expert_name":    expert.DisplayName(),
			"seeker_name":    seeker.DisplayName(),
			"contact_method": request.PreferredContactMethod.Label(),
			"message":        request.Message,
		},
		ReplyTo: seeker.Email,
	}) {
		s.logger.Warn("Failed to notify expert of connection request",
			zap.String("request_id", request.ID.String()))
	}

	request.Seeker = seeker
	request.Expert = expert

	s.logger.Info("Connection request created",
		zap.String("request_id", request.ID.String()),
		zap.String("seeker_id", seeker.ID.String()),
		zap.String("expert_id", expert.ID.String()))

	return request, nil
}

// List returns connection requests. Admins see everything, members only
// their own.
func (s *ConnectService) List(ctx context.Context, viewer *directory.User, page, pageSize int) ([]*directory.ConnectionRequest, int64, error) {
	if viewer == nil {
		return nil, 0, shared.NewDomainError("UNAUTHENTICATED", "Sign in to view connection requests")
	}
	if viewer.IsAdmin() {
		return s.requestRepo.FindAll(ctx, page, pageSize)
	}
	return s.requestRepo.FindBySeekerID(ctx, viewer.ID, page, pageSize)
}
