package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// messageService is the concrete implementation of MessageService
type messageService struct {
	messageRepo repository.MessageRepository
	log         zerolog.Logger
}

// newMessageService creates a new MessageService
func newMessageService(messageRepo repository.MessageRepository, log zerolog.Logger) *messageService {
	return &messageService{
		messageRepo: messageRepo,
		log:         log.With().Str("service", "message").Logger(),
	}
}

// Submit validates a contact form and stores it. Messages are write-only
// from this service's point of view; nothing reads them back out.
func (s *messageService) Submit(ctx context.Context, form *validation.MessageInput) (*models.Message, error) {
	if verr := validation.ValidateMessage(form); verr != nil {
		return nil, verr
	}

	message := &models.Message{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	s.log.Info().Str("message_id", message.ID).Msg("Contact message received")
	return message, nil
}

func (s *messageService) Count(ctx context.Context) (int, error) {
	return s.messageRepo.Count(ctx)
}
