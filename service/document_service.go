package service

import (
	"context"
	"fmt"
	"time"

	"bank-documents/domain"
	"bank-documents/repository"
)

// Clock supplies the issue time stamped into documents.
type Clock func() time.Time

type DocumentService struct {
	clock   Clock
	clients repository.ClientRepository
}

// NewDocumentService creates a DocumentService. clients is only needed by
// GenerateForClient and may be nil otherwise.
func NewDocumentService(clock Clock, clients repository.ClientRepository) *DocumentService {
	if clock == nil {
		clock = DefaultClock
	}
	return &DocumentService{clock: clock, clients: clients}
}

// Generate renders the document of the given kind for a client category.
// Unknown kinds or categories fail with an *InvalidRequestError.
func (s *DocumentService) Generate(
	kind domain.DocumentKind,
	category domain.ClientCategory,
) (domain.GeneratedDocument, error) {
	factory, err := FactoryFor(category)
	if err != nil {
		return domain.GeneratedDocument{}, err
	}

	tmpl, err := templateFor(factory, kind)
	if err != nil {
		return domain.GeneratedDocument{}, err
	}

	now := s.clock()
	return domain.GeneratedDocument{
		Kind:     kind,
		Category: category,
		Content:  tmpl.Render(now),
		IssuedAt: now,
	}, nil
}

// GenerateForClient resolves the category of a stored client and renders
// the requested document for it.
func (s *DocumentService) GenerateForClient(
	ctx context.Context,
	clientID string,
	kind domain.DocumentKind,
) (domain.GeneratedDocument, error) {
	if s.clients == nil {
		return domain.GeneratedDocument{}, fmt.Errorf("client lookup: %w", repository.ErrClientNotFound)
	}

	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return domain.GeneratedDocument{}, fmt.Errorf("client lookup: %w", err)
	}

	return s.Generate(kind, client.Category)
}

// DefaultClock reads the wall clock.
func DefaultClock() time.Time {
	return time.Now()
}
