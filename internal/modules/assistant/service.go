package assistant

import (
	"context"
	"strings"
)

// Service orchestrates assistant credit accounting and the Gemini call.
type Service struct {
	store  *Store
	apiKey string
}

func NewService(store *Store, apiKey string) *Service {
	return &Service{store: store, apiKey: apiKey}
}

// IsConfigured reports whether the assistant has a usable credential.
func (s *Service) IsConfigured() bool {
	return strings.TrimSpace(s.apiKey) != ""
}

// Ask consumes one credit from the user's monthly allowance and forwards the
// question to Gemini. The credit is spent before the upstream call; a failed
// call does not refund it, which keeps the ledger simple and abuse-resistant.
func (s *Service) Ask(ctx context.Context, uid, question string) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}
	if err := s.useCredit(ctx, uid); err != nil {
		return "", err
	}
	return callGemini(ctx, s.apiKey, question)
}

// CreditsLeft reports the remaining monthly allowance.
func (s *Service) CreditsLeft(ctx context.Context, uid string) (int, error) {
	return s.store.CreditsLeft(ctx, uid)
}

// useCredit deducts one credit. If the user row does not exist yet it is
// initialised and the deduction retried once.
func (s *Service) useCredit(ctx context.Context, uid string) error {
	err := s.store.UseCredit(ctx, uid)
	if err != ErrInsufficientCredits {
		return err
	}

	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseCredit(ctx, uid)
}
