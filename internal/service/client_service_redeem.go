package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/models"
)

type clientRedeemService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientRedeemService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRedeemService {
	return &clientRedeemService{adapter: serverAdapter, logger: logger}
}

func (s *clientRedeemService) Redeem(ctx context.Context, reference string) (models.RedeemedSecret, error) {
	log := s.logger.With().Str("func", "clientRedeemService.Redeem").Logger()

	if reference == "" {
		log.Debug().Msg("empty reference, nothing to fetch")
		return models.RedeemedSecret{}, ErrNotFoundOrExpired
	}

	log.Debug().Str("reference", reference).Msg("redeeming secret")
	secret, err := s.adapter.FetchSecret(ctx, reference)
	if err != nil {
		log.Err(err).Msg("secret was not redeemed")
		return models.RedeemedSecret{}, fmt.Errorf("%w: %w", ErrNotFoundOrExpired, err)
	}

	return secret, nil
}
