package controller

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/mock"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRedemption(t *testing.T, reference string) (*RedemptionController, *mock.MockClientRedeemService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	redeem := mock.NewMockClientRedeemService(ctrl)
	return NewRedemptionController(redeem, reference), redeem
}

func TestRedemption_Found(t *testing.T) {
	c, redeem := newRedemption(t, "abc123")
	secret := models.RedeemedSecret{Reference: "abc123", Content: "top secret"}
	redeem.EXPECT().Redeem(gomock.Any(), "abc123").Return(secret, nil).Times(1)

	assert.Equal(t, RedeemLoading{Reference: "abc123"}, c.State())

	exchange := c.Start()
	require.NotNil(t, exchange)
	assert.Equal(t, RedeemLoading{Reference: "abc123"}, c.State())

	assert.True(t, c.Resolve(exchange(context.Background())))
	assert.Equal(t, Found{Secret: secret}, c.State())
}

func TestRedemption_NotFound(t *testing.T) {
	c, redeem := newRedemption(t, "expired1")
	notFound := fmt.Errorf("%w: %w", service.ErrNotFoundOrExpired, &adapter.StatusError{StatusCode: 404, Body: "Not Found"})
	redeem.EXPECT().Redeem(gomock.Any(), "expired1").Return(models.RedeemedSecret{}, notFound)

	state := c.Run(context.Background())
	assert.Equal(t, NotFound{Message: "Secret not found or expired"}, state)
}

func TestRedemption_FetchesOnce(t *testing.T) {
	c, redeem := newRedemption(t, "abc")
	redeem.EXPECT().Redeem(gomock.Any(), "abc").Return(models.RedeemedSecret{Content: "x"}, nil).Times(1)

	first := c.Run(context.Background())
	assert.Nil(t, c.Start())
	second := c.Run(context.Background())

	assert.Equal(t, first, second)
}

func TestRedemption_EmptyReference(t *testing.T) {
	c, _ := newRedemption(t, "")

	assert.Nil(t, c.Start())
	assert.Equal(t, NotFound{Message: app.MsgSecretNotFound}, c.State())
}

func TestRedemption_TerminalStates(t *testing.T) {
	c, redeem := newRedemption(t, "abc")
	redeem.EXPECT().Redeem(gomock.Any(), "abc").Return(models.RedeemedSecret{}, service.ErrNotFoundOrExpired)

	c.Run(context.Background())
	assert.False(t, c.Resolve(RedeemOutcome{Secret: models.RedeemedSecret{Content: "late"}}))
	assert.Equal(t, NotFound{Message: app.MsgSecretNotFound}, c.State())
}

func TestRedemption_LateResultAfterClose(t *testing.T) {
	c, redeem := newRedemption(t, "abc")
	redeem.EXPECT().Redeem(gomock.Any(), "abc").Return(models.RedeemedSecret{Content: "x"}, nil)

	exchange := c.Start()
	require.NotNil(t, exchange)
	c.Close()

	assert.False(t, c.Resolve(exchange(context.Background())))
	assert.Equal(t, RedeemLoading{Reference: "abc"}, c.State())
	assert.Nil(t, c.Start())
}

func TestRedemption_CloseForgetsSecret(t *testing.T) {
	c, redeem := newRedemption(t, "abc")
	redeem.EXPECT().Redeem(gomock.Any(), "abc").Return(models.RedeemedSecret{Content: "x"}, nil)

	c.Run(context.Background())
	c.Close()

	assert.Equal(t, Found{}, c.State())
}
