package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	mAccount "github.com/x-xyz/auctionhouse/domain/account/mocks"
	"github.com/x-xyz/auctionhouse/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("Get", mock.Anything, domain.Address("my-address")).Return(nil, nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, "my-address")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "my-address", ads)
}

func TestParseTokenMalformed(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)

	_, err := u.ParseToken(ctx, "not-a-token")
	assert.Error(t, err)

	// signed with a different secret
	other := usecase.New("other-secret", mockAccountUC)
	mockAccountUC.On("Get", mock.Anything, domain.Address("my-address")).Return(nil, nil)
	tkn, err := other.SignToken(ctx, "my-address")
	assert.NoError(t, err)
	_, err = u.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
