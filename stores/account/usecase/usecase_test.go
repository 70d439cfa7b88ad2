package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/account"
	mAccount "github.com/x-xyz/auctionhouse/domain/account/mocks"
	mContract "github.com/x-xyz/auctionhouse/service/chain/contract/mocks"
)

const signatureMsg = "Welcome to the auction house!\n\nNonce: %s"

var mockCtx = ctx.Background()

type accountSuite struct {
	suite.Suite

	repo *mAccount.Repo
	im   *impl
}

func TestAccountSuite(t *testing.T) {
	suite.Run(t, new(accountSuite))
}

func (s *accountSuite) SetupTest() {
	s.repo = &mAccount.Repo{}
	s.im = New(&AccountUseCaseCfg{
		Repo:         s.repo,
		SignatureMsg: signatureMsg,
	}).(*impl)
}

func (s *accountSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *accountSuite) TestGenerateNonceCreatesMissingAccount() {
	address := domain.Address("0x56b8ab544c74e94b8b8a614c3d0d5fe22b9f7d2e")

	s.repo.On("Get", mock.Anything, address).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Address == address && a.Nonce == ""
	})).Return(nil).Once()
	s.repo.On("Update", mock.Anything, address, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce != nil && *u.Nonce != ""
	})).Return(nil).Once()

	nonce, err := s.im.GenerateNonce(mockCtx, address)
	s.NoError(err)
	_, err = uuid.Parse(nonce)
	s.NoError(err)
}

func (s *accountSuite) TestGenerateNonceRotates() {
	address := domain.Address("0x56b8ab544c74e94b8b8a614c3d0d5fe22b9f7d2e")

	s.repo.On("Get", mock.Anything, address).Return(&account.Account{Address: address}, nil).Twice()
	s.repo.On("Update", mock.Anything, address, mock.Anything).Return(nil).Twice()

	first, err := s.im.GenerateNonce(mockCtx, address)
	s.NoError(err)
	second, err := s.im.GenerateNonce(mockCtx, address)
	s.NoError(err)
	s.NotEqual(first, second)
}

func (s *accountSuite) TestValidateSignature() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())
	nonce := uuid.NewString()

	msg := []byte(fmt.Sprintf(signatureMsg, nonce))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	s.Require().NoError(err)

	s.repo.On("Get", mock.Anything, address).Return(&account.Account{
		Address: address.ToLower(),
		Nonce:   nonce,
	}, nil).Once()
	s.repo.On("Update", mock.Anything, address, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce != nil && *u.Nonce == ""
	})).Return(nil).Once()

	s.NoError(s.im.ValidateSignature(mockCtx, address, hexutil.Encode(sig)))
}

func (s *accountSuite) TestValidateSignatureWithoutNonce() {
	address := domain.Address("0x56b8ab544c74e94b8b8a614c3d0d5fe22b9f7d2e")

	s.repo.On("Get", mock.Anything, address).Return(&account.Account{
		Address: address,
	}, nil).Once()

	err := s.im.ValidateSignature(mockCtx, address, "0xdead")
	s.Equal(account.ErrInvalidNonce, err)
}

func (s *accountSuite) TestValidateSignatureContractWallet() {
	erc1271 := &mContract.Erc1271Contract{}
	defer erc1271.AssertExpectations(s.T())
	im := New(&AccountUseCaseCfg{
		Repo:         s.repo,
		SignatureMsg: signatureMsg,
		Erc1271:      erc1271,
		ChainIds:     []domain.ChainId{1, 5},
	}).(*impl)

	address := domain.Address("0x0e53a93e8f0cbbea8fc0bda261c0aeeba3568f4c")
	nonce := uuid.NewString()
	// opaque multisig blob, ecrecover cannot handle it
	signature := "0x" + strings.Repeat("ab", 130)
	hash := common.BytesToHash(accounts.TextHash([]byte(fmt.Sprintf(signatureMsg, nonce))))

	s.repo.On("Get", mock.Anything, address).Return(&account.Account{
		Address: address,
		Nonce:   nonce,
	}, nil).Once()
	s.repo.On("Update", mock.Anything, address, mock.Anything).Return(nil).Once()
	erc1271.On("IsValidSignature", mock.Anything, int32(1), address.ToLowerStr(), hash, common.FromHex(signature)).
		Return(false, nil).Once()
	erc1271.On("IsValidSignature", mock.Anything, int32(5), address.ToLowerStr(), hash, common.FromHex(signature)).
		Return(true, nil).Once()

	s.NoError(im.ValidateSignature(mockCtx, address, signature))
}

func (s *accountSuite) TestValidateSignatureWrongSigner() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	otherKey, err := crypto.GenerateKey()
	s.Require().NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())
	nonce := uuid.NewString()

	msg := []byte(fmt.Sprintf(signatureMsg, nonce))
	sig, err := crypto.Sign(accounts.TextHash(msg), otherKey)
	s.Require().NoError(err)

	s.repo.On("Get", mock.Anything, address).Return(&account.Account{
		Address: address.ToLower(),
		Nonce:   nonce,
	}, nil).Once()
	// the nonce burns on the failed attempt too
	s.repo.On("Update", mock.Anything, address, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce != nil && *u.Nonce == ""
	})).Return(nil).Once()

	err = s.im.ValidateSignature(mockCtx, address, hexutil.Encode(sig))
	s.Equal(account.ErrInvalidSignature, err)
}

func (s *accountSuite) TestGetMapsToInfo() {
	address := domain.Address("0x56b8ab544c74e94b8b8a614c3d0d5fe22b9f7d2e")
	created := time.Now().Add(-time.Hour)

	s.repo.On("Get", mock.Anything, address).Return(&account.Account{
		Address:   address,
		Alias:     "alice",
		CreatedAt: created,
		UpdatedAt: created,
	}, nil).Once()

	info, err := s.im.Get(mockCtx, address)
	s.NoError(err)
	s.Equal(address, info.Address)
	s.Equal("alice", info.Alias)
}
