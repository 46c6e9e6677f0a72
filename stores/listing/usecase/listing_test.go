package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/ptr"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/listing"
	mListing "github.com/pokemarket/goapi/domain/listing/mocks"
	"github.com/pokemarket/goapi/service/query"
)

func validPayload() *listing.CreatePayload {
	return &listing.CreatePayload{
		Name:        "Charizard",
		Description: "Spits fire",
		Price:       "1.5 SOL",
		Rarity:      "Rare",
		CardType:    "Fire",
		Chain:       "Solana",
		Seller:      "9seLLerPUbK3y1111111111111111111111111111111",
	}
}

func TestCreateListing(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRepo := &mListing.Repo{}
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	u := NewListingUseCase(mockRepo)

	lst, err := u.CreateListing(_ctx, validPayload())
	req.NoError(err)
	req.NotEmpty(lst.Id)
	req.Equal(listing.ChainSolana, lst.Chain)
	req.Equal(listing.RarityRare, lst.Rarity)
	req.False(lst.Sold)
	req.Equal(lst.CreatedAt, lst.UpdatedAt)

	// combat stats default to 100 like every freshly minted card
	req.Equal(100, lst.Hp)
	req.Equal(100, lst.Attack)
	req.Equal(100, lst.Defense)
}

func TestCreateListingCustomStats(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRepo := &mListing.Repo{}
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	u := NewListingUseCase(mockRepo)

	p := validPayload()
	p.Hp = ptr.Int(120)
	p.Attack = ptr.Int(95)

	lst, err := u.CreateListing(_ctx, p)
	req.NoError(err)
	req.Equal(120, lst.Hp)
	req.Equal(95, lst.Attack)
	req.Equal(100, lst.Defense)
}

func TestCreateListingBadEnums(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRepo := &mListing.Repo{}
	u := NewListingUseCase(mockRepo)

	p := validPayload()
	p.Rarity = "Mythic"
	_, err := u.CreateListing(_ctx, p)
	req.ErrorIs(err, domain.ErrBadParamInput)

	p = validPayload()
	p.Chain = "Dogecoin"
	_, err = u.CreateListing(_ctx, p)
	req.ErrorIs(err, domain.ErrBadParamInput)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetListing(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRepo := &mListing.Repo{}
	mockRepo.On("FindOne", mock.Anything, "known").Return(&listing.Listing{Id: "known"}, nil)
	mockRepo.On("FindOne", mock.Anything, "unknown").Return(nil, query.ErrNotFound)
	u := NewListingUseCase(mockRepo)

	lst, err := u.GetListing(_ctx, "known")
	req.NoError(err)
	req.Equal("known", lst.Id)

	_, err = u.GetListing(_ctx, "unknown")
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestGetListings(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	mockRepo := &mListing.Repo{}
	mockRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*listing.Listing{{Id: "a"}, {Id: "b"}}, nil)
	u := NewListingUseCase(mockRepo)

	res, err := u.GetListings(_ctx, listing.WithChain(listing.ChainSolana))
	req.NoError(err)
	req.Len(res, 2)
}
