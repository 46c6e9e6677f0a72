package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/listing"
	"github.com/pokemarket/goapi/service/query"
)

const defaultStat = 100

type listingUseCase struct {
	repo listing.Repo
}

func NewListingUseCase(repo listing.Repo) listing.Usecase {
	return &listingUseCase{repo}
}

func (im *listingUseCase) CreateListing(c ctx.Ctx, payload *listing.CreatePayload) (*listing.Listing, error) {
	rarity := listing.Rarity(payload.Rarity)
	chain := listing.ChainName(payload.Chain)
	if !rarity.IsValid() || !chain.IsValid() {
		return nil, domain.ErrBadParamInput
	}

	id, err := uuid.NewRandom()
	if err != nil {
		c.WithField("err", err).Error("uuid.NewRandom failed")
		return nil, err
	}

	now := time.Now().UTC()
	lst := &listing.Listing{
		Id:          id.String(),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Rarity:      rarity,
		CardType:    payload.CardType,
		Chain:       chain,
		Seller:      domain.Address(payload.Seller),
		ImageUrl:    payload.ImageUrl,
		MetadataUrl: payload.MetadataUrl,
		Hp:          defaultStat,
		Attack:      defaultStat,
		Defense:     defaultStat,
		Sold:        false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if payload.Hp != nil {
		lst.Hp = *payload.Hp
	}
	if payload.Attack != nil {
		lst.Attack = *payload.Attack
	}
	if payload.Defense != nil {
		lst.Defense = *payload.Defense
	}

	if err := im.repo.Create(c, lst); err != nil {
		return nil, err
	}
	return lst, nil
}

func (im *listingUseCase) GetListings(c ctx.Ctx, optFns ...listing.FindAllOptions) ([]*listing.Listing, error) {
	return im.repo.FindAll(c, optFns...)
}

func (im *listingUseCase) GetListing(c ctx.Ctx, id string) (*listing.Listing, error) {
	res, err := im.repo.FindOne(c, id)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, err
}
