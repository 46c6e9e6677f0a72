package listing

import (
	"time"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain"
)

// Rarity of a card
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityLegendary Rarity = "Legendary"
)

// ChainName names the chain a listing settles on
type ChainName string

const (
	ChainSolana   ChainName = "Solana"
	ChainAptos    ChainName = "Aptos"
	ChainAlgorand ChainName = "Algorand"
	ChainEvm      ChainName = "EVM"
)

// Listing is a sellable card record
type Listing struct {
	Id          string         `json:"id" bson:"id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	// Price is "<decimal amount> <symbol>", e.g. "1.5 SOL", in the
	// chain's human readable unit
	Price       string         `json:"price" bson:"price"`
	Rarity      Rarity         `json:"rarity" bson:"rarity"`
	CardType    string         `json:"type" bson:"type"`
	Chain       ChainName      `json:"chain" bson:"chain"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	ImageUrl    string         `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	MetadataUrl string         `json:"metadataUrl,omitempty" bson:"metadataUrl,omitempty"`
	Hp          int            `json:"hp" bson:"hp"`
	Attack      int            `json:"attack" bson:"attack"`
	Defense     int            `json:"defense" bson:"defense"`
	Sold        bool           `json:"sold" bson:"sold"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// CreatePayload is the client supplied part of a listing
type CreatePayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Rarity      string `json:"rarity" validate:"required,oneof=Common Uncommon Rare Legendary"`
	CardType    string `json:"type" validate:"required"`
	Chain       string `json:"chain" validate:"required,oneof=Solana Aptos Algorand EVM"`
	Seller      string `json:"seller" validate:"required"`
	ImageUrl    string `json:"imageUrl"`
	MetadataUrl string `json:"metadataUrl"`
	Hp          *int   `json:"hp"`
	Attack      *int   `json:"attack"`
	Defense     *int   `json:"defense"`
}

// Patchable carries the mutable fields of a listing
type Patchable struct {
	Sold      *bool      `bson:"sold,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type findAllOptions struct {
	Chain  *ChainName      `bson:"chain,omitempty"`
	Seller *domain.Address `bson:"seller,omitempty"`
	Sold   *bool           `bson:"sold,omitempty"`
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithChain(chain ChainName) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Chain = &chain
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func WithSold(sold bool) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Sold = &sold
		return nil
	}
}

// Repo is the persistence layer of listings
type Repo interface {
	Create(c ctx.Ctx, value *Listing) error
	// FindAll returns listings sorted newest created first
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	FindOne(c ctx.Ctx, id string) (*Listing, error)
	Patch(c ctx.Ctx, id string, patchable *Patchable) error
	// MarkSold flips sold to true. The selector requires sold == false,
	// so only one of several concurrent confirmations can win.
	MarkSold(c ctx.Ctx, id string) error
}

// Usecase represents the listing's usecases
type Usecase interface {
	CreateListing(c ctx.Ctx, payload *CreatePayload) (*Listing, error)
	GetListings(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	GetListing(c ctx.Ctx, id string) (*Listing, error)
}

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityLegendary:
		return true
	}
	return false
}

func (n ChainName) IsValid() bool {
	switch n {
	case ChainSolana, ChainAptos, ChainAlgorand, ChainEvm:
		return true
	}
	return false
}
