package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/database/mongoclient"
	"github.com/pokemarket/goapi/domain"
	"github.com/pokemarket/goapi/domain/listing"
	"github.com/pokemarket/goapi/service/cache"
	"github.com/pokemarket/goapi/service/query"
)

const allListingsKey = "all"

type listingRepoImpl struct {
	q     query.Mongo
	cache cache.Service
}

// NewListingRepo builds a listing.Repo. The cache only covers the
// unfiltered newest-first query and may be nil.
func NewListingRepo(q query.Mongo, cacheSvc cache.Service) listing.Repo {
	return &listingRepoImpl{q, cacheSvc}
}

func (im *listingRepoImpl) Create(c ctx.Ctx, value *listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	im.invalidate(c)
	return nil
}

func (im *listingRepoImpl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptions) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	if len(qry) == 0 && im.cache != nil {
		res := []*listing.Listing{}
		err := im.cache.GetByFunc(c, allListingsKey, &res, func() (interface{}, error) {
			return im.search(c, qry)
		})
		return res, err
	}

	return im.search(c, qry)
}

func (im *listingRepoImpl) search(c ctx.Ctx, qry bson.M) ([]*listing.Listing, error) {
	res := []*listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, 0, 0, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	res := listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, &res); err != nil {
		if err != query.ErrNotFound {
			c.WithField("err", err).Error("q.FindOne failed")
		}
		return nil, err
	}
	return &res, nil
}

func (im *listingRepoImpl) Patch(c ctx.Ctx, id string, patchable *listing.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableListings, bson.M{"id": id}, updater); err != nil {
		return err
	}
	im.invalidate(c)
	return nil
}

func (im *listingRepoImpl) MarkSold(c ctx.Ctx, id string) error {
	// the sold:false selector lets exactly one concurrent confirmation
	// flip the flag
	selector := bson.M{"id": id, "sold": false}
	updater := bson.M{"sold": true, "updatedAt": time.Now().UTC()}
	if err := im.q.Patch(c, domain.TableListings, selector, updater); err != nil {
		return err
	}
	im.invalidate(c)
	return nil
}

func (im *listingRepoImpl) invalidate(c ctx.Ctx) {
	if im.cache != nil {
		im.cache.Del(c, allListingsKey)
	}
}
