package services

import (
	"github.com/ezfinancial/go-entry-engine/internal/common/cache"
	"github.com/ezfinancial/go-entry-engine/internal/common/idgenerator"
	"github.com/ezfinancial/go-entry-engine/internal/common/publisher"
	"github.com/ezfinancial/go-entry-engine/internal/common/suggester"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	entryPostedPub  publisher.Publisher
	suggesterClient suggester.Client
	idgenerator     idgenerator.Generator

	alternativesCache cache.Client[[]models.EntrySuggestion]
	rankerFetches     *fetchGroup

	common service

	Duplicate *duplicate
	Proposal  *proposal
	Ranker    *ranker
	Approval  *approval
	Ledger    *ledger
	Account   *account
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	entryPostedPub publisher.Publisher,
	suggesterClient suggester.Client,
	idgenerator idgenerator.Generator,
) *Services {
	srv := &Services{
		conf:            conf,
		sqlRepo:         sqlRepo,
		cacheRepo:       cacheRepo,
		entryPostedPub:  entryPostedPub,
		suggesterClient: suggesterClient,
		idgenerator:     idgenerator,

		alternativesCache: cache.NewInMemoryClient[[]models.EntrySuggestion](),
		rankerFetches:     newFetchGroup(),
	}
	srv.common.srv = srv
	srv.Duplicate = (*duplicate)(&srv.common)
	srv.Proposal = (*proposal)(&srv.common)
	srv.Ranker = (*ranker)(&srv.common)
	srv.Approval = (*approval)(&srv.common)
	srv.Ledger = (*ledger)(&srv.common)
	srv.Account = (*account)(&srv.common)

	return srv
}
