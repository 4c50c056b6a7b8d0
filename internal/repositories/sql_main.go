package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ezfinancial/go-entry-engine/internal/common/cache"
	"github.com/ezfinancial/go-entry-engine/internal/common/directory"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ar  *accountRepository
	rtr *rawTransactionRepository
	per *proposedEntryRepository
	fer *finalEntryRepository

	accountsFromInternal AccountDirectoryRepository
	accountsFromExternal AccountDirectoryRepository

	cacheOwnerAccounts cache.Client[[]models.Account]
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
	directoryClient directory.Client,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.rtr = (*rawTransactionRepository)(&rtx.common)
	rtx.per = (*proposedEntryRepository)(&rtx.common)
	rtx.fer = (*finalEntryRepository)(&rtx.common)

	rtx.accountsFromInternal = (*accountDirectoryInternal)(&rtx.common)
	rtx.accountsFromExternal = &accountDirectoryExternal{directoryClient: directoryClient}

	rtx.cacheOwnerAccounts = cache.NewInMemoryClient[[]models.Account]()

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetAccountRepository() AccountRepository
	GetRawTransactionRepository() RawTransactionRepository
	GetProposedEntryRepository() ProposedEntryRepository
	GetFinalEntryRepository() FinalEntryRepository

	GetAccountDirectoryInternalRepository() AccountDirectoryRepository
	GetAccountDirectoryExternalRepository() AccountDirectoryRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetRawTransactionRepository() RawTransactionRepository {
	return r.rtr
}

func (r *Repository) GetProposedEntryRepository() ProposedEntryRepository {
	return r.per
}

func (r *Repository) GetFinalEntryRepository() FinalEntryRepository {
	return r.fer
}

func (r *Repository) GetAccountDirectoryInternalRepository() AccountDirectoryRepository {
	return r.accountsFromInternal
}

func (r *Repository) GetAccountDirectoryExternalRepository() AccountDirectoryRepository {
	return r.accountsFromExternal
}

func (r *Repository) SubstitutePlaceholder(data string, startInt int) (res string) {
	placeholderCount := strings.Count(data, "?")
	res = data
	for i := startInt; i < startInt+placeholderCount; i++ {
		res = strings.Replace(res, "?", "$"+strconv.Itoa(i), 1)
	}
	return res
}
