package postgres

import (
	"context"

	"marketplace/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute pins the transaction to the primary so reads inside it see its own
// writes. GORM rolls back on error or panic and nests as a savepoint when
// ctx already carries a transaction.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories builds every repository on one *gorm.DB transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewRoleRepository() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

func (f txRepositories) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

func (f txRepositories) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f txRepositories) NewSellerRepository() repository.SellerRepository {
	return NewSellerRepository(f.tx)
}

func (f txRepositories) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositories) NewVariantRepository() repository.VariantRepository {
	return NewVariantRepository(f.tx)
}

func (f txRepositories) NewListingRepository() repository.ListingRepository {
	return NewListingRepository(f.tx)
}

func (f txRepositories) NewCartRepository() repository.CartRepository {
	return NewCartRepository(f.tx)
}

func (f txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f txRepositories) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}
