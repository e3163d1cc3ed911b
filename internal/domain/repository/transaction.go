package repository

import "context"

// TransactionManager runs fn in one database transaction: committed when fn
// returns nil, rolled back otherwise. Repositories taken from the factory
// share that transaction; repositories injected directly do not.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out transaction-bound repositories.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewRoleRepository() RoleRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewSellerRepository() SellerRepository
	NewAddressRepository() AddressRepository
	NewProductRepository() ProductRepository
	NewVariantRepository() VariantRepository
	NewListingRepository() ListingRepository
	NewCartRepository() CartRepository
	NewOrderRepository() OrderRepository
	NewReviewRepository() ReviewRepository
}
