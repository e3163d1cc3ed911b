package errors

import "net/http"

// Accounts
var (
	ErrUserNotFound       = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists  = define(http.StatusConflict, "USER_ALREADY_EXISTS", "Email already exists")
	ErrUserCreationFailed = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrUserUpdateFailed   = define(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user")
	ErrUserInactive       = define(http.StatusUnauthorized, "USER_INACTIVE", "Account has been deactivated")
)

// Authentication and access
var (
	ErrUnauthorized         = define(http.StatusUnauthorized, "UNAUTHORIZED", "Not authorized to access this route")
	ErrInvalidCredentials   = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrRefreshTokenInvalid  = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid refresh token")
	ErrRefreshTokenExpired  = define(http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED", "Refresh token has expired")
	ErrPasswordHashFailed   = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing error")
	ErrPasswordStrength     = define(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password must be at least 6 characters")
	ErrTokenInvalid         = define(http.StatusBadRequest, "TOKEN_INVALID", "Invalid or expired token")
	ErrEmailAlreadyVerified = define(http.StatusBadRequest, "EMAIL_ALREADY_VERIFIED", "Email already verified")
	ErrSellerPending        = define(http.StatusForbidden, "SELLER_PENDING", "Your seller application is pending admin approval. Please wait for approval to login.")
	ErrSellerRejected       = define(http.StatusForbidden, "SELLER_REJECTED", "Your seller application has been rejected. Please contact support.")
	ErrSellerSuspended      = define(http.StatusForbidden, "SELLER_SUSPENDED", "Your seller account has been suspended. Please contact support.")
	ErrTooManyRequests      = define(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests, please try again later")
)

// Input
var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed")
)

// Catalog
var (
	ErrProductNotFound    = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrProductUnavailable = define(http.StatusBadRequest, "PRODUCT_UNAVAILABLE", "Product is not available")
	ErrVariantNotFound    = define(http.StatusNotFound, "VARIANT_NOT_FOUND", "Product variant not found")
	ErrListingNotFound    = define(http.StatusNotFound, "LISTING_NOT_FOUND", "Product listing not found")
	ErrCategoryNotFound   = define(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	ErrBrandNotFound      = define(http.StatusNotFound, "BRAND_NOT_FOUND", "Brand not found")
)

// Cart and checkout
var (
	ErrInsufficientStock       = define(http.StatusBadRequest, "INSUFFICIENT_STOCK", "Insufficient stock")
	ErrEmptyCart               = define(http.StatusBadRequest, "EMPTY_CART", "Cart is empty")
	ErrCartItemNotFound        = define(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Item not found in cart")
	ErrOrderNotFound           = define(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrOrderNotCancellable     = define(http.StatusBadRequest, "ORDER_NOT_CANCELLABLE", "Order cannot be cancelled at this stage")
	ErrIllegalStatusTransition = define(http.StatusBadRequest, "ILLEGAL_STATUS_TRANSITION", "Order status cannot be changed from its current state")
)

// Reviews
var (
	ErrReviewNotFound  = define(http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
	ErrDuplicateReview = define(http.StatusConflict, "DUPLICATE_REVIEW", "You have already reviewed this product")
)

// Seller onboarding
var (
	ErrSellerNotFound          = define(http.StatusNotFound, "SELLER_NOT_FOUND", "Seller profile not found")
	ErrSellerAlreadyExists     = define(http.StatusConflict, "SELLER_ALREADY_EXISTS", "Seller profile already exists for this user")
	ErrIllegalSellerTransition = define(http.StatusBadRequest, "ILLEGAL_SELLER_TRANSITION", "Seller status cannot be changed from its current state")
)

// Address book and devices
var (
	ErrAddressNotFound = define(http.StatusNotFound, "ADDRESS_NOT_FOUND", "Address not found")
	ErrDeviceNotFound  = define(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
)

// Persistence
var (
	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
)

// Generic
var (
	ErrInternalError = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrForbidden     = define(http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action")
	ErrNotFound      = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict      = define(http.StatusConflict, "CONFLICT", "Resource already exists")
)
