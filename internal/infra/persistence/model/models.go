// Package model holds the GORM persistence structs, one per table.
package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&PermissionModel{},
		&RoleModel{},
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&UserDeviceModel{},
		&AddressModel{},
		&SellerModel{},
		&SellerReviewModel{},
		&BrandModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&ProductListingModel{},
		&CartModel{},
		&CartItemModel{},
		&WishlistItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderSequenceModel{},
		&ReviewModel{},
	}
}
