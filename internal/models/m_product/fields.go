package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID     = "product_id"
	Name          = "name"
	Description   = "description"
	Category      = "category"
	Brand         = "brand"
	SKU           = "sku"
	Price         = "price"
	Stock         = "stock"
	ImageURLs     = "image_urls"
	Tags          = "tags"
	Weight        = "weight"
	RatingAverage = "rating_average"
	RatingCount   = "rating_count"
	IsActive      = "is_active"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)
