package store

// Product is the sole inventory entity. The ID is assigned by the store on
// creation and immutable thereafter; field constraints (non-empty name and
// category, non-negative price and stock) are enforced upstream by the tool
// façade, not re-checked here.
type Product struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Category string  `gorm:"index;not null" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Stock    int32   `gorm:"not null" json:"stock"`
}

// TableName maps the model to the products table.
func (Product) TableName() string {
	return "products"
}
