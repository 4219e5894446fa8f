package domain

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        VARCHAR(100) NOT NULL UNIQUE,
//     category_id BIGINT REFERENCES categories(id)
// );

type Product struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	CategoryID *uint64 `gorm:"column:category_id" json:"category_id,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
