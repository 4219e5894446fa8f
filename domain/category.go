package domain

// CREATE TABLE public.categories (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        VARCHAR(50) NOT NULL UNIQUE
// );

type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(50);not null;uniqueIndex" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
