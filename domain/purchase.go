package domain

import (
	"time"
)

// CREATE TABLE public.purchases (
//     id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id    BIGINT NOT NULL REFERENCES products(id),
//     price         NUMERIC NOT NULL,
//     quantity      INTEGER NOT NULL DEFAULT 1,
//     purchase_date TIMESTAMPTZ NOT NULL
// );

type Purchase struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	ProductID    uint64    `gorm:"column:product_id;not null"`
	Price        float64   `gorm:"column:price;type:numeric;not null"`
	Quantity     int       `gorm:"column:quantity;not null;default:1"`
	PurchaseDate time.Time `gorm:"column:purchase_date;not null"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseView is a purchase joined with its product name, the shape every
// read path returns.
type PurchaseView struct {
	ID           uint64    `json:"id"`
	ProductID    uint64    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Price        float64   `json:"price"`
	PurchaseDate time.Time `json:"purchase_date"`
}
