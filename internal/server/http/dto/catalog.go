package dto

import "github.com/polkiloo/storefront/internal/domain/model"

// ProductView is one catalog entry.
type ProductView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
}

// CartItemView is one temporary cart line.
type CartItemView struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

func NewProductViews(products []model.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, ProductView{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price})
	}
	return out
}

func NewCartItemViews(items []model.CartItem) []CartItemView {
	out := make([]CartItemView, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}
	return out
}
