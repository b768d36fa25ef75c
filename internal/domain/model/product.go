package model

// Product is a catalog entry. Price is kept in minor currency units.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
}

// CartItem is one line of a customer's temporary, pre-checkout cart.
type CartItem struct {
	ID          int64
	Username    string
	ProductID   int64
	ProductName string
	Price       int64
	Quantity    int
}

// Portal aggregates everything shown on the customer landing page.
type Portal struct {
	Username string
	Cart     []CartItem
	Products []Product
	TotalQty int
}
