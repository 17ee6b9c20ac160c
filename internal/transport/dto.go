package transport

import "github.com/febdev/feb_shop/internal/models"

// ProductView is the outbound projection of a product. Field order here is the
// field order on the wire.
type ProductView struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// UserView is the outbound projection of a user. The password hash has no
// field here, so it can never leak into a response.
type UserView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func FromProduct(p models.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

func FromProducts(products []models.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = FromProduct(p)
	}
	return views
}

func FromUser(u models.User) UserView {
	return UserView{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

func FromUsers(users []models.User) []UserView {
	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = FromUser(u)
	}
	return views
}
