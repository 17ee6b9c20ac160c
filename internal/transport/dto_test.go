package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/febdev/feb_shop/internal/models"
)

func TestProductViewFieldOrder(t *testing.T) {
	p := models.Product{ID: 1, Name: "Laptop", Description: "d", Price: 1299, Stock: 20}

	data, err := json.Marshal(FromProduct(p))
	require.NoError(t, err)
	require.Equal(t, `{"id":1,"name":"Laptop","description":"d","price":1299,"stock":20}`, string(data))
}

func TestUserViewNeverContainsPassword(t *testing.T) {
	u := models.User{ID: 2, Name: "A", Email: "a@x.com", PasswordHash: "very-secret-hash", IsAdmin: true}

	data, err := json.Marshal(FromUser(u))
	require.NoError(t, err)
	require.Equal(t, `{"id":2,"name":"A","email":"a@x.com","is_admin":true}`, string(data))
	require.NotContains(t, string(data), "very-secret-hash")
	require.NotContains(t, string(data), "password")
}

func TestFromProductsKeepsOrderAndLength(t *testing.T) {
	items := []models.Product{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}

	views := FromProducts(items)
	require.Len(t, views, 2)
	require.Equal(t, 1, views[0].ID)
	require.Equal(t, 2, views[1].ID)
}

func TestFromUsers(t *testing.T) {
	users := []models.User{
		{ID: 1, Email: "a@x.com"},
		{ID: 2, Email: "b@x.com", IsAdmin: true},
	}

	views := FromUsers(users)
	require.Len(t, views, 2)
	require.Equal(t, "a@x.com", views[0].Email)
	require.True(t, views[1].IsAdmin)
}
