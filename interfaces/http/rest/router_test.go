package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"candyshop-backend/domain/catalog"
	"candyshop-backend/domain/core/entities"
	"candyshop-backend/infrastructure/persistence/abstractions"
	apperrors "candyshop-backend/pkg/errors"
)

// Function-field mocks for the repository contracts. Unset operations fail
// the request with a store error so a test never silently hits one it did
// not arrange.

type mockUserRepo struct {
	ListFn   func(ctx context.Context) ([]entities.User, error)
	GetFn    func(ctx context.Context, userID string) (*entities.User, error)
	CreateFn func(ctx context.Context, userID, name string) (*entities.User, error)
	UpdateFn func(ctx context.Context, userID, name string) (*entities.User, error)
	DeleteFn func(ctx context.Context, userID string) (*entities.User, error)
}

func (m *mockUserRepo) List(ctx context.Context) ([]entities.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, apperrors.NewStoreError("list users", nil)
}

func (m *mockUserRepo) Get(ctx context.Context, userID string) (*entities.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	return nil, apperrors.NewStoreError("get user", nil)
}

func (m *mockUserRepo) Create(ctx context.Context, userID, name string) (*entities.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, name)
	}
	return nil, apperrors.NewStoreError("create user", nil)
}

func (m *mockUserRepo) Update(ctx context.Context, userID, name string) (*entities.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, name)
	}
	return nil, apperrors.NewStoreError("update user", nil)
}

func (m *mockUserRepo) Delete(ctx context.Context, userID string) (*entities.User, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil, apperrors.NewStoreError("delete user", nil)
}

type mockProductRepo struct {
	ListFn   func(ctx context.Context) ([]entities.Product, error)
	GetFn    func(ctx context.Context, productID string) (*entities.Product, error)
	CreateFn func(ctx context.Context, product entities.Product) (*entities.Product, error)
	UpdateFn func(ctx context.Context, productID string, fields map[string]interface{}) (*entities.Product, error)
	DeleteFn func(ctx context.Context, productID string) (*entities.Product, error)
	SeedFn   func(ctx context.Context, items []catalog.SeedProduct) (*abstractions.SeedSummary, error)
}

func (m *mockProductRepo) List(ctx context.Context) ([]entities.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, apperrors.NewStoreError("list products", nil)
}

func (m *mockProductRepo) Get(ctx context.Context, productID string) (*entities.Product, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, productID)
	}
	return nil, apperrors.NewStoreError("get product", nil)
}

func (m *mockProductRepo) Create(ctx context.Context, product entities.Product) (*entities.Product, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	return nil, apperrors.NewStoreError("create product", nil)
}

func (m *mockProductRepo) Update(ctx context.Context, productID string, fields map[string]interface{}) (*entities.Product, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, productID, fields)
	}
	return nil, apperrors.NewStoreError("update product", nil)
}

func (m *mockProductRepo) Delete(ctx context.Context, productID string) (*entities.Product, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, productID)
	}
	return nil, apperrors.NewStoreError("delete product", nil)
}

func (m *mockProductRepo) Seed(ctx context.Context, items []catalog.SeedProduct) (*abstractions.SeedSummary, error) {
	if m.SeedFn != nil {
		return m.SeedFn(ctx, items)
	}
	return nil, apperrors.NewStoreError("seed products", nil)
}

type mockCartRepo struct {
	ListForUserFn func(ctx context.Context, userID string) ([]entities.CartItem, error)
	AddItemFn     func(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error)
	UpdateItemFn  func(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error)
	RemoveItemFn  func(ctx context.Context, userID, productID string) error
	ClearFn       func(ctx context.Context, userID string) (*abstractions.ClearSummary, error)
}

func (m *mockCartRepo) ListForUser(ctx context.Context, userID string) ([]entities.CartItem, error) {
	if m.ListForUserFn != nil {
		return m.ListForUserFn(ctx, userID)
	}
	return nil, apperrors.NewStoreError("list cart", nil)
}

func (m *mockCartRepo) AddItem(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error) {
	if m.AddItemFn != nil {
		return m.AddItemFn(ctx, userID, productID, amount)
	}
	return nil, apperrors.NewStoreError("add cart item", nil)
}

func (m *mockCartRepo) UpdateItem(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error) {
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, userID, productID, amount)
	}
	return nil, apperrors.NewStoreError("update cart item", nil)
}

func (m *mockCartRepo) RemoveItem(ctx context.Context, userID, productID string) error {
	if m.RemoveItemFn != nil {
		return m.RemoveItemFn(ctx, userID, productID)
	}
	return apperrors.NewStoreError("remove cart item", nil)
}

func (m *mockCartRepo) Clear(ctx context.Context, userID string) (*abstractions.ClearSummary, error) {
	if m.ClearFn != nil {
		return m.ClearFn(ctx, userID)
	}
	return nil, apperrors.NewStoreError("clear cart", nil)
}

func newTestServer(users abstractions.UserRepository, products abstractions.ProductRepository, cart abstractions.CartRepository) http.Handler {
	return NewRouter(users, products, cart, zap.NewNop(), false).Setup()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, &mockCartRepo{})

	rec := doRequest(t, handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("valid payload creates and returns 201", func(t *testing.T) {
		users := &mockUserRepo{
			CreateFn: func(ctx context.Context, userID, name string) (*entities.User, error) {
				return &entities.User{UserID: userID, Name: name}, nil
			},
		}
		handler := newTestServer(users, &mockProductRepo{}, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodPost, "/api/users", `{"userId":"alice","name":"Alice"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var user entities.User
		decodeBody(t, rec, &user)
		assert.Equal(t, "alice", user.UserID)
	})

	t.Run("validation failure returns 400 with itemized errors", func(t *testing.T) {
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodPost, "/api/users", `{"userId":"alice","name":"Alice","price":5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Message string `json:"message"`
			Errors  []struct {
				Field string `json:"field"`
				Rule  string `json:"rule"`
			} `json:"errors"`
		}
		decodeBody(t, rec, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "price", body.Errors[0].Field)
		assert.Equal(t, "exclusive", body.Errors[0].Rule)
	})

	t.Run("duplicate user returns 409", func(t *testing.T) {
		users := &mockUserRepo{
			CreateFn: func(ctx context.Context, userID, name string) (*entities.User, error) {
				return nil, apperrors.NewConflictError("user 'alice' already exists")
			},
		}
		handler := newTestServer(users, &mockProductRepo{}, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodPost, "/api/users", `{"userId":"alice","name":"Alice"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	t.Run("unknown user returns 404", func(t *testing.T) {
		users := &mockUserRepo{
			GetFn: func(ctx context.Context, userID string) (*entities.User, error) {
				return nil, apperrors.NewNotFoundError("user")
			},
		}
		handler := newTestServer(users, &mockProductRepo{}, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodGet, "/api/users/ghost", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id in the path returns 400", func(t *testing.T) {
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodGet, "/api/users/bad%20id", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsersEndpointStoreFailure(t *testing.T) {
	users := &mockUserRepo{
		ListFn: func(ctx context.Context) ([]entities.User, error) {
			return nil, apperrors.NewStoreError("list users", assert.AnError)
		},
	}
	handler := newTestServer(users, &mockProductRepo{}, &mockCartRepo{})

	rec := doRequest(t, handler, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The body must not leak store internals.
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "something went wrong", body.Message)
}

func TestUpdateProductEndpoint(t *testing.T) {
	t.Run("patch forwards only the supplied fields", func(t *testing.T) {
		var gotFields map[string]interface{}
		products := &mockProductRepo{
			UpdateFn: func(ctx context.Context, productID string, fields map[string]interface{}) (*entities.Product, error) {
				gotFields = fields
				return &entities.Product{ProductID: productID, Name: "Dark Choc", Price: 30, Image: "https://x/img.png", AmountInStock: 100}, nil
			},
		}
		handler := newTestServer(&mockUserRepo{}, products, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodPut, "/api/products/choc1", `{"price":30}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{"price": 30.0}, gotFields)
	})

	t.Run("empty patch returns 400", func(t *testing.T) {
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodPut, "/api/products/choc1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing product returns 404", func(t *testing.T) {
		products := &mockProductRepo{
			UpdateFn: func(ctx context.Context, productID string, fields map[string]interface{}) (*entities.Product, error) {
				return nil, apperrors.NewNotFoundError("product")
			},
		}
		handler := newTestServer(&mockUserRepo{}, products, &mockCartRepo{})

		rec := doRequest(t, handler, http.MethodPut, "/api/products/ghost", `{"price":30}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSeedProductsEndpoint(t *testing.T) {
	products := &mockProductRepo{
		SeedFn: func(ctx context.Context, items []catalog.SeedProduct) (*abstractions.SeedSummary, error) {
			return &abstractions.SeedSummary{BatchID: "batch-1", Succeeded: len(items), Failed: []abstractions.SeedFailure{}}, nil
		},
	}
	handler := newTestServer(&mockUserRepo{}, products, &mockCartRepo{})

	rec := doRequest(t, handler, http.MethodPost, "/api/products/seed", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	var summary abstractions.SeedSummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, len(catalog.Products()), summary.Succeeded)
}

func TestCartEndpoints(t *testing.T) {
	t.Run("add returns 201 with the line", func(t *testing.T) {
		cart := &mockCartRepo{
			AddItemFn: func(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error) {
				return &entities.CartItem{UserID: userID, ProductID: productID, Amount: amount}, nil
			},
		}
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, cart)

		rec := doRequest(t, handler, http.MethodPost, "/api/cart", `{"userId":"alice","productId":"choc1","amount":3}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var line entities.CartItem
		decodeBody(t, rec, &line)
		assert.Equal(t, 3, line.Amount)
	})

	t.Run("double add returns 409", func(t *testing.T) {
		cart := &mockCartRepo{
			AddItemFn: func(ctx context.Context, userID, productID string, amount int) (*entities.CartItem, error) {
				return nil, apperrors.NewConflictError("product 'choc1' is already in the cart, update the amount instead")
			},
		}
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, cart)

		rec := doRequest(t, handler, http.MethodPost, "/api/cart", `{"userId":"alice","productId":"choc1","amount":3}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("empty cart lists as 200 with an empty array", func(t *testing.T) {
		cart := &mockCartRepo{
			ListForUserFn: func(ctx context.Context, userID string) ([]entities.CartItem, error) {
				return []entities.CartItem{}, nil
			},
		}
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, cart)

		rec := doRequest(t, handler, http.MethodGet, "/api/cart/alice", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("remove returns a message body", func(t *testing.T) {
		cart := &mockCartRepo{
			RemoveItemFn: func(ctx context.Context, userID, productID string) error {
				return nil
			},
		}
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, cart)

		rec := doRequest(t, handler, http.MethodDelete, "/api/cart/alice/choc1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Message string `json:"message"`
		}
		decodeBody(t, rec, &body)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("clear reports the deleted count", func(t *testing.T) {
		cart := &mockCartRepo{
			ClearFn: func(ctx context.Context, userID string) (*abstractions.ClearSummary, error) {
				return &abstractions.ClearSummary{DeletedCount: 2}, nil
			},
		}
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, cart)

		rec := doRequest(t, handler, http.MethodDelete, "/api/cart/alice", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var summary abstractions.ClearSummary
		decodeBody(t, rec, &summary)
		assert.Equal(t, 2, summary.DeletedCount)
	})

	t.Run("clearing an empty cart returns 404", func(t *testing.T) {
		cart := &mockCartRepo{
			ClearFn: func(ctx context.Context, userID string) (*abstractions.ClearSummary, error) {
				return nil, apperrors.NewNotFoundError("cart")
			},
		}
		handler := newTestServer(&mockUserRepo{}, &mockProductRepo{}, cart)

		rec := doRequest(t, handler, http.MethodDelete, "/api/cart/alice", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
