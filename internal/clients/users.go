package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

// UserClient covers the user service: accounts, authentication, and the
// address book.
type UserClient struct{ c *Client }

func NewUserClient(c *Client) *UserClient { return &UserClient{c: c} }

func (uc *UserClient) Register(ctx context.Context, req models.UserRegistration) (*models.User, error) {
	var u models.User
	if err := uc.c.post(ctx, "/users/register", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (uc *UserClient) Login(ctx context.Context, req models.UserLogin) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := uc.c.post(ctx, "/users/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (uc *UserClient) UserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := uc.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (uc *UserClient) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := uc.c.get(ctx, "/users/email/"+email, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (uc *UserClient) AllUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := uc.c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *UserClient) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	q := url.Values{"query": {query}}
	var out []models.User
	if err := uc.c.get(ctx, "/users/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *UserClient) UpdateUser(ctx context.Context, id int64, u models.User) (*models.User, error) {
	var out models.User
	if err := uc.c.put(ctx, fmt.Sprintf("/users/%d", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UserClient) DeleteUser(ctx context.Context, id int64) error {
	return uc.c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

func (uc *UserClient) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error) {
	q := url.Values{"status": {string(status)}}
	var u models.User
	if err := uc.c.patch(ctx, fmt.Sprintf("/users/%d/status", id), q, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (uc *UserClient) CreateAddress(ctx context.Context, req models.AddressCreate) (*models.Address, error) {
	var a models.Address
	if err := uc.c.post(ctx, "/addresses", nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (uc *UserClient) AddressByID(ctx context.Context, id int64) (*models.Address, error) {
	var a models.Address
	if err := uc.c.get(ctx, fmt.Sprintf("/addresses/%d", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (uc *UserClient) AddressesByUser(ctx context.Context, userID int64) ([]models.Address, error) {
	var out []models.Address
	if err := uc.c.get(ctx, fmt.Sprintf("/addresses/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *UserClient) UpdateAddress(ctx context.Context, id int64, a models.Address) (*models.Address, error) {
	var out models.Address
	if err := uc.c.put(ctx, fmt.Sprintf("/addresses/%d", id), a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UserClient) DeleteAddress(ctx context.Context, id int64) error {
	return uc.c.delete(ctx, fmt.Sprintf("/addresses/%d", id))
}

func (uc *UserClient) SetDefaultAddress(ctx context.Context, addressID, userID int64) (*models.Address, error) {
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	var a models.Address
	if err := uc.c.patch(ctx, fmt.Sprintf("/addresses/%d/default", addressID), q, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
