package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

// CatalogClient covers the product service: products, categories, reviews.
type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

func (cc *CatalogClient) CreateProduct(ctx context.Context, req models.ProductCreate) (*models.Product, error) {
	var p models.Product
	if err := cc.c.post(ctx, "/products", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (cc *CatalogClient) ProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := cc.c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (cc *CatalogClient) ProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var p models.Product
	if err := cc.c.get(ctx, "/products/sku/"+sku, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (cc *CatalogClient) AllProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := cc.c.get(ctx, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) ProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	var out []models.Product
	if err := cc.c.get(ctx, fmt.Sprintf("/products/category/%d", categoryID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	q := url.Values{"query": {query}}
	var out []models.Product
	if err := cc.c.get(ctx, "/products/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) ProductsByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	var out []models.Product
	if err := cc.c.get(ctx, "/products/brand/"+brand, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) ProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Product, error) {
	q := url.Values{
		"minPrice": {strconv.FormatFloat(minPrice, 'f', -1, 64)},
		"maxPrice": {strconv.FormatFloat(maxPrice, 'f', -1, 64)},
	}
	var out []models.Product
	if err := cc.c.get(ctx, "/products/price-range", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) UpdateProduct(ctx context.Context, id int64, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := cc.c.put(ctx, fmt.Sprintf("/products/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CatalogClient) DeleteProduct(ctx context.Context, id int64) error {
	return cc.c.delete(ctx, fmt.Sprintf("/products/%d", id))
}

func (cc *CatalogClient) UpdateProductStatus(ctx context.Context, id int64, status models.ProductStatus) (*models.Product, error) {
	q := url.Values{"status": {string(status)}}
	var p models.Product
	if err := cc.c.patch(ctx, fmt.Sprintf("/products/%d/status", id), q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (cc *CatalogClient) CreateCategory(ctx context.Context, req models.CategoryCreate) (*models.Category, error) {
	var c models.Category
	if err := cc.c.post(ctx, "/categories", nil, req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cc *CatalogClient) CategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := cc.c.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cc *CatalogClient) AllCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := cc.c.get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) Subcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	var out []models.Category
	if err := cc.c.get(ctx, fmt.Sprintf("/categories/%d/subcategories", parentID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) UpdateCategory(ctx context.Context, id int64, c models.Category) (*models.Category, error) {
	var out models.Category
	if err := cc.c.put(ctx, fmt.Sprintf("/categories/%d", id), c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CatalogClient) DeleteCategory(ctx context.Context, id int64) error {
	return cc.c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}

func (cc *CatalogClient) CreateReview(ctx context.Context, req models.ReviewCreate) (*models.Review, error) {
	var r models.Review
	if err := cc.c.post(ctx, "/reviews", nil, req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (cc *CatalogClient) ReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	var r models.Review
	if err := cc.c.get(ctx, fmt.Sprintf("/reviews/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (cc *CatalogClient) ReviewsByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	var out []models.Review
	if err := cc.c.get(ctx, fmt.Sprintf("/reviews/product/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) ReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	var out []models.Review
	if err := cc.c.get(ctx, fmt.Sprintf("/reviews/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CatalogClient) DeleteReview(ctx context.Context, id int64) error {
	return cc.c.delete(ctx, fmt.Sprintf("/reviews/%d", id))
}
