package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/httpx"
	"github.com/pharmadesk/pharmadesk/pkg/validate"
)

// ProductService wraps the /api/products endpoints.
type ProductService struct {
	api *Client
}

func NewProductService(api *Client) *ProductService {
	return &ProductService{api: api}
}

// List fetches the full catalogue.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	resp, err := httpx.Get(s.api.url("/api/products")).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, err
	}
	if err := resp.Throw(); err != nil {
		return nil, err
	}
	return decodeList[models.Product](resp.Raw, "products")
}

// Create uploads a new product as multipart form data, with the image
// file attached when the form names one. Returns the server's canonical
// record.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	if msg := validate.FirstError(validate.Struct(in)); msg != "" {
		return models.Product{}, &ValidationError{Msg: msg}
	}

	form := &httpx.MultipartForm{
		Fields: map[string]string{
			"name":       in.Name,
			"price":      strconv.FormatFloat(in.Price, 'f', -1, 64),
			"quantity":   strconv.Itoa(in.Quantity),
			"expiryDate": in.ExpiryDate,
		},
	}

	if in.ImagePath != "" {
		f, err := os.Open(in.ImagePath)
		if err != nil {
			return models.Product{}, fmt.Errorf("products: open image: %w", err)
		}
		defer f.Close()
		form.FileField = "image"
		form.FileName = filepath.Base(in.ImagePath)
		form.File = f
	}

	resp, err := httpx.Post(s.api.url("/api/products")).
		Body(form).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return models.Product{}, err
	}
	if err := resp.Throw(); err != nil {
		return models.Product{}, err
	}
	return decodeOne[models.Product](resp.Raw, "product")
}

// Update replaces a product and returns the server's canonical record.
func (s *ProductService) Update(ctx context.Context, id string, in models.ProductUpdate) (models.Product, error) {
	if msg := validate.FirstError(validate.Struct(in)); msg != "" {
		return models.Product{}, &ValidationError{Msg: msg}
	}

	resp, err := httpx.Put(s.api.url("/api/products/"+id)).
		Label("/api/products/{id}").
		Body(in).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return models.Product{}, err
	}
	if err := resp.Throw(); err != nil {
		return models.Product{}, err
	}
	return decodeOne[models.Product](resp.Raw, "product")
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	resp, err := httpx.Delete(s.api.url("/api/products/"+id)).
		Label("/api/products/{id}").
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return err
	}
	return resp.Throw()
}
