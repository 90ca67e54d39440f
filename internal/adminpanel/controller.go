package adminpanel

import (
	"context"
	"errors"
	"log"

	"biovibe-backend/internal/catalog"
	"biovibe-backend/internal/models"
)

type Mode int

const (
	ModeListing Mode = iota
	ModeCreate
	ModeEdit
)

// Controller is the admin page's state machine: a product list plus a
// modal form in create or edit mode. It is single-threaded like the UI
// event loop it stands in for; callers must not invoke it concurrently.
//
// The cache policy is refetch-after-every-mutation, delete included.
type Controller struct {
	client  *Client
	confirm func(prompt string) bool
	notify  func(msg string)

	products []models.Product
	loading  bool
	mode     Mode
	editing  *models.Product
	form     catalog.ProductForm
}

func NewController(client *Client, confirm func(string) bool, notify func(string)) *Controller {
	return &Controller{
		client:  client,
		confirm: confirm,
		notify:  notify,
		form:    catalog.DefaultForm(),
	}
}

func (c *Controller) Products() []models.Product { return c.products }
func (c *Controller) Loading() bool              { return c.loading }
func (c *Controller) Mode() Mode                 { return c.mode }
func (c *Controller) Editing() *models.Product   { return c.editing }

// Form exposes the mutable form state, the way input handlers write into it.
func (c *Controller) Form() *catalog.ProductForm { return &c.form }

// Load fetches the product list. A failure leaves the list empty and is
// only logged; the page shows an empty table rather than an error.
func (c *Controller) Load(ctx context.Context) {
	c.loading = true
	products, err := c.client.List(ctx)
	if err != nil {
		log.Printf("adminpanel: failed to fetch products: %v", err)
		products = nil
	}
	c.products = products
	c.loading = false
}

func (c *Controller) OpenCreate() {
	c.editing = nil
	c.form = catalog.DefaultForm()
	c.mode = ModeCreate
}

func (c *Controller) OpenEdit(p models.Product) {
	c.editing = &p
	c.form = catalog.FormFromInput(catalog.ProductInput{
		Name:              p.Name,
		Sub:               p.Sub,
		Price:             p.Price,
		CostPrice:         p.CostPrice,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
	})
	c.mode = ModeEdit
}

func (c *Controller) Cancel() {
	c.editing = nil
	c.form = catalog.DefaultForm()
	c.mode = ModeListing
}

// Submit parses the form and issues a create or update depending on mode.
// Validation and server-reported failures keep the form open and surface
// the message; transport failures surface a generic one. Success closes
// the form and refetches the list.
func (c *Controller) Submit(ctx context.Context) {
	input, fieldErrs := catalog.ParseProductForm(c.form)
	if len(fieldErrs) > 0 {
		c.notify("Error: " + fieldErrs[0].Message)
		return
	}

	var err error
	if c.mode == ModeEdit && c.editing != nil {
		err = c.client.Update(ctx, c.editing.ID, input)
	} else {
		err = c.client.Create(ctx, input)
	}

	var apiErr *APIError
	switch {
	case err == nil:
		c.Cancel()
		c.Load(ctx)
	case errors.As(err, &apiErr):
		c.notify("Error: " + apiErr.Message)
	default:
		c.notify("Failed to save product")
	}
}

// Delete asks for confirmation, then deletes and refetches.
func (c *Controller) Delete(ctx context.Context, id uint) {
	if !c.confirm("Are you sure you want to delete this product?") {
		return
	}

	if err := c.client.Delete(ctx, id); err != nil {
		c.notify("Failed to delete product")
		return
	}
	c.Load(ctx)
}
