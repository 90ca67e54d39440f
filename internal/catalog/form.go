package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductForm carries the admin form fields exactly as the user typed them.
type ProductForm struct {
	Name              string
	Sub               string
	Price             string
	CostPrice         string
	StockQuantity     string
	LowStockThreshold string
}

// ProductInput is the typed payload sent to the catalog API.
type ProductInput struct {
	Name              string  `json:"name"`
	Sub               string  `json:"sub"`
	Price             float64 `json:"price"`
	CostPrice         float64 `json:"costPrice"`
	StockQuantity     int     `json:"stockQuantity"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// DefaultForm is the blank form state for a new product.
func DefaultForm() ProductForm {
	return ProductForm{Sub: "Lyophilized", LowStockThreshold: "5"}
}

// FormFromInput populates a form from an existing product for editing,
// coercing numeric fields to display strings.
func FormFromInput(in ProductInput) ProductForm {
	return ProductForm{
		Name:              in.Name,
		Sub:               in.Sub,
		Price:             strconv.FormatFloat(in.Price, 'f', -1, 64),
		CostPrice:         strconv.FormatFloat(in.CostPrice, 'f', -1, 64),
		StockQuantity:     strconv.Itoa(in.StockQuantity),
		LowStockThreshold: strconv.Itoa(in.LowStockThreshold),
	}
}

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseProductForm validates and converts the form into a typed input.
// Blank optional fields take the documented defaults (cost 0, stock 0,
// threshold 5); anything non-blank that fails to parse is reported as a
// field error rather than silently substituted.
func ParseProductForm(f ProductForm) (ProductInput, []FieldError) {
	var errs []FieldError
	in := ProductInput{
		Name: strings.TrimSpace(f.Name),
		Sub:  strings.TrimSpace(f.Sub),
	}

	if in.Name == "" {
		errs = append(errs, FieldError{"name", "name is required"})
	}
	if in.Sub == "" {
		errs = append(errs, FieldError{"sub", "type/subtitle is required"})
	}

	if strings.TrimSpace(f.Price) == "" {
		errs = append(errs, FieldError{"price", "price is required"})
	} else if v, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64); err != nil {
		errs = append(errs, FieldError{"price", "price must be a number"})
	} else if v < 0 {
		errs = append(errs, FieldError{"price", "price cannot be negative"})
	} else {
		in.Price = v
	}

	in.CostPrice = parseOptionalFloat(f.CostPrice, 0, "costPrice", &errs)
	in.StockQuantity = parseOptionalInt(f.StockQuantity, 0, "stockQuantity", &errs)
	in.LowStockThreshold = parseOptionalInt(f.LowStockThreshold, 5, "lowStockThreshold", &errs)

	return in, errs
}

func parseOptionalFloat(s string, def float64, field string, errs *[]FieldError) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*errs = append(*errs, FieldError{field, field + " must be a number"})
		return def
	}
	if v < 0 {
		*errs = append(*errs, FieldError{field, field + " cannot be negative"})
		return def
	}
	return v
}

func parseOptionalInt(s string, def int, field string, errs *[]FieldError) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		*errs = append(*errs, FieldError{field, field + " must be a whole number"})
		return def
	}
	if v < 0 {
		*errs = append(*errs, FieldError{field, field + " cannot be negative"})
		return def
	}
	return v
}
