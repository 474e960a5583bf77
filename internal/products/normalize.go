package product

import (
	"fmt"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultImage is stored when a create request carries no image URL.
const DefaultImage = "placeholder"

// Rejection bodies legacy clients match on byte-for-byte. The lookup and
// delete routes carry a stray space before the comma and the not-found body
// a trailing space; both predate this service and stay as published.
const (
	MessageIDNotNumber       = "Id must be a number , please try again"
	MessageIDNotNumberUpdate = "Id must be a number, please try again"
	MessageProductNotFound   = "No product was found "
)

// RawProductForm mirrors the flat body posted by the admin catalog pages.
// Every field arrives as an optional string; checkboxes post the literal
// "on" and multi-selects post repeated keys.
type RawProductForm struct {
	ProductID          string   `json:"productID" form:"productID"`
	ProductTitle       string   `json:"productTitle" form:"productTitle"`
	ProductInStock     string   `json:"productInStock" form:"productInStock"`
	ProductCategory    string   `json:"productCategory" form:"productCategory"`
	ProductBrand       string   `json:"productBrand" form:"productBrand"`
	ProductPackage     string   `json:"productPackage" form:"productPackage"`
	ProductCasePrice   string   `json:"productCasePrice" form:"productCasePrice"`
	ProductUnitPrice   string   `json:"productUnitPrice" form:"productUnitPrice"`
	ProductDescription string   `json:"productDescription" form:"productDescription"`
	ProductImageURL    string   `json:"productImageURL" form:"productImageURL"`
	ProductVideoURL    string   `json:"productVideoURL" form:"productVideoURL"`
	ProductColors      []string `json:"productColors" form:"productColors"`
	ProductEffects     []string `json:"productEffects" form:"productEffects"`
}

// CreateProductInput is the typed write payload for product creation.
type CreateProductInput struct {
	ID          int64
	Title       string
	InStock     bool
	UnitPrice   string
	CasePrice   string
	Package     []int64
	Description string
	Image       string
	VideoURL    string
	Brand       string
	Category    string
	Colors      []string
	Effects     []string
}

// UpdateProductInput is the typed partial-update payload. Nil pointers mean
// the field was absent and must be left untouched; empty Colors/Effects
// leave the existing associations alone.
type UpdateProductInput struct {
	Title       *string
	InStock     bool
	UnitPrice   string
	CasePrice   string
	Package     *[]int64
	Description *string
	Image       *string
	VideoURL    *string
	Brand       *string
	Category    *string
	Colors      []string
	Effects     []string
}

// ParsePathID coerces a path identifier. Failures carry the legacy 503
// contract code with the caller's route-specific message and happen before
// any persistence call.
func ParsePathID(raw, message string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeInvalidIdentifier, message)
	}
	return id, nil
}

// NormalizeCreate converts the raw body into a create payload. All reference
// names and both prices are required at this boundary.
func NormalizeCreate(form RawProductForm) (CreateProductInput, error) {
	id, err := requiredInt(form.ProductID, "productID")
	if err != nil {
		return CreateProductInput{}, err
	}

	title := strings.TrimSpace(form.ProductTitle)
	if title == "" {
		return CreateProductInput{}, validationErr("productTitle is required")
	}

	brand := strings.TrimSpace(form.ProductBrand)
	if brand == "" {
		return CreateProductInput{}, validationErr("productBrand is required")
	}
	category := strings.TrimSpace(form.ProductCategory)
	if category == "" {
		return CreateProductInput{}, validationErr("productCategory is required")
	}

	unitPrice, err := normalizeCurrency(form.ProductUnitPrice, "productUnitPrice")
	if err != nil {
		return CreateProductInput{}, err
	}
	casePrice, err := normalizeCurrency(form.ProductCasePrice, "productCasePrice")
	if err != nil {
		return CreateProductInput{}, err
	}

	pkg, err := parsePackage(form.ProductPackage)
	if err != nil {
		return CreateProductInput{}, err
	}

	image := strings.TrimSpace(form.ProductImageURL)
	if image == "" {
		image = DefaultImage
	}

	return CreateProductInput{
		ID:          id,
		Title:       title,
		InStock:     checkbox(form.ProductInStock),
		UnitPrice:   unitPrice,
		CasePrice:   casePrice,
		Package:     pkg,
		Description: strings.TrimSpace(form.ProductDescription),
		Image:       image,
		VideoURL:    strings.TrimSpace(form.ProductVideoURL),
		Brand:       brand,
		Category:    category,
		Colors:      cleanNames(form.ProductColors),
		Effects:     cleanNames(form.ProductEffects),
	}, nil
}

// NormalizeUpdate converts the raw body into a partial-update payload.
// The case price stays required; a missing unit price is coerced to zero
// before formatting, matching the behavior admin tooling has relied on.
func NormalizeUpdate(form RawProductForm) (UpdateProductInput, error) {
	casePrice, err := normalizeCurrency(form.ProductCasePrice, "productCasePrice")
	if err != nil {
		return UpdateProductInput{}, err
	}

	unitRaw := strings.TrimSpace(form.ProductUnitPrice)
	if unitRaw == "" {
		unitRaw = "0"
	}
	unitPrice, err := normalizeCurrency(unitRaw, "productUnitPrice")
	if err != nil {
		return UpdateProductInput{}, err
	}

	input := UpdateProductInput{
		InStock:   checkbox(form.ProductInStock),
		UnitPrice: unitPrice,
		CasePrice: casePrice,
		Colors:    cleanNames(form.ProductColors),
		Effects:   cleanNames(form.ProductEffects),
	}

	if title := strings.TrimSpace(form.ProductTitle); title != "" {
		input.Title = &title
	}
	if raw := strings.TrimSpace(form.ProductPackage); raw != "" {
		pkg, err := parsePackage(form.ProductPackage)
		if err != nil {
			return UpdateProductInput{}, err
		}
		input.Package = &pkg
	}
	if desc := strings.TrimSpace(form.ProductDescription); desc != "" {
		input.Description = &desc
	}
	if image := strings.TrimSpace(form.ProductImageURL); image != "" {
		input.Image = &image
	}
	if video := strings.TrimSpace(form.ProductVideoURL); video != "" {
		input.VideoURL = &video
	}
	if brand := strings.TrimSpace(form.ProductBrand); brand != "" {
		input.Brand = &brand
	}
	if category := strings.TrimSpace(form.ProductCategory); category != "" {
		input.Category = &category
	}

	return input, nil
}

func requiredInt(raw, field string) (int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, validationErr(fmt.Sprintf("%s is required", field))
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, validationErr(fmt.Sprintf("%s must be numeric", field))
	}
	return id, nil
}

// normalizeCurrency parses a decimal amount and renders it with exactly two
// fractional digits, e.g. "5" becomes "5.00".
func normalizeCurrency(raw, field string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", validationErr(fmt.Sprintf("%s is required", field))
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return "", validationErr(fmt.Sprintf("%s must be a decimal amount", field))
	}
	return amount.StringFixed(2), nil
}

// parsePackage splits a comma-separated count list into ordered integers.
func parsePackage(raw string) ([]int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, validationErr("productPackage is required")
	}

	tokens := strings.Split(value, ",")
	counts := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, validationErr(fmt.Sprintf("productPackage entry %q must be numeric", strings.TrimSpace(token)))
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// checkbox maps the HTML checkbox encoding: the literal "on" is true,
// anything else (including absent) is false.
func checkbox(raw string) bool {
	return raw == "on"
}

func cleanNames(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	names := make([]string, 0, len(values))
	for _, value := range values {
		if name := strings.TrimSpace(value); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

func validationErr(message string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, message)
}
