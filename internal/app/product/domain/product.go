package domain

import (
	"fmt"
	"unicode/utf8"
)

// DefaultProfitMargin is the markup applied when the caller does not supply one (20%).
const DefaultProfitMargin = 0.2

// MinDescriptionLength is the minimum number of characters in a product description.
const MinDescriptionLength = 3

// Product is a sellable item priced as its cost plus a flat profit margin.
// A Product is always valid and never changes after construction.
type Product struct {
	description  string
	costPrice    float64
	profitMargin float64
	saleValue    *Money
}

// NewProduct creates a Product from its description, cost price and profit
// margin, where the margin is a fraction (0.5 for a 50% markup).
// Any invalid value yields ErrInvalidArgument and no product.
func NewProduct(description string, costPrice, profitMargin float64) (*Product, error) {
	if !isValidProductData(description, costPrice, profitMargin) {
		return nil, ErrInvalidArgument
	}

	cost, err := NewMoneyFromFloat(costPrice)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	markup, err := cost.MultiplyByDecimal(profitMargin)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	return &Product{
		description:  description,
		costPrice:    costPrice,
		profitMargin: profitMargin,
		saleValue:    cost.Add(markup),
	}, nil
}

// NewProductWithDefaultMargin creates a Product priced with DefaultProfitMargin.
func NewProductWithDefaultMargin(description string, costPrice float64) (*Product, error) {
	return NewProduct(description, costPrice, DefaultProfitMargin)
}

// Getters

func (p *Product) Description() string {
	return p.description
}

func (p *Product) CostPrice() float64 {
	return p.costPrice
}

func (p *Product) ProfitMargin() float64 {
	return p.profitMargin
}

// SaleValue returns costPrice * (1 + profitMargin). The value is computed
// exactly and then rounded to the nearest float64, so it can differ in the
// last place from the same formula evaluated in float64 arithmetic.
func (p *Product) SaleValue() float64 {
	return p.saleValue.Float64()
}

// SaleMoney returns the exact sale value.
func (p *Product) SaleMoney() *Money {
	return p.saleValue
}

// Format renders the product as "NOME: <description>: <sale value>", with the
// sale value written in the formatter's currency conventions.
func (p *Product) Format(f *CurrencyFormatter) string {
	return fmt.Sprintf("NOME: %s: %s", p.description, f.FormatMoney(p.saleValue))
}

// String formats the product with DefaultCurrencyFormatter.
func (p *Product) String() string {
	return p.Format(DefaultCurrencyFormatter())
}

// Validation helpers

func isValidProductData(description string, costPrice, profitMargin float64) bool {
	return utf8.RuneCountInString(description) >= MinDescriptionLength &&
		costPrice > 0.0 &&
		profitMargin > 0.0
}
