package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/murkotick/product-pricing/internal/app/product/domain"
	"github.com/murkotick/product-pricing/internal/config"
	"github.com/murkotick/product-pricing/internal/log"
)

// pricetag prints the sale price label of a single product.
//
// Usage:
//
//	pricetag -description Caderno -cost 5 -margin 0.5
//	PRICETAG_LOCALE=pt-BR pricetag -description Lapis -cost 1
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error running pricetag: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	type Config struct {
		Log      config.Log
		Pricetag config.Pricetag
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(stderr, cfg.Log)

	fs := flag.NewFlagSet("pricetag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	description := fs.String("description", "", "product description (at least 3 characters)")
	cost := fs.Float64("cost", 0, "cost price, greater than zero")
	margin := fs.Float64("margin", domain.DefaultProfitMargin, "profit margin as a fraction, greater than zero")
	locale := fs.String("locale", cfg.Pricetag.Locale, "BCP 47 locale used to format the sale value")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	marginSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "margin" {
			marginSet = true
		}
	})

	formatter, err := domain.NewCurrencyFormatter(*locale)
	if err != nil {
		return fmt.Errorf("error creating currency formatter: %w", err)
	}

	var p *domain.Product
	if marginSet {
		p, err = domain.NewProduct(*description, *cost, *margin)
	} else {
		p, err = domain.NewProductWithDefaultMargin(*description, *cost)
	}
	if err != nil {
		logger.Error("invalid product",
			slog.String("description", *description),
			slog.Float64("cost_price", *cost),
			slog.Float64("profit_margin", *margin),
			slog.Any("error", err),
		)
		return fmt.Errorf("error creating product: %w", err)
	}

	logger.Debug("product priced",
		slog.String("description", p.Description()),
		slog.String("sale_value", p.SaleMoney().String()),
		slog.String("locale", formatter.Locale()),
		slog.String("currency", formatter.Currency()),
	)

	_, err = fmt.Fprintln(stdout, p.Format(formatter))
	return err
}
