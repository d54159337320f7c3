package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/apicache"
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/checkout"
	"github.com/jrsteele09/go-storefront-client/internal/config"
	"github.com/jrsteele09/go-storefront-client/notify"
	"github.com/jrsteele09/go-storefront-client/session"
	"github.com/jrsteele09/go-storefront-client/storage"
	"github.com/jrsteele09/go-storefront-client/storefront"
	"github.com/jrsteele09/go-storefront-client/wishlist"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running storefront: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	displayAppname(cfg.AppName)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	client, err := buildClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := client.LoadCatalog(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	view := client.CatalogView()
	fmt.Printf("Catalog: %d products, page %d/%d\n", view.TotalCount, view.Page+1, view.PageCount)
	for _, product := range view.Products {
		fmt.Printf("  %-30s %-20s $%.2f\n", product.Name, product.Category, product.Price)
	}

	if client.Session().Authenticated() {
		if err := client.LoadCart(ctx); err == nil {
			totals := client.CartTotals()
			fmt.Printf("Cart: subtotal $%.2f, shipping $%.2f, tax $%.2f, total $%.2f\n",
				totals.Subtotal, totals.Shipping, totals.Tax, totals.Total)
			fmt.Printf("(free shipping above $%.2f)\n", float64(checkout.FreeShippingThreshold))
		}
	}

	return nil
}

func buildClient(cfg *config.Config, logger zerolog.Logger) (*storefront.Client, error) {
	var persistence storage.Port
	if cfg.DataDir != "" {
		filePort, err := storage.NewFilePort(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		persistence = filePort
	} else {
		persistence = storage.NewMemoryPort()
	}

	sessionStore, err := session.NewStore(persistence)
	if err != nil {
		return nil, err
	}
	catalogStore, err := catalog.NewStore(persistence)
	if err != nil {
		return nil, err
	}
	wishlistStore, err := wishlist.NewStore(persistence)
	if err != nil {
		return nil, err
	}

	apiClient, err := api.NewClient(cfg.APIBaseURL, sessionStore,
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	cache, err := apicache.New(func(ctx context.Context, endpoint api.EndpointID, args any) (any, error) {
		return api.Invoke(ctx, apiClient, endpoint, args)
	}, apicache.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return storefront.New(apiClient, cache, storefront.Stores{
		Session:  sessionStore,
		Catalog:  catalogStore,
		Wishlist: wishlistStore,
	}, notify.NewCenter(),
		storefront.WithLogger(logger),
		storefront.WithPageSize(cfg.PageSize),
		storefront.WithSearchDebounce(cfg.SearchDebounce),
	)
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
