// Command storefront runs one scripted shopping trip against the configured
// backends: sign in, add a product to the cart, then check the cart out.
// Useful as an end-to-end probe of the gateway and the storage backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/auth"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/clients"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/kv"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	productID := flag.Int64("product", 0, "product id to buy")
	quantity := flag.Int("quantity", 1, "quantity to buy")
	method := flag.String("method", "CREDIT_CARD", "payment method")
	flag.Parse()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	if *email == "" || *password == "" || *productID == 0 {
		logger.Fatal("usage: storefront -email ... -password ... -product ... [-quantity n] [-method m]")
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatalf("open %s store: %v", cfg.StorageBackend, err)
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	base := clients.NewClient("api-gateway", cfg.APIBaseURL, httpClient, nil)
	session := auth.NewSession(store, clients.NewUserClient(base), logger)
	session.Restore(ctx)

	// Authenticated clients route their token through the session.
	authed := clients.NewClient("api-gateway", cfg.APIBaseURL, httpClient, session)
	catalog := clients.NewCatalogClient(authed)
	orders := clients.NewOrderClient(authed)
	payments := clients.NewPaymentClient(authed)
	users := clients.NewUserClient(authed)

	var publisher checkout.CompletionPublisher
	if cfg.RabbitMQURL != "" {
		conn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			logger.Fatalf("dial rabbitmq: %v", err)
		}
		defer conn.Close()
		pub, err := events.NewPublisher(conn)
		if err != nil {
			logger.Fatalf("open publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	cartStore := cart.NewStore(ctx, store, logger)
	cancelSub := cartStore.Subscribe(func(c cart.Cart) {
		logger.Printf("cart: %d items, total %.2f", c.LineCount, c.TotalAmount)
	})
	defer cancelSub()

	if !session.Authenticated() {
		if _, err := session.Login(ctx, *email, *password); err != nil {
			logger.Fatalf("login: %v", err)
		}
	}
	logger.Printf("signed in as %s", session.CurrentUser().Email)

	product, err := catalog.ProductByID(ctx, *productID)
	if err != nil {
		logger.Fatalf("fetch product %d: %v", *productID, err)
	}
	cartStore.AddLine(ctx, cart.Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		ProductSKU:  product.SKU,
		UnitPrice:   product.Price,
		Quantity:    *quantity,
		ImageURL:    product.ImageURL,
	})

	orch := checkout.NewOrchestrator(cartStore, orders, payments, users, session, publisher, logger)

	form, err := orch.Begin(ctx)
	if err != nil {
		logger.Fatalf("begin checkout: %v", err)
	}
	if form.AddressErr != nil {
		logger.Printf("address book unavailable: %v", form.AddressErr)
	}
	if form.ShippingAddress == "" {
		// No saved addresses; the fields accept free text.
		form.ShippingAddress = "1 Main St, Springfield, IL 62701, US"
		form.BillingAddress = form.ShippingAddress
	}

	result, err := orch.Submit(ctx, checkout.Submission{
		ShippingAddress: form.ShippingAddress,
		BillingAddress:  form.BillingAddress,
		PaymentMethod:   models.PaymentMethod(*method),
	})
	if err != nil {
		var cerr *checkout.Error
		if errors.As(err, &cerr) && cerr.Kind == checkout.KindPayment {
			logger.Fatalf("payment failed for order %d, retry with: -method ...: %v", cerr.OrderID, err)
		}
		logger.Fatalf("checkout: %v", err)
	}

	logger.Printf("order %s placed, payment %s, charged %.2f",
		result.Order.OrderNumber, result.Payment.TransactionID, result.Totals.Total)
}

func openStore(cfg config.Config, logger *log.Logger) (kv.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemory(), nil
	case "file":
		return kv.NewFile(cfg.StoragePath)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return kv.NewRedis(client, "storefront"), nil
	case "postgres":
		return kv.Open(cfg.PostgresDSN, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
