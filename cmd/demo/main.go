// cmd/demo/main.go
package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/localstore"
	redisstore "github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/remote"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/application"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file, using environment as-is")
	}

	ctx := context.Background()
	kv := openStore(ctx, logger)

	latency := 300 * time.Millisecond
	if ms := os.Getenv("MOCK_LATENCY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			latency = time.Duration(v) * time.Millisecond
		}
	}

	remoteSvc := remote.NewService(kv, latency, logger)
	authSvc := application.NewAuthService(remoteSvc, kv)
	cartSvc := application.NewCartService(kv)
	interactionSvc := application.NewInteractionService()
	searchSvc := application.NewSearchService(kv)
	orderSvc := application.NewOrderService(
		cartSvc,
		repository.NewRemoteOrderRepository(remoteSvc),
		repository.NewLocalOrderRepository(kv),
		authSvc,
		logger,
	)

	seedDemoAccounts(ctx, remoteSvc, logger)

	runDemo(ctx, logger, authSvc, cartSvc, interactionSvc, searchSvc, orderSvc)
}

// openStore picks the key/value backend: Redis when REDIS_ADDR is set,
// otherwise the file-backed store.
func openStore(ctx context.Context, logger zerolog.Logger) ports.KeyValuePort {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store := redisstore.NewStore(addr, os.Getenv("REDIS_USERNAME"), os.Getenv("REDIS_PASSWORD"), 0, "medico:")
		if err := store.Ping(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		logger.Info().Str("addr", addr).Msg("using Redis store")
		return store
	}
	path := os.Getenv("LOCAL_STORE_PATH")
	if path == "" {
		path = "medico-data.json"
	}
	logger.Info().Str("path", path).Msg("using local file store")
	return localstore.NewStore(path)
}

// seedDemoAccounts records the two well-known accounts in a users
// collection with hashed passwords. Sign-in never consults this data (the
// mock resolves credentials from its branch table); the seed just keeps
// the demo dataset realistic.
func seedDemoAccounts(ctx context.Context, docs ports.DocumentPort, logger zerolog.Logger) {
	existing, err := docs.GetCollection(ctx, "users")
	if err != nil || len(existing) > 0 {
		return
	}
	accounts := []struct {
		email    string
		password string
		admin    bool
	}{
		{email: "admin@medico.com", password: "admin123", admin: true},
		{email: "user@example.com", password: "password123"},
	}
	for _, acct := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(acct.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Warn().Err(err).Str("email", acct.email).Msg("failed to hash demo password")
			continue
		}
		_, err = docs.AddDocument(ctx, "users", map[string]any{
			"email":    acct.email,
			"password": string(hashed),
			"isAdmin":  acct.admin,
		})
		if err != nil {
			logger.Warn().Err(err).Str("email", acct.email).Msg("failed to seed demo account")
		}
	}
}

func runDemo(
	ctx context.Context,
	logger zerolog.Logger,
	authSvc *application.AuthService,
	cartSvc *application.CartService,
	interactionSvc *application.InteractionService,
	searchSvc *application.SearchService,
	orderSvc *application.OrderService,
) {
	user, _, err := authSvc.SignIn(ctx, "user@example.com", "password123")
	if err != nil {
		logger.Fatal().Err(err).Msg("sign-in failed")
	}
	logger.Info().Str("user", user.DisplayName).Msg("signed in")

	if err := searchSvc.AddSearch(ctx, "aspirin"); err != nil {
		logger.Warn().Err(err).Msg("failed to record search")
	}

	aspirin := interactionSvc.MedicineByID("med006")
	ibuprofen := interactionSvc.MedicineByID("med002")
	for _, m := range []domain.Medicine{aspirin, ibuprofen, aspirin} {
		if err := cartSvc.Add(ctx, m); err != nil {
			logger.Fatal().Err(err).Msg("failed to add to cart")
		}
	}
	total, _ := cartSvc.Total(ctx)
	count, _ := cartSvc.ItemCount(ctx)
	logger.Info().Int("items", count).Str("total", total.StringFixed(2)).Msg("cart ready")

	if record, err := interactionSvc.CheckInteraction("med002", "med006"); err == nil && record != nil {
		logger.Warn().
			Str("severity", string(record.Severity)).
			Str("medicines", ibuprofen.Name+" + "+aspirin.Name).
			Msg(record.Recommendation)
	}

	orderID, err := orderSvc.PlaceOrder(ctx, domain.Customer{
		Name:    user.DisplayName,
		Email:   user.Email,
		Phone:   "0123456789",
		Address: "12 High Street",
	}, "cash-on-delivery", "")
	if err != nil {
		logger.Fatal().Err(err).Msg("checkout failed")
	}
	logger.Info().Str("orderId", orderID).Msg("order placed")

	if err := authSvc.SignOut(ctx); err != nil {
		logger.Warn().Err(err).Msg("sign-out failed")
	}
}
