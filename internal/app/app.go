package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/paylink/internal/cache"
	"github.com/fsdevblog/paylink/internal/config"
	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/pgrepo"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/internal/service"
	"github.com/fsdevblog/paylink/internal/transport/api"
	"github.com/fsdevblog/paylink/internal/transport/gateway"
	"github.com/fsdevblog/paylink/internal/transport/notifier"
	"github.com/fsdevblog/paylink/internal/transport/payouts"
	pushclient "github.com/fsdevblog/paylink/internal/transport/push/client"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	accountStatusCacheTTL = 30 * time.Second
	shutdownTimeout       = 10 * time.Second
	readHeaderTimeout     = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает http сервер, воркеры уведомлений и процессор выплат. Завершается по SIGINT/SIGTERM
// или при ошибке любого из компонентов.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	statusCache, closeCache, cacheErr := a.initStatusCache(notifyCtx)
	if cacheErr != nil {
		return fmt.Errorf("app run: %s", cacheErr.Error())
	}
	defer closeCache()

	pushNotifier := notifier.New(pushclient.New(a.Config.PushGatewayURL, a.Config.PushAccessToken), a.Logger).
		SetWorkers(a.Config.NotifierWorkers)

	services, sErr := service.Factory(unitOfWork, service.Dependencies{
		Gateway: gateway.New(gateway.Config{
			SecretKey:            a.Config.StripeSecretKey,
			WebhookSecret:        a.Config.StripeWebhookSecret,
			OnboardingRefreshURL: a.Config.OnboardingRefreshURL,
			OnboardingReturnURL:  a.Config.OnboardingReturnURL,
			BusinessURL:          a.Config.BusinessURL,
		}, a.Logger),
		Notifier:    pushNotifier,
		StatusCache: statusCache,
		Logger:      a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}
	pushNotifier.SetServicer(services.AccountService)

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		PaymentLinkService: services.PaymentLinkService,
		WebhookService:     services.WebhookService,
		AccountService:     services.AccountService,
		PayoutService:      services.PayoutService,
		JWTSecretKey:       []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	payoutProcessor := payouts.New(services.PayoutService, a.Logger).
		SetInterval(a.Config.PayoutInterval)

	g, gCtx := errgroup.WithContext(notifyCtx)

	g.Go(func() error {
		a.Logger.Infof("listening on %s", a.Config.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return pushNotifier.Run(gCtx)
	})

	g.Go(func() error {
		payoutProcessor.Run(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// initStatusCache без REDIS_ADDR статус аккаунта всегда запрашивается у процессора.
func (a *App) initStatusCache(ctx context.Context) (service.AccountStatusCache, func(), error) {
	if a.Config.RedisAddr == "" {
		return cache.Noop[domain.AccountStatus]{}, func() {}, nil
	}

	client, err := cache.Connect(ctx, a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("init status cache: %w", err)
	}
	closeFn := func() {
		if closeErr := client.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("closing redis client")
		}
	}
	return cache.NewViewCache[domain.AccountStatus](client, "account_status", accountStatusCacheTTL, a.Logger),
		closeFn, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.PayoutRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPayoutRepository(dbtx)
		},
		repoargs.PushTokenRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPushTokenRepository(dbtx)
		},
		repoargs.WebhookEventRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWebhookEventRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
