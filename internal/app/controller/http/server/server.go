package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/config"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/admin"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/callback"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/middleware/signature"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/orders"
	"github.com/avGenie/go-order-lifecycle/internal/app/controller/ws"
	"github.com/avGenie/go-order-lifecycle/internal/app/gateway/httpgw"
	"github.com/avGenie/go-order-lifecycle/internal/app/gateway/stripegw"
	"github.com/avGenie/go-order-lifecycle/internal/app/metrics"
	"github.com/avGenie/go-order-lifecycle/internal/app/notify"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
	"github.com/avGenie/go-order-lifecycle/internal/app/usecase/order"
	"github.com/avGenie/go-order-lifecycle/internal/app/usecase/payment"
)

const shutdownTimeout = 5 * time.Second

var ErrGatewayNotConfigured = errors.New("neither stripe key nor payment gateway address is configured")

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	hub     *notify.Hub
	retrier *payment.RefundRetrier
}

func New(config config.Config, storage storage.Storage) (*HTTPServer, error) {
	gateway, err := createGateway(config)
	if err != nil {
		return nil, err
	}

	hub := notify.NewHub()
	reconciler := payment.NewReconciler(storage, gateway, hub, config.PaymentTimeout)
	service := order.NewService(storage, reconciler, hub)

	if len(config.CallbackSecret) == 0 {
		zap.L().Warn("callback secret is not set, gateway callbacks will be refused")
	}

	mux := createMux(
		config,
		orders.New(service, reconciler, config.PaymentTimeout),
		admin.New(service),
		callback.New(reconciler),
		ws.New(hub, config.WSSendBuffer),
	)

	return &HTTPServer{
		server: &http.Server{
			Addr:    config.NetAddr,
			Handler: mux,
		},
		config:  config,
		storage: storage,
		hub:     hub,
		retrier: payment.CreateRefundRetrier(reconciler, config.RefundRetryInterval, config.RefundRetryBatch),
	}, nil
}

func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go s.retrier.Start()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	s.retrier.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createGateway(config config.Config) (payment.Gateway, error) {
	if len(config.StripeAPIKey) != 0 {
		gateway, err := stripegw.New(config.StripeAPIKey, config.Currency, nil)
		if err != nil {
			return nil, fmt.Errorf("error while creating stripe gateway: %w", err)
		}
		zap.L().Info("payments go through stripe")

		return gateway, nil
	}

	if len(config.PaymentGatewayAddr) != 0 {
		gateway, err := httpgw.New(config.PaymentGatewayAddr, config.PaymentTimeout)
		if err != nil {
			return nil, fmt.Errorf("error while creating http payment gateway: %w", err)
		}
		zap.L().Info("payments go through http gateway", zap.String("address", config.PaymentGatewayAddr))

		return gateway, nil
	}

	return nil, ErrGatewayNotConfigured
}

func createMux(config config.Config, orders orders.Order, admin admin.Admin, callback callback.Callback, push *ws.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Handle("/metrics", metrics.Handler())
	r.Get("/ws/{sid}", push.Connect())

	r.Route("/api/notify", func(r chi.Router) {
		r.Post("/stripe", callback.StripeEvents(config.StripeWebhookSecret))

		r.Group(func(r chi.Router) {
			r.Use(signature.New(config.CallbackSecret, signature.DefaultClockSkew).RequireSignature)

			r.Post("/paySuccess", callback.PaySuccess())
			r.Post("/refundSuccess", callback.RefundSuccess())
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(token.TokenParserMiddleware(config.SecretKey))

		r.Route("/api/user/order", func(r chi.Router) {
			r.Post("/submit", orders.Submit())
			r.Put("/payment", orders.Payment())
			r.Get("/historyOrders", orders.History())
			r.Get("/orderDetail/{id}", orders.Details())
			r.Put("/cancel/{id}", orders.Cancel())
			r.Post("/repetition/{id}", orders.Repetition())
			r.Get("/reminder/{id}", orders.Reminder())
		})

		r.Route("/api/admin/order", func(r chi.Router) {
			r.Use(token.RequireStaff)

			r.Get("/conditionSearch", admin.ConditionSearch())
			r.Get("/statistics", admin.Statistics())
			r.Get("/details/{id}", admin.Details())
			r.Put("/confirm", admin.Confirm())
			r.Put("/rejection", admin.Rejection())
			r.Put("/cancel", admin.Cancel())
			r.Put("/delivery/{id}", admin.Delivery())
			r.Put("/complete/{id}", admin.Complete())
		})
	})

	return r
}
