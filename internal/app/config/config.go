package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr   string `env:"RUN_ADDRESS"`
	DBConnect string `env:"DATABASE_URI"`
	LogLevel  string `env:"LOG_LEVEL"`
	SecretKey string `env:"SECRET_KEY"`

	PaymentGatewayAddr string        `env:"PAYMENT_GATEWAY_ADDRESS"`
	StripeAPIKey       string        `env:"STRIPE_API_KEY"`
	Currency           string        `env:"PAYMENT_CURRENCY"`
	PaymentTimeout     time.Duration `env:"PAYMENT_TIMEOUT"`

	CallbackSecret      string `env:"CALLBACK_SECRET"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	RefundRetryInterval time.Duration `env:"REFUND_RETRY_INTERVAL"`
	RefundRetryBatch    int           `env:"REFUND_RETRY_BATCH"`

	WSSendBuffer int `env:"WS_SEND_BUFFER"`
}

func InitConfig() Config {
	config, err := parse(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		panic(err)
	}

	return config
}

func parse(fs *flag.FlagSet, args []string) (config Config, err error) {
	fs.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	fs.StringVar(&config.DBConnect, "d", "sqlite:orders.db", "database dsn: postgres url or sqlite:<path>")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.StringVar(&config.SecretKey, "k", "", "jwt signing key")
	fs.StringVar(&config.PaymentGatewayAddr, "r", "", "http payment gateway address")
	fs.StringVar(&config.StripeAPIKey, "s", "", "stripe api key, takes precedence over the http gateway")
	fs.StringVar(&config.Currency, "c", "cny", "payment currency")
	fs.DurationVar(&config.PaymentTimeout, "t", 5*time.Second, "payment gateway call timeout")
	fs.StringVar(&config.CallbackSecret, "g", "", "hmac secret of the http gateway callbacks")
	fs.StringVar(&config.StripeWebhookSecret, "e", "", "stripe webhook endpoint secret")
	fs.DurationVar(&config.RefundRetryInterval, "i", 30*time.Second, "refund retry interval")
	fs.IntVar(&config.RefundRetryBatch, "b", 10, "refunds retried per tick")
	fs.IntVar(&config.WSSendBuffer, "w", 16, "push channel send buffer")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("error while parsing flags: %w", err)
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("error while parsing config: %w", err)
	}

	return config, nil
}
