package main

import (
	"log/slog"

	"github.com/veriphi/mailcheck/pkg/config"
	"github.com/veriphi/mailcheck/pkg/logger"
	"github.com/veriphi/mailcheck/pkg/mailcheck"
)

type demoConfig struct {
	LogFormat     string `env:"MAILCHECK_LOG_FORMAT" envDefault:"json"`
	LogLevel      string `env:"MAILCHECK_LOG_LEVEL" envDefault:"info"`
	SampleValid   string `env:"MAILCHECK_SAMPLE_VALID" envDefault:"myemail@mail.com"`
	SampleInvalid string `env:"MAILCHECK_SAMPLE_INVALID" envDefault:"invalid@mail"`
}

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", "mailcheck-demo")),
	)
	logger.SetAsDefault(log)

	validator1 := mailcheck.New(mailcheck.NewPlaygroundValidator())
	validator2 := mailcheck.New(mailcheck.NewAddressValidator())
	validator3 := mailcheck.New(mailcheck.NewNaiveValidator())

	log.Info("validation results",
		slog.Bool("validator1", validator1.IsValid(cfg.SampleValid)),
		slog.Bool("validator2", validator2.IsValid(cfg.SampleValid)),
		slog.Bool("validator3", validator3.IsValid(cfg.SampleInvalid)),
	)

	// The factory passthrough leaves concrete types intact; this check is
	// illustrative only.
	_, isPlayground := validator1.(*mailcheck.PlaygroundValidator)
	_, isAddress := validator2.(*mailcheck.AddressValidator)
	_, isNaive := validator3.(*mailcheck.NaiveValidator)

	log.Info("validator identities",
		slog.Bool("validator1", isPlayground),
		slog.Bool("validator2", isAddress),
		slog.Bool("validator3", isNaive),
	)
}
