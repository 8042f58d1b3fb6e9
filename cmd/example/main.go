package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/peoplefund-tech/slaccato"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting slaccato example bot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	bot, err := slaccato.New(slaccato.Config{
		BotToken:       viper.GetString("slack.bot_token"),
		AppToken:       viper.GetString("slack.app_token"),
		BotName:        viper.GetString("bot.name"),
		HandlerTimeout: handlerTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing slack bot")
	}

	askMethod := NewAskMethod(
		viper.GetString("openrouter.api_key"),
		viper.GetString("chat.system_prompt"),
		viper.GetString("chat.model"))

	if err := bot.AddMethod(&PingMethod{}); err != nil {
		log.Fatal().Err(err).Msg("failed registering ping method")
	}
	if err := bot.AddMethod(askMethod); err != nil {
		log.Fatal().Err(err).Msg("failed registering ask method")
	}
	if err := bot.AddMethod(NewStatusMethod(time.Now())); err != nil {
		log.Fatal().Err(err).Msg("failed registering status method")
	}

	log.Info().Msg("bot listening")
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}
