package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/TokDenis/post-store/config"
	"github.com/TokDenis/post-store/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)

	posts := services.NewPosts()

	if cfg.SeedDir != "" {
		_, err = services.LoadSeed(cfg.SeedDir, posts)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
	}

	stats := services.NewStats()
	comments := services.NewCommentsService(posts, cfg.CommentsFlush)

	api := services.NewApi(cfg, posts, stats, comments)

	go func() {
		err := api.ListenAndServe(cfg.Addr)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if err := api.Shutdown(); err != nil {
		log.Error().Err(err).Send()
	}
	comments.Close()
	stats.Close()

	log.Info().Int("posts", posts.Len()).Msg("stopped")
}
