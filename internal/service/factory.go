package service

import (
	"time"

	"github.com/redis/go-redis/v9"

	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/store"
)

type Services struct {
	stores         *store.Stores
	redis          *redis.Client
	template       frame.TemplateConfig
	registry       *chain.Registry
	verifier       Verifier
	leaderboardTTL time.Duration
}

type ServicesConfig struct {
	Stores         *store.Stores
	Redis          *redis.Client
	Template       frame.TemplateConfig
	Registry       *chain.Registry
	Verifier       Verifier
	LeaderboardTTL time.Duration
}

func NewServices(cfg ServicesConfig) *Services {
	verifier := cfg.Verifier
	if verifier == nil {
		verifier = NewNoopVerifier()
	}
	return &Services{
		stores:         cfg.Stores,
		redis:          cfg.Redis,
		template:       cfg.Template,
		registry:       cfg.Registry,
		verifier:       verifier,
		leaderboardTTL: cfg.LeaderboardTTL,
	}
}

func (s *Services) Frames() FrameService {
	return NewFrameService(s.template, s.registry, s.verifier, nil)
}

func (s *Services) Tips() TipService {
	return NewTipService(s.stores.Tips(), s.redis, s.leaderboardTTL, nil)
}

func (s *Services) Images() ImageService {
	return NewImageService()
}
