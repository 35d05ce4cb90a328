package logger

import (
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/config"
)

// New builds a JSON production logger when the environment is "production"
// and a console development logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
