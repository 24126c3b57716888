package injector

import (
	"github.com/zeusync/zoo/internal/config"
	"github.com/zeusync/zoo/internal/core/observability/log"
	"github.com/zeusync/zoo/internal/core/zoo"
	"github.com/zeusync/zoo/internal/scenario"
)

// App is everything the zoo binary needs, assembled by InitializeApp.
type App struct {
	Logger  *log.Logger
	Zoo     *zoo.Zoo
	Journal *zoo.Journal
	Runner  *scenario.Runner
}

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	opts, err := cfg.Log.Options()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(opts)
}
