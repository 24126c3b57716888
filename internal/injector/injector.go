//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"io"

	"github.com/google/wire"

	"github.com/zeusync/zoo/internal/config"
	"github.com/zeusync/zoo/internal/core/events/bus"
	"github.com/zeusync/zoo/internal/core/observability/log"
	"github.com/zeusync/zoo/internal/core/zoo"
	"github.com/zeusync/zoo/internal/scenario"
)

func InitializeApp(cfg *config.Config, out io.Writer) (*App, error) {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		bus.New,
		zoo.New,
		zoo.NewJournal,
		scenario.NewRunner,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
