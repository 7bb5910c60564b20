// Package sources builds package repositories from the configured settings.
package sources

import (
	"net/http"

	"go.trai.ch/pinset/internal/adapters/aggregate"
	"go.trai.ch/pinset/internal/adapters/feed"
	"go.trai.ch/pinset/internal/adapters/folder"
	"go.trai.ch/pinset/internal/adapters/installed"
	"go.trai.ch/pinset/internal/core/domain"
	"go.trai.ch/pinset/internal/core/ports"
	"go.trai.ch/zerr"
)

// AggregateName is the name of the repository combining every configured source.
const AggregateName = "sources"

var _ ports.SourceFactory = (*Factory)(nil)

// Factory implements ports.SourceFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory whose repositories report through logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// Installed opens the installed-package store at settings.InstalledPath.
func (f *Factory) Installed(settings *domain.Settings) (ports.InstalledRepository, error) {
	path := settings.InstalledPath
	if path == "" {
		path = domain.DefaultInstalledPath
	}
	store, err := installed.NewStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Aggregate builds a folder repository per local source and a feed repository per remote
// source, in configuration order. All remote sources share one HTTP client.
func (f *Factory) Aggregate(settings *domain.Settings) (ports.AggregateRepository, error) {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultFeedTimeout
	}
	client := &http.Client{Timeout: timeout}

	var locals, remotes []ports.Repository
	for i, spec := range settings.Sources {
		switch {
		case spec.Path != "" && spec.URL != "":
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSource, "source has both path and url"), "index", i)
		case spec.IsLocal():
			locals = append(locals, folder.NewRepository(spec.Name, spec.Path, f.logger))
		case spec.URL != "":
			remotes = append(remotes, feed.NewRepository(spec.Name, spec.URL, client))
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSource, "source has neither path nor url"), "index", i)
		}
	}

	if len(locals)+len(remotes) == 0 {
		f.logger.Warn("no package sources configured")
	}
	return aggregate.New(AggregateName, locals, remotes), nil
}
