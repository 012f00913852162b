package cmd

import (
	"context"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/config"
	"github.com/barhopapp/barhop/internal/credstore"
	"github.com/barhopapp/barhop/internal/gate"
	"github.com/barhopapp/barhop/internal/log"
	"github.com/barhopapp/barhop/internal/session"
)

// app is the wired client stack shared by every command.
type app struct {
	cfg     config.Config
	store   *credstore.Store
	client  *api.Client
	session *session.Manager
}

// newApp resolves configuration, installs the logger, and wires the
// credential store, API client, and session manager together. The store is
// handed to the client as its token source so every request reads the
// current credential at send time.
func newApp() (*app, error) {
	var (
		cfg config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	logCfg := log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	}
	if verbose {
		logCfg.Level = log.LevelDebug
		logCfg.AddSource = true
	}
	log.SetDefaultLogger(log.New(logCfg))

	store := credstore.New(cfg.CredentialsPath)
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout.Std(), store)

	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		session: session.NewManager(store, client),
	}, nil
}

// newResolvedApp wires the stack and settles the session, so callers can
// consult the session status immediately.
func newResolvedApp(ctx context.Context) (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	if err := a.session.Resolve(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// requireBusiness fails unless the resolved session belongs to a signed-in
// business account.
func (a *app) requireBusiness() error {
	return gate.Check(a.session.Status(), a.session.User(), api.AccountTypeBusiness)
}
