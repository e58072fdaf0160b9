package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"feedsync/config"
	"feedsync/feed"
	"feedsync/log"
	"feedsync/notify"
	"feedsync/remote"
	"feedsync/token"
)

// engine bundles the wired-up subsystems for the duration of one
// command invocation.
type engine struct {
	cfg      config.Config
	log      log.Log
	store    *feed.Store
	notifier *notify.Dispatcher
	tokens   token.Storage
	cancel   context.CancelFunc
}

func newEngine() (*engine, error) {
	cfg, err := config.Read(cfgPath)
	if err != nil {
		return nil, err
	}

	logger := log.WithLogrus(cfg.Log)

	if dir := filepath.Dir(cfg.Token.StoragePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating storage directory %s", dir)
		}
	}

	storage, err := token.NewBoltStorage(cfg.Token.StoragePath)
	if err != nil {
		return nil, errors.WithMessage(err, "opening credential storage")
	}

	ctx, cancel := context.WithCancel(context.Background())

	notifier := notify.NewDispatcher(ctx, cfg.Notify, logger)
	client := remote.New(cfg, storage, logger)
	store := feed.NewStore(client, notifier, cfg.Feed, logger)

	return &engine{
		cfg:      cfg,
		log:      logger,
		store:    store,
		notifier: notifier,
		tokens:   storage,
		cancel:   cancel,
	}, nil
}

func (e *engine) close() {
	e.printNotifications()
	e.cancel()
	e.tokens.Close()
}

// printNotifications flushes the accumulated transient messages to the
// terminal, the CLI's stand-in for toast rendering.
func (e *engine) printNotifications() {
	for _, n := range e.notifier.Notifications() {
		if n.Message != "" {
			fmt.Printf("[%s] %s: %s\n", n.Type, n.Title, n.Message)
		} else {
			fmt.Printf("[%s] %s\n", n.Type, n.Title)
		}
	}

	e.notifier.Clear()
}
