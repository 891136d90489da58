package commands

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/barberbook/internal/artifact"
	"github.com/cleared-dev/barberbook/internal/catalog"
	"github.com/cleared-dev/barberbook/internal/config"
	"github.com/cleared-dev/barberbook/internal/logger"
	"github.com/cleared-dev/barberbook/internal/schema"
	"github.com/cleared-dev/barberbook/internal/session"
	"github.com/cleared-dev/barberbook/internal/store"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

// env is everything a command needs, resolved from the config file.
type env struct {
	cfg        *config.Config
	root       string // directory holding the config file
	storageDir string
	catalog    *catalog.Catalog
	store      *store.Store
	selector   *artifact.Selector
	log        zerolog.Logger
	closer     io.Closer
}

func loadEnv(flags *globalFlags, stderr io.Writer) (*env, error) {
	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(flags.configPath)
	storageDir := resolve(root, cfg.Storage.Dir)

	cat, err := catalog.Load(storageDir)
	if err != nil {
		return nil, err
	}

	var console io.Writer
	if flags.verbose {
		console = stderr
	}
	log, closer, err := logger.Open(resolve(root, cfg.Log.File), cfg.Log.Level, console)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:        cfg,
		root:       root,
		storageDir: storageDir,
		catalog:    cat,
		store:      store.New(store.DefaultRegistry(cfg.Ledger.Sheet), schema.NewNormalizer(cfg.Ledger.PlaceholderClient, nil)),
		selector: &artifact.Selector{
			Dir:    storageDir,
			Prefix: cfg.Storage.Prefix,
			Ext:    cfg.Ext(),
			Recent: cfg.Storage.Recent,
		},
		log:    log,
		closer: closer,
	}, nil
}

func (e *env) Close() error {
	return e.closer.Close()
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// selection holds the artifact-choice flags of ledger commands.
type selection struct {
	file   string
	latest bool
	fresh  bool
}

// path resolves the artifact to use. Without flags, fallback decides.
func (s selection) path(e *env, fallback artifact.Chooser) (string, error) {
	switch {
	case s.file != "":
		return s.file, nil
	case s.fresh:
		return e.selector.Select(artifact.Fresh())
	case s.latest:
		return e.selector.Select(artifact.Latest())
	default:
		return e.selector.Select(fallback)
	}
}

func (e *env) openSession(path string) (*session.Session, error) {
	return session.Open(session.Options{
		Path:         path,
		Store:        e.store,
		Pricer:       e.catalog,
		Log:          e.log,
		ActivityRoot: e.storageDir,
	})
}
