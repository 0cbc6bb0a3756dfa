package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/pass-vault/internal/clipboard"
	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/internal/service"
	"github.com/MKhiriev/pass-vault/internal/store"
	"github.com/MKhiriev/pass-vault/internal/utils"
)

// runtime holds what one invocation of the command line shares between the
// root hook and the command that runs.
type runtime struct {
	opts Options

	cfg *config.StructuredConfig
	log *logger.Logger

	db       *store.DB
	services *service.Services
}

func newRuntime(opts Options) *runtime {
	return &runtime{opts: opts, log: logger.Nop()}
}

// setup loads the configuration and puts the logger and the vault owner into
// the command context.
func (r *runtime) setup(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidAppConfigs, err)
	}

	r.cfg = cfg
	r.log = logger.New(cmd.ErrOrStderr(), "vault", level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = utils.WithOwnerID(ctx, cfg.App.OwnerID)
	cmd.SetContext(r.log.WithContext(ctx))

	return nil
}

func (r *runtime) config() config.StructuredConfig {
	if r.cfg == nil {
		return *config.Defaults()
	}
	return *r.cfg
}

func (r *runtime) keyChain() crypto.KeyChainService {
	if r.opts.KeyChain != nil {
		return r.opts.KeyChain
	}
	return crypto.NewKeyChainService()
}

func (r *runtime) copier() clipboard.Copier {
	if r.opts.Copier != nil {
		return r.opts.Copier
	}
	return clipboard.NewCopier(clipboard.System())
}

func (r *runtime) prompter(cmd *cobra.Command) Prompter {
	if r.opts.Prompter != nil {
		return r.opts.Prompter
	}
	return NewTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// basicServices returns the services that need no database.
func (r *runtime) basicServices() *service.Services {
	if r.opts.Services != nil {
		return r.opts.Services
	}
	if r.services == nil {
		cfg := r.config()
		keys := crypto.NewConfigKeyProvider(cfg.Crypto, r.keyChain())
		r.services = service.NewServices(nil, keys, cfg, r.log)
	}
	return r.services
}

// vaultService connects to the vault database, migrates it and returns the
// validated VaultService.
func (r *runtime) vaultService(ctx context.Context) (service.VaultService, error) {
	if r.opts.Services != nil {
		return r.opts.Services.VaultService, nil
	}
	if r.services != nil && r.services.VaultService != nil {
		return r.services.VaultService, nil
	}

	cfg := r.config()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, r.log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	r.db = db

	keys := crypto.NewConfigKeyProvider(cfg.Crypto, r.keyChain())
	r.services = service.NewServices(store.NewStorages(db, r.log), keys, cfg, r.log)

	return r.services.VaultService, nil
}

func (r *runtime) close() {
	if r.db == nil {
		return
	}
	if err := r.db.Close(); err != nil {
		r.log.Err(err).Str("func", "runtime.close").Msg("failed to close vault database")
	}
	r.db = nil
}
