package cmd

import (
	"context"

	"github.com/vippsas/docwiki/store"
	"github.com/vippsas/docwiki/store/pgstore"
)

// openStore picks pgstore or store.MemStore based on whether cfg.Store.Dsn
// is set, the same role the teacher's dbops.go gives a type switch on the
// live driver value -- here there's no driver to inspect yet, so the DSN's
// presence stands in for it.
func openStore(ctx context.Context, cfg Config) (store.Store, func(), error) {
	if cfg.Store.Dsn == "" {
		return store.NewMemStore(), func() {}, nil
	}

	pg, err := pgstore.Open(ctx, cfg.Store.Dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, nil, err
	}
	return pg, pg.Close, nil
}
