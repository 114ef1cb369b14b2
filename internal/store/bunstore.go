package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Snapshot is one slot row in the sqlite-backed store.
type Snapshot struct {
	bun.BaseModel `bun:"table:snapshots"`

	Slot    string    `bun:"slot,pk"`
	Data    []byte    `bun:"data"`
	SavedAt time.Time `bun:"saved_at"`
}

// BunStore keeps every slot as a row in one sqlite file. Unlike FileStore,
// SaveAll commits all slots in a single transaction, so the finalize-time
// customers+dashboard pair can never be half-written.
type BunStore struct {
	Bun *bun.DB
}

// OpenSQLite opens (creating if needed) the sqlite database at path.
func OpenSQLite(path string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func NewBunStore(bunDB *bun.DB) (*BunStore, error) {
	_, err := bunDB.NewCreateTable().
		Model((*Snapshot)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &BunStore{Bun: bunDB}, nil
}

func (b *BunStore) Load(slot string) ([]byte, error) {
	var snap Snapshot
	err := b.Bun.NewSelect().
		Model(&snap).
		Where("slot = ?", slot).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return snap.Data, nil
}

func (b *BunStore) Save(slot string, data []byte) error {
	if err := upsert(context.Background(), b.Bun, slot, data); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

func (b *BunStore) SaveAll(snapshots map[string][]byte) error {
	ctx := context.Background()
	err := b.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for slot, data := range snapshots {
			if err := upsert(ctx, tx, slot, data); err != nil {
				return fmt.Errorf("slot %s: %w", slot, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save snapshots: %w", err)
	}
	return nil
}

func upsert(ctx context.Context, db bun.IDB, slot string, data []byte) error {
	snap := Snapshot{Slot: slot, Data: data, SavedAt: time.Now().UTC()}
	_, err := db.NewInsert().
		Model(&snap).
		On("CONFLICT (slot) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("saved_at = EXCLUDED.saved_at").
		Exec(ctx)
	return err
}

func (b *BunStore) Close() error {
	return b.Bun.Close()
}
