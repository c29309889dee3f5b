package blob

import (
	"context"
	"encoding/json"

	"github.com/jimlawless/whereami"
	bolt "go.etcd.io/bbolt"

	"github.com/inventory-pro/backend/internal/cfg"
	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/internal/repository/blob/converter"
	"github.com/inventory-pro/backend/pkg/e"
)

// Storage keys, one JSON blob per collection.
const (
	keyProducts   = "inv_products"
	keyCategories = "inv_categories"
	keyOrders     = "inv_purchaseOrders"
)

// Store persists the application snapshot in a local bbolt file. It is the
// flat key-value blob behind the Store collaborator: load on boot, full
// rewrite after each mutation.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open opens (creating if needed) the database file and its bucket.
func Open(cfg *cfg.StoreCfg) (*Store, error) {
	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	bucket := []byte(cfg.Bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Store{db: db, bucket: bucket}, nil
}

// Load reads the persisted snapshot. found is false when none of the keys
// exist yet; a missing individual key defaults to an empty collection.
func (s *Store) Load(_ context.Context) (domain.Snapshot, bool, error) {
	var (
		snap  domain.Snapshot
		found bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)

		if raw := b.Get([]byte(keyProducts)); raw != nil {
			found = true
			var models []converter.ProductModel
			if err := json.Unmarshal(raw, &models); err != nil {
				return e.Wrap(keyProducts, err)
			}
			snap.Products = converter.ProductsToEntities(models)
		}

		if raw := b.Get([]byte(keyCategories)); raw != nil {
			found = true
			if err := json.Unmarshal(raw, &snap.Categories); err != nil {
				return e.Wrap(keyCategories, err)
			}
		}

		if raw := b.Get([]byte(keyOrders)); raw != nil {
			found = true
			var models []converter.OrderModel
			if err := json.Unmarshal(raw, &models); err != nil {
				return e.Wrap(keyOrders, err)
			}
			snap.PurchaseOrders = converter.OrdersToEntities(models)
		}

		return nil
	})
	if err != nil {
		return domain.Snapshot{}, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return snap, found, nil
}

// Save rewrites all three collection blobs in one transaction.
func (s *Store) Save(_ context.Context, snap domain.Snapshot) error {
	products, err := json.Marshal(converter.ProductsToModels(snap.Products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	categories, err := json.Marshal(snap.Categories)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	orders, err := json.Marshal(converter.OrdersToModels(snap.PurchaseOrders))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)

		if err := b.Put([]byte(keyProducts), products); err != nil {
			return err
		}
		if err := b.Put([]byte(keyCategories), categories); err != nil {
			return err
		}
		return b.Put([]byte(keyOrders), orders)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
