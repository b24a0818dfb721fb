// Package redisstore implementa el SnapshotStore sobre una clave de Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

// DefaultKey clave usada cuando la configuración no define otra.
const DefaultKey = "gestion-stock:snapshot"

var _ repository.SnapshotStore = (*Store)(nil)

// Store guarda el documento JSON completo en una sola clave (sin TTL).
type Store struct {
	client *redis.Client
	key    string
}

// Options conexión a Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return client, nil
}

// NewStore construye el almacén. key vacío = DefaultKey.
func NewStore(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Load lee la clave. Ausente = snapshot vacío; JSON inválido = ErrCorruptSnapshot.
func (s *Store) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: redis key %s: %v", domain.ErrCorruptSnapshot, s.key, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save reescribe la clave con el documento completo.
func (s *Store) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
