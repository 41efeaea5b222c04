// Package redislocker implementa la reserva advisory de equipos sobre Redis.
// La reserva solo da feedback temprano entre vendedores: el guard CAS del
// ledger sigue siendo la única autoridad sobre la doble venta.
package redislocker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Distribucion-api/internal/application/sale"
	"github.com/jhoicas/Distribucion-api/internal/domain"
)

var _ sale.Reserver = (*Reserver)(nil)

// Reserver obtiene locks con TTL por IMEI y publica el holder en una clave
// acompañante para poder consultarlo desde otros procesos.
type Reserver struct {
	rdb    *redis.Client
	locker *redislock.Client
	ttl    time.Duration

	mu    sync.Mutex
	locks map[string]*redislock.Lock // locks obtenidos por este proceso
}

// NewReserver construye el reserver con el cliente Redis y el TTL de reserva.
func NewReserver(rdb *redis.Client, ttl time.Duration) *Reserver {
	return &Reserver{
		rdb:    rdb,
		locker: redislock.New(rdb),
		ttl:    ttl,
		locks:  make(map[string]*redislock.Lock),
	}
}

func lockKey(imei string) string   { return fmt.Sprintf("reservation:%s", imei) }
func holderKey(imei string) string { return fmt.Sprintf("reservation:holder:%s", imei) }

// Reserve toma la reserva del equipo para el actor. Si otro actor la tiene,
// devuelve ErrUnitReserved; renovar la reserva propia reinicia el TTL.
func (r *Reserver) Reserve(ctx context.Context, imei, actorID string) (time.Time, error) {
	r.mu.Lock()
	held := r.locks[imei]
	r.mu.Unlock()

	if held != nil {
		holder, err := r.rdb.Get(ctx, holderKey(imei)).Result()
		if err == nil && holder == actorID {
			if err := held.Refresh(ctx, r.ttl, nil); err == nil {
				expires := time.Now().Add(r.ttl)
				r.rdb.Set(ctx, holderKey(imei), actorID, r.ttl)
				return expires, nil
			}
		}
	}

	lock, err := r.locker.Obtain(ctx, lockKey(imei), r.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return time.Time{}, domain.ErrUnitReserved
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("obtain reservation: %w", err)
	}
	expires := time.Now().Add(r.ttl)
	if err := r.rdb.Set(ctx, holderKey(imei), actorID, r.ttl).Err(); err != nil {
		_ = lock.Release(ctx)
		return time.Time{}, fmt.Errorf("publish reservation holder: %w", err)
	}

	r.mu.Lock()
	r.locks[imei] = lock
	r.mu.Unlock()
	return expires, nil
}

// HeldBy devuelve el actor que tiene la reserva vigente, o vacío si nadie.
func (r *Reserver) HeldBy(ctx context.Context, imei string) (string, error) {
	holder, err := r.rdb.Get(ctx, holderKey(imei)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get reservation holder: %w", err)
	}
	return holder, nil
}

// Release libera la reserva si el actor la tiene. Liberar una reserva ajena
// o vencida es un no-op.
func (r *Reserver) Release(ctx context.Context, imei, actorID string) error {
	holder, err := r.rdb.Get(ctx, holderKey(imei)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("get reservation holder: %w", err)
	}
	if holder != actorID {
		return nil
	}

	r.mu.Lock()
	lock := r.locks[imei]
	delete(r.locks, imei)
	r.mu.Unlock()

	if lock != nil {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("release reservation: %w", err)
		}
	}
	return r.rdb.Del(ctx, holderKey(imei)).Err()
}
