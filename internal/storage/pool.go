package storage

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// ErrStoreUnavailable is returned once a full rotation over the configured
// instances finds no reachable database.
var ErrStoreUnavailable = errors.New("all database instances are unreachable")

// OpenFunc opens a handle for one DSN. Overridable in tests.
type OpenFunc func(dsn string) (*sql.DB, error)

func defaultOpen(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// Pool rotates over an ordered list of database instances. The current
// index and the lazily opened handles live behind one mutex; on connection
// failure the pool advances to the next instance and stays there until that
// one fails too.
type Pool struct {
	mu      sync.Mutex
	urls    []string
	handles []*sql.DB
	idx     int
	open    OpenFunc
}

func NewPool(urls []string) *Pool {
	return &Pool{
		urls:    urls,
		handles: make([]*sql.DB, len(urls)),
		open:    defaultOpen,
	}
}

// NewPoolWithOpener is used by tests to substitute the driver.
func NewPoolWithOpener(urls []string, open OpenFunc) *Pool {
	p := NewPool(urls)
	p.open = open
	return p
}

// DB returns a ping-checked handle for the current instance, rotating on
// failure. A full unsuccessful cycle yields ErrStoreUnavailable.
func (p *Pool) DB(ctx context.Context) (*sql.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.urls) == 0 {
		return nil, ErrStoreUnavailable
	}

	for tries := 0; tries < len(p.urls); tries++ {
		db := p.handles[p.idx]
		if db == nil {
			opened, err := p.open(p.urls[p.idx])
			if err == nil {
				p.handles[p.idx] = opened
				db = opened
			}
		}

		if db != nil {
			if err := db.PingContext(ctx); err == nil {
				return db, nil
			}
		}

		log.Printf("storage: database instance %d unreachable, switching", p.idx+1)
		p.idx = (p.idx + 1) % len(p.urls)
	}

	return nil, ErrStoreUnavailable
}

func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, db := range p.handles {
		if db != nil {
			_ = db.Close()
			p.handles[i] = nil
		}
	}
}
