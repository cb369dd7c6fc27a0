// Package ch provides a clickhouse client
package ch

import (
	"context"
	"errors"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config configures clickhouse client
// Role and Tag feed the client info reported to the server
type Config struct {
	URL  string
	Role string
	Tag  string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH is a placeholder seam for clickhouse connectivity
// info is captured at Open so the real driver options can reuse it
type CH struct {
	info clickhouse.ClientInfo
}

// Open returns a clickhouse client stub
func Open(_ context.Context, cfg Config) (*CH, error) {
	return &CH{info: BuildClientInfo(cfg.Role, cfg.Tag)}, nil
}

// ClientInfo reports the client identity this connection announces
func (c *CH) ClientInfo() clickhouse.ClientInfo { return c.info }

// Insert inserts data into a table using the driver specific format
func (c *CH) Insert(_ context.Context, _ string, _ any) error {
	return errors.New("ch insert not implemented")
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(_ context.Context, _ string, args ...any) (Rows, error) {
	// stub implementation returns an empty rows set
	return &emptyRows{}, nil
}

// Close closes resources
func (c *CH) Close() error { return nil }

// emptyRows is a stub that returns no results
type emptyRows struct{}

func (*emptyRows) Next() bool             { return false }
func (*emptyRows) Scan(dest ...any) error { return nil }
func (*emptyRows) Err() error             { return nil }
func (*emptyRows) Close() error           { return nil }
func (*emptyRows) Columns() []string      { return nil }
