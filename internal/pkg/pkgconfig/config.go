package pkgconfig

import "github.com/shopspring/decimal"

// Config is the read-only view of configuration that application code
// depends on.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetDecimal(key string) (decimal.Decimal, error)
	Unmarshal(key string, out any) error
	Close() error
}
