package pkgconfig

import (
	"errors"
	"fmt"
	"path"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension. Keys
// present in defaults are registered first; when defaults is non-empty a
// missing file is tolerated and the defaults alone are served.
func NewViper(pathFile string, defaults map[string]any) (*Viper, error) {
	v := viper.New()

	filename := path.Base(pathFile)
	filePath := path.Dir(pathFile)

	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(filePath)
	v.SetConfigName(configName)

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || len(defaults) == 0 {
			return nil, err
		}
	}

	return &Viper{v: v}, nil
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetDecimal returns the value for key parsed as an exact decimal.
//
// Both quoted ("2607.04") and bare YAML numbers are accepted.
func (vc *Viper) GetDecimal(key string) (decimal.Decimal, error) {
	raw := vc.v.GetString(key)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("config %q is not set", key)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config %q: %w", key, err)
	}

	return d, nil
}

// Unmarshal decodes the subtree at key into out.
func (vc *Viper) Unmarshal(key string, out any) error {
	return vc.v.UnmarshalKey(key, out)
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// No resources to close for ViperConfig; this is just for interface completeness.
	return nil
}
