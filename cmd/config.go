package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// DBConfig is one database entry from the config file. Role is "source" for
// the database mapping rows are checked against and "target" for the Oracle
// instance generated scripts are applied to.
type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Role   string `mapstructure:"role"`
}

// GetDBConfig returns the database configuration for the given role.
func GetDBConfig(role string) (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var match *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Role == role {
			match = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no %q database found in config (set role: %s)", role, role)
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple %q databases found (only one per role)", role)
	}

	return match, nil
}
