package plsql

// Lookup tables populated by related inserts always carry this key/value
// column pair.
const (
	LookupKeyColumn   = "migrt_key"
	LookupValueColumn = "migrt_value"
)

// Config carries the synthesizer knobs. Related MERGE statements run once
// per fetched batch, after the FORALL insert, so one batch bounds the number
// of MERGE calls.
type Config struct {
	// BatchSize is the BULK COLLECT ... LIMIT used by the fetch loop.
	BatchSize int
	// PackagePrefix is prepended to the lowercased target table name to form
	// the package name.
	PackagePrefix string
}

// DefaultConfig matches the generated scripts' documented defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:     1000,
		PackagePrefix: "migrt_",
	}
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 1000
	}
	if c.PackagePrefix == "" {
		c.PackagePrefix = "migrt_"
	}
	return c
}
