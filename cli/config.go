package cli

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tuannh982/strhash/hashtable"

	log "github.com/sirupsen/logrus"
)

const (
	HashMidSquare = "midsquare"
	HashXX        = "xxhash"
)

type Config struct {
	Capacity   int    `yaml:"capacity"`
	Hash       string `yaml:"hash"`
	LogLevel   string `yaml:"log_level"`
	MaxEntries int    `yaml:"max_entries"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: hashtable.DefaultCapacity,
		Hash:     HashMidSquare,
		LogLevel: log.InfoLevel.String(),
	}
}

// LoadConfig reads a YAML file over the defaults. Fields missing from the file
// keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c *Config) bindFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Capacity, "capacity", c.Capacity, "number of buckets")
	flags.StringVar(&c.Hash, "hash", c.Hash, "bucket hash function: midsquare or xxhash")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	flags.IntVar(&c.MaxEntries, "max-entries", c.MaxEntries, "refuse inserts past this many entries, 0 for no limit")
}

// override copies the values of the flags the user actually set.
func (c *Config) override(flags *pflag.FlagSet, from *Config) {
	if flags.Changed("capacity") {
		c.Capacity = from.Capacity
	}
	if flags.Changed("hash") {
		c.Hash = from.Hash
	}
	if flags.Changed("log-level") {
		c.LogLevel = from.LogLevel
	}
	if flags.Changed("max-entries") {
		c.MaxEntries = from.MaxEntries
	}
}

func (c *Config) HashFunc() (hashtable.HashFunc, error) {
	switch strings.ToLower(c.Hash) {
	case HashMidSquare, "":
		return hashtable.Hash, nil
	case HashXX:
		return hashtable.XXHash, nil
	default:
		return nil, errors.Errorf("unknown hash function %q", c.Hash)
	}
}

func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return level, errors.Wrap(err, "log level")
	}
	return level, nil
}

// NewTable builds a string table from the configuration.
func (c *Config) NewTable(logger *log.Entry) (*hashtable.Table[string], *hashtable.BudgetAllocator, error) {
	hashFunc, err := c.HashFunc()
	if err != nil {
		return nil, nil, err
	}
	alloc := &hashtable.BudgetAllocator{MaxEntries: c.MaxEntries}
	table, err := hashtable.New[string](c.Capacity,
		hashtable.WithHashFunc(hashFunc),
		hashtable.WithAllocator(alloc),
		hashtable.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create table")
	}
	return table, alloc, nil
}
