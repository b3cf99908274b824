package art

import (
	"fmt"

	"github.com/npillmayer/art/arena"
)

// Config configures a tree.
type Config struct {
	// PageSize is the number of nodes per arena page. It must be a power of two
	// not greater than 65536. Zero selects arena.DefaultPageSize.
	PageSize int
	// CheckInvariants makes every mutating operation verify the complete tree
	// structure afterwards. This is very slow and meant for debugging.
	CheckInvariants bool
}

func (cfg Config) normalized() Config {
	if cfg.PageSize == 0 {
		cfg.PageSize = arena.DefaultPageSize
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.PageSize < 0 || cfg.PageSize&(cfg.PageSize-1) != 0 || cfg.PageSize > 1<<16 {
		return fmt.Errorf("%w: page size %d is not a power of two in [1, 65536]",
			ErrInvalidConfig, cfg.PageSize)
	}
	return nil
}
