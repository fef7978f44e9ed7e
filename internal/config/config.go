// Package config holds the planner's process-wide configuration: the
// two join-algorithm toggles that SET enable_nestloop and SET
// enable_sortmerge statements flip at runtime.
package config

import (
	"encoding/json"
	"os"

	"github.com/dshills/rmplan/internal/errors"
)

// PlannerConfig controls which join algorithms the planner is allowed
// to choose between when building a physical plan for a multi-table
// query.
type PlannerConfig struct {
	EnableNestedLoopJoin bool `json:"enable_nestedloop_join"`
	EnableSortMergeJoin  bool `json:"enable_sortmerge_join"`
}

// DefaultPlannerConfig returns the configuration RMDB starts with: both
// join algorithms enabled, nested-loop preferred when both are
// available.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		EnableNestedLoopJoin: true,
		EnableSortMergeJoin:  true,
	}
}

// LoadFromFile loads a PlannerConfig from a JSON file, starting from
// DefaultPlannerConfig and overlaying whatever fields the file sets.
func LoadFromFile(path string) (*PlannerConfig, error) {
	cfg := DefaultPlannerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Apply flips the named join-algorithm knob. It is the execution side
// of a SET statement — the statement dispatcher never calls this
// itself, since SET is handled by the connection layer before a
// statement ever reaches Plan().
func (c *PlannerConfig) Apply(name string, value bool) error {
	switch name {
	case "enable_nestloop":
		c.EnableNestedLoopJoin = value
	case "enable_sortmerge":
		c.EnableSortMergeJoin = value
	default:
		return errors.FeatureNotSupportedError(name)
	}
	return nil
}

// AnyJoinEnabled reports whether at least one join algorithm is
// available. The planner treats a query with neither enabled as an
// error rather than silently falling back to a Cartesian product.
func (c *PlannerConfig) AnyJoinEnabled() bool {
	return c.EnableNestedLoopJoin || c.EnableSortMergeJoin
}
