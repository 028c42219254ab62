package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// SyncTarget is one directory group to synchronize
type SyncTarget struct {
	ID   types.GroupID `yaml:"id"`
	Name string        `yaml:"name,omitempty"`
}

// Validate validates the sync target
func (t *SyncTarget) Validate() error {
	if t.ID == "" {
		return goerr.New("sync target ID is required")
	}
	return nil
}

// SyncTargetsConfig represents the sync targets configuration
type SyncTargetsConfig struct {
	Targets []SyncTarget `yaml:"targets"`
}

// Validate validates the sync targets configuration
func (c *SyncTargetsConfig) Validate() error {
	if len(c.Targets) == 0 {
		return goerr.New("at least one sync target is required")
	}

	idMap := make(map[types.GroupID]bool)
	for i, target := range c.Targets {
		if err := target.Validate(); err != nil {
			return goerr.Wrap(err, "invalid sync target at index",
				goerr.V("index", i))
		}

		if idMap[target.ID] {
			return goerr.New("duplicate sync target ID",
				goerr.V("id", target.ID))
		}
		idMap[target.ID] = true
	}

	return nil
}
