package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/imamik/coroctl/internal/netpart"
)

// Defaults applied by LoadFile when the file leaves a field unset.
const (
	DefaultBaseCIDR     = "10.0.0.0/16"
	DefaultSubnetRatio  = "5:2"
	DefaultZoneCount    = 3
	DefaultInstanceType = "t3.medium"
	DefaultVolumeSizeGB = 20
	DefaultVolumeType   = "gp3"
)

// LoadFile reads and parses the configuration from a YAML file, applies
// defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in every unset field that has a default.
func (c *Config) ApplyDefaults() {
	if c.Network.BaseCIDR == "" {
		c.Network.BaseCIDR = DefaultBaseCIDR
	}
	if c.Network.SubnetRatio == "" {
		c.Network.SubnetRatio = DefaultSubnetRatio
	}
	if c.Network.ZoneCount == 0 {
		c.Network.ZoneCount = DefaultZoneCount
	}
	if c.Network.MinSubnetPrefix == 0 {
		c.Network.MinSubnetPrefix = netpart.DefaultFloor
	}
	if c.Nodes.InstanceType == "" {
		c.Nodes.InstanceType = DefaultInstanceType
	}
	if c.Nodes.VolumeSizeGB == 0 {
		c.Nodes.VolumeSizeGB = DefaultVolumeSizeGB
	}
	if c.Nodes.VolumeType == "" {
		c.Nodes.VolumeType = DefaultVolumeType
	}
}
