// Package config defines the cluster configuration, its YAML loading and its
// validation.
//
// A configuration describes one HA cluster: the AWS region, the base network
// block and how it is split into per-zone subnets, the cluster nodes with
// their replication volumes, and optional DNS and remote-state settings.
package config
