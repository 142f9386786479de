// Package provisioning provides shared types, interfaces, and orchestration
// for cluster provisioning.
//
// # Subpackages
//
//   - infrastructure/ — VPC, subnets, routing, security group, IAM profile
//   - compute/ — key pair, nodes, replication volumes, DNS records
//   - destroy/ — resource cleanup and teardown
//
// # Core Types
//
// Context carries configuration, state, the cloud client, and the observer.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates results from each phase (VPC, subnet IDs, node IPs).
package provisioning
