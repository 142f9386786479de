// Package infrastructure provisions the cluster's AWS networking resources.
//
// It creates and manages the VPC with per-zone private and public subnets,
// public routing through an internet gateway, the cluster security group
// with its intra-cluster rules, and the node instance profile. All resources
// are created idempotently and tagged for cluster association.
package infrastructure
