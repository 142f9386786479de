// Package compute provisions the cluster nodes and their storage.
//
// It imports the SSH key pair, launches one node per availability zone into
// the zone's private subnet, creates and attaches the per-node replication
// volume, and manages the optional Route53 records. Nodes across zones are
// provisioned in parallel.
package compute
