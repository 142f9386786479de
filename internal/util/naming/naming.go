// Package naming provides consistent naming for the AWS resources of a
// cluster.
//
// Resource names follow the pattern {cluster}-{type} for shared
// infrastructure (VPC, security groups, instance profile) and
// {cluster}-node-{n} for the per-zone cluster nodes, so every resource of a
// cluster is identifiable by its name alone.
package naming

import "fmt"

func VPC(cluster string) string {
	return fmt.Sprintf("%s-vpc", cluster)
}

func Subnet(cluster, zoneID, tier string) string {
	return fmt.Sprintf("%s-%s-%s", cluster, tier, zoneID)
}

func SecurityGroup(cluster string) string {
	return fmt.Sprintf("%s-cluster-sg", cluster)
}

func InstanceProfile(cluster string) string {
	return fmt.Sprintf("%s-node-profile", cluster)
}

func KeyPair(cluster string) string {
	return fmt.Sprintf("%s-keypair", cluster)
}

func Node(cluster string, index int) string {
	return fmt.Sprintf("%s-node-%d", cluster, index)
}

func Volume(cluster string, index int) string {
	return fmt.Sprintf("%s-drbd-%d", cluster, index)
}

// NodeFQDN is the Route53 record name for a node.
func NodeFQDN(cluster string, index int, domain string) string {
	return fmt.Sprintf("%s-node-%d.%s", cluster, index, domain)
}
