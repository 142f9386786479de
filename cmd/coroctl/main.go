// Package main is the entry point for the coroctl CLI.
//
// coroctl is a command-line tool for provisioning highly available
// Corosync/Pacemaker/DRBD clusters on AWS. It partitions a base CIDR
// block into per-availability-zone private and public subnets, launches
// one cluster node per zone with a replicated data volume, and keeps a
// durable state snapshot in S3.
//
// Commands: init, plan, apply, destroy.
//
// For detailed usage information, run:
//
//	coroctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/coroctl/cmd/coroctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
