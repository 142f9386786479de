package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/provisioning/destroy"
)

// Factory function variables for destroy - can be replaced in tests.
var (
	// newDestroyProvisioner creates a new destroy provisioner.
	newDestroyProvisioner = func() Provisioner {
		return destroy.NewProvisioner()
	}

	// removeFile removes a file.
	removeFile = os.Remove
)

// Destroy handles the destroy command.
//
// It loads the cluster configuration and deletes all associated AWS
// resources in dependency order, then removes the state snapshot.
func Destroy(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Destroying cluster: %s", cfg.ClusterName)

	cloud, err := newCloudClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	pCtx := provisioning.NewContext(ctx, cfg, cloud)
	pCtx.Observer = newObserver()
	if err := newDestroyProvisioner().Provision(pCtx); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	cleanupSnapshot(ctx, cfg)

	log.Printf("Cluster %s destroyed successfully", cfg.ClusterName)
	return nil
}

// cleanupSnapshot removes the local and remote state snapshots. Failures are
// logged but do not fail the destroy: the infrastructure is already gone.
func cleanupSnapshot(ctx context.Context, cfg *config.Config) {
	if err := removeFile(localStateFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove %s: %v", localStateFile, err)
	}

	if cfg.State.Bucket == "" {
		return
	}
	store, err := newStateStore(ctx, cfg)
	if err != nil {
		log.Printf("Warning: failed to reach state bucket: %v", err)
		return
	}
	if err := store.Delete(ctx); err != nil {
		log.Printf("Warning: failed to delete remote snapshot: %v", err)
	}
}
