package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/coroctl/internal/provisioning"
)

// Plan computes the subnet partition for the configured cluster and prints
// it without creating anything.
//
// Zone binding uses the same rules as apply: pinned zone IDs when configured,
// discovery ordered by zone ID otherwise. The printed table is therefore
// exactly what apply would provision.
func Plan(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	cloud, err := newCloudClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	pCtx := provisioning.NewContext(ctx, cfg, cloud)
	if err := provisioning.ResolveAllocations(pCtx); err != nil {
		return err
	}

	fmt.Print(renderPlan(cfg, pCtx.State.Allocations))
	return nil
}
