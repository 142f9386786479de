package infrastructure

import (
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/naming"
	"github.com/imamik/coroctl/internal/util/tags"
)

// ProvisionInstanceProfile reconciles the IAM role and instance profile the
// nodes run under.
func (p *Provisioner) ProvisionInstanceProfile(ctx *provisioning.Context) error {
	cluster := ctx.Config.ClusterName
	name := naming.InstanceProfile(cluster)

	profileTags := tags.NewBuilder(cluster).WithName(name).WithExtra(ctx.Config.Tags).Build()
	profileName, err := ctx.Cloud.EnsureInstanceProfile(ctx, name, profileTags)
	if err != nil {
		return err
	}
	ctx.State.ProfileName = profileName
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "instance profile", name, profileName)
	return nil
}
