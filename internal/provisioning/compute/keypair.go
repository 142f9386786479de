package compute

import (
	"fmt"
	"os"

	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/keygen"
	"github.com/imamik/coroctl/internal/util/naming"
	"github.com/imamik/coroctl/internal/util/tags"
)

// ProvisionKeyPair imports the configured public key as the cluster's EC2
// key pair. When no key is configured, a fresh RSA key pair is generated and
// the private key is written to ./<cluster>_rsa.
func (p *Provisioner) ProvisionKeyPair(ctx *provisioning.Context) error {
	cluster := ctx.Config.ClusterName
	name := naming.KeyPair(cluster)

	publicKey, err := p.loadOrGeneratePublicKey(ctx)
	if err != nil {
		return err
	}

	keyTags := tags.NewBuilder(cluster).WithName(name).WithExtra(ctx.Config.Tags).Build()
	if err := ctx.Cloud.EnsureKeyPair(ctx, name, publicKey, keyTags); err != nil {
		return err
	}
	ctx.State.KeyName = name
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "key pair", name, name)
	return nil
}

func (p *Provisioner) loadOrGeneratePublicKey(ctx *provisioning.Context) ([]byte, error) {
	if path := ctx.Config.Nodes.SSHPublicKeyPath; path != "" {
		publicKey, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read SSH public key %s: %w", path, err)
		}
		return publicKey, nil
	}

	privatePath := ctx.Config.ClusterName + "_rsa"
	if _, err := os.Stat(privatePath); err == nil {
		return nil, fmt.Errorf("refusing to overwrite existing key file %s; set nodes.ssh_public_key_path instead", privatePath)
	}

	pair, err := keygen.GenerateRSAKeyPair(keygen.DefaultBits)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(privatePath, pair.PrivateKey, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write private key %s: %w", privatePath, err)
	}
	if err := os.WriteFile(privatePath+".pub", pair.PublicKey, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write public key: %w", err)
	}
	ctx.Observer.Printf("[%s] generated SSH key pair, private key written to %s", p.Name(), privatePath)
	return pair.PublicKey, nil
}
