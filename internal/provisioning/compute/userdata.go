package compute

import (
	"fmt"
	"strings"
)

// nodeUserData renders the cloud-init user data for a node. It sets the
// hostname so Corosync node names are stable before any DNS record exists.
func nodeUserData(name, domain string) string {
	var b strings.Builder
	b.WriteString("#cloud-config\n")
	fmt.Fprintf(&b, "hostname: %s\n", name)
	if domain != "" {
		fmt.Fprintf(&b, "fqdn: %s.%s\n", name, domain)
	}
	b.WriteString("preserve_hostname: false\n")
	b.WriteString("manage_etc_hosts: true\n")
	return b.String()
}
