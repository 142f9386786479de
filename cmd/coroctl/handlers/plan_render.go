package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/netpart"
)

var (
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
	planColorGreen = lipgloss.Color("#22c55e")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planValueStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)
)

// renderPlan produces the lipgloss-styled allocation table.
func renderPlan(cfg *config.Config, allocs []netpart.ZoneAllocation) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(planTitleStyle.Render(fmt.Sprintf("  coroctl plan: %s", cfg.ClusterName)))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render(fmt.Sprintf("  base %s, ratio %s, %d zones",
		cfg.Network.BaseCIDR, cfg.Network.SubnetRatio, len(allocs))))
	b.WriteString("\n\n")

	b.WriteString(planHeaderStyle.Render(fmt.Sprintf("  %-12s %-20s %-20s", "ZONE", "PRIVATE", "PUBLIC")))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 52)))
	b.WriteString("\n")

	for _, alloc := range allocs {
		b.WriteString(fmt.Sprintf("  %-12s %s %s\n",
			alloc.ZoneID,
			planValueStyle.Render(fmt.Sprintf("%-20s", alloc.Private.String())),
			planValueStyle.Render(fmt.Sprintf("%-20s", alloc.Public.String())),
		))
	}

	b.WriteString("\n")
	b.WriteString(planDimStyle.Render(fmt.Sprintf("  %d subnets would be created. Run 'coroctl apply' to provision.", len(allocs)*2)))
	b.WriteString("\n")

	return b.String()
}
