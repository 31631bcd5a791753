package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ █████╗ ███╗   ███╗███████╗██╗  ██╗ █████╗ ███╗   ███╗
 ██║  ██║██╔══██╗████╗ ████║██╔════╝╚██╗██╔╝██╔══██╗████╗ ████║
 ███████║███████║██╔████╔██║█████╗   ╚███╔╝ ███████║██╔████╔██║
 ██╔══██║██╔══██║██║╚██╔╝██║██╔══╝   ██╔██╗ ██╔══██║██║╚██╔╝██║
 ██║  ██║██║  ██║██║ ╚═╝ ██║███████╗██╔╝ ██╗██║  ██║██║ ╚═╝ ██║
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝`

const bannerCompact = "H A M E X A M"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 64

// RenderBanner returns the HAMEXAM banner, or a one-line version on
// narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
