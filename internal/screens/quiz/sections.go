package quiz

import (
	"fmt"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/ui/components"
)

// SectionChecklist builds a checklist of the bank's sections with their
// question counts, checking those in selected.
func SectionChecklist(b *bank.Bank, selected []string) components.Checklist {
	items := make([]components.ChecklistItem, 0, len(b.Sections()))
	for _, s := range b.Sections() {
		items = append(items, components.ChecklistItem{
			Label:  s,
			Detail: fmt.Sprintf("(%d)", b.Count(s)),
		})
	}
	c := components.NewChecklist(items)
	c.SetChecked(selected)
	return c
}
