package alerts

import (
	"fmt"
	"sync"

	"github.com/stockpilot/stockpilot/internal/inventory"
)

// Generator derives stock alerts from the catalog. A sweep emits one alert
// per item per status change, so repeated sweeps stay quiet until the item
// moves again.
type Generator struct {
	alerts    *Store
	inventory *inventory.Store

	mu   sync.Mutex
	seen map[string]inventory.Status
}

// NewGenerator builds a Generator over the given stores.
func NewGenerator(alerts *Store, inv *inventory.Store) *Generator {
	return &Generator{
		alerts:    alerts,
		inventory: inv,
		seen:      make(map[string]inventory.Status),
	}
}

// Sweep scans the catalog and emits low-stock and out-of-stock alerts.
// It returns the number of alerts created.
func (g *Generator) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	created := 0
	current := make(map[string]inventory.Status)
	for _, item := range g.inventory.List() {
		current[item.ID] = item.Status
		if g.seen[item.ID] == item.Status {
			continue
		}
		switch item.Status {
		case inventory.StatusWarning:
			g.alerts.Add(Draft{
				Kind:    KindLowStock,
				Message: fmt.Sprintf("%s is low on stock (%d left, minimum %d)", item.Name, item.Qty, item.Min),
				ItemID:  item.ID,
			})
			created++
		case inventory.StatusDanger:
			g.alerts.Add(Draft{
				Kind:    KindOutOfStock,
				Message: fmt.Sprintf("%s is out of stock", item.Name),
				ItemID:  item.ID,
			})
			created++
		}
	}
	// forget deleted items so re-added ones alert again
	g.seen = current
	return created
}
