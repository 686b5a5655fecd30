package usecase

import (
	"sync"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
)

var tabIndex = map[model.Tab]int{
	model.TabHome:    0,
	model.TabWallet:  1,
	model.TabOrders:  2,
	model.TabProfile: 3,
}

// ParseTab validates an externally supplied tab name.
func ParseTab(raw string) (model.Tab, error) {
	tab := model.Tab(raw)
	if _, ok := tabIndex[tab]; !ok {
		return "", domainErrors.ErrInvalidTab
	}
	return tab, nil
}

// Tabs holds the active main tab.
type Tabs struct {
	mu     sync.RWMutex
	active model.Tab
}

// NewTabs starts on the home tab.
func NewTabs() *Tabs {
	return &Tabs{active: model.TabHome}
}

// Select switches the active tab.
func (t *Tabs) Select(tab model.Tab) {
	t.mu.Lock()
	t.active = tab
	t.mu.Unlock()
}

// Active returns the active tab.
func (t *Tabs) Active() model.Tab {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// Index maps the active tab to its strip position.
func (t *Tabs) Index() int {
	return tabIndex[t.Active()]
}

// OffsetPercent is the horizontal translation of the four-panel strip.
func (t *Tabs) OffsetPercent() int {
	return t.Index() * 25
}
