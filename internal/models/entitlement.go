package models

import "sync"

type EntitlementStatus string

const (
	StatusFree       EntitlementStatus = "free"
	StatusPendingPro EntitlementStatus = "pending_pro"
	StatusPro        EntitlementStatus = "pro"
)

// Entitlement is the paid-tier state machine: free -> pending_pro -> pro,
// with a trust-based shortcut free -> pro and no downgrade path.
type Entitlement struct {
	Mutex  sync.RWMutex
	status EntitlementStatus
}

func NewEntitlement() *Entitlement {
	return &Entitlement{status: StatusFree}
}

func (e *Entitlement) Status() EntitlementStatus {
	e.Mutex.RLock()
	defer e.Mutex.RUnlock()
	return e.status
}

// BeginUpgrade records checkout intent. Allowed from free and pending_pro
// (restarting checkout is idempotent). Returns false once pro: there is
// nothing left to upgrade.
func (e *Entitlement) BeginUpgrade() bool {
	e.Mutex.Lock()
	defer e.Mutex.Unlock()
	if e.status == StatusPro {
		return false
	}
	e.status = StatusPendingPro
	return true
}

// ConfirmPurchase moves to pro from any non-pro state. Confirmation is
// user-asserted, so a pending upgrade is not required. Returns false when
// already pro.
func (e *Entitlement) ConfirmPurchase() bool {
	e.Mutex.Lock()
	defer e.Mutex.Unlock()
	if e.status == StatusPro {
		return false
	}
	e.status = StatusPro
	return true
}

// Flags returns the persisted representation: a pro flag and a pending flag.
func (e *Entitlement) Flags() (pro, pending bool) {
	e.Mutex.RLock()
	defer e.Mutex.RUnlock()
	return e.status == StatusPro, e.status == StatusPendingPro
}

// SetFlags restores state from persisted flags. Pro wins over pending.
func (e *Entitlement) SetFlags(pro, pending bool) {
	e.Mutex.Lock()
	defer e.Mutex.Unlock()
	switch {
	case pro:
		e.status = StatusPro
	case pending:
		e.status = StatusPendingPro
	default:
		e.status = StatusFree
	}
}
