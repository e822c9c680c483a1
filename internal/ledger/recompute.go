package ledger

import "github.com/venaeki0-svg/vena/models"

// Snapshot is the full in-memory state the engine derives from. Callers load
// it, never the engine.
type Snapshot struct {
	Projects            []models.Project
	Cards               []models.Card
	Pockets             []models.FinancialPocket
	TeamMembers         []models.TeamMember
	TeamProjectPayments []models.TeamProjectPayment
	Transactions        []models.Transaction
}

// ProjectPaymentState is the derived payment view of one project.
type ProjectPaymentState struct {
	AmountPaid    int64
	PaymentStatus models.PaymentStatus
}

// Derived holds every value the engine computes for a snapshot, keyed by
// record id. Re-deriving the same snapshot always yields the same Derived.
type Derived struct {
	ProjectPayments     map[uint]ProjectPaymentState
	CardBalances        map[uint]int64
	PocketAmounts       map[uint]int64
	RewardEntries       []models.RewardLedgerEntry
	RewardBalances      map[uint]int64
	TeamPaymentStatuses map[uint]models.TeamPayStatus
}

// Recompute derives the whole snapshot in one pass: projects, cards, the
// reward ledger and balances, then pockets (the reward pool needs the
// balances first) and assignment payment statuses.
func Recompute(s Snapshot) Derived {
	d := Derived{
		ProjectPayments:     make(map[uint]ProjectPaymentState, len(s.Projects)),
		CardBalances:        make(map[uint]int64, len(s.Cards)),
		PocketAmounts:       make(map[uint]int64, len(s.Pockets)),
		RewardBalances:      make(map[uint]int64, len(s.TeamMembers)),
		TeamPaymentStatuses: make(map[uint]models.TeamPayStatus, len(s.TeamProjectPayments)),
	}

	for _, p := range s.Projects {
		paid, status := ProjectPayment(p, s.Transactions)
		d.ProjectPayments[p.ID] = ProjectPaymentState{AmountPaid: paid, PaymentStatus: status}
	}

	for _, c := range s.Cards {
		d.CardBalances[c.ID] = CardBalance(c, s.Transactions)
	}

	d.RewardEntries = RewardLedger(s.Transactions, s.TeamMembers)
	for _, m := range s.TeamMembers {
		d.RewardBalances[m.ID] = RewardBalance(m.ID, d.RewardEntries)
	}

	for _, p := range s.Pockets {
		d.PocketAmounts[p.ID] = PocketAmount(p, s.Transactions, d.RewardBalances)
	}

	for _, pay := range s.TeamProjectPayments {
		d.TeamPaymentStatuses[pay.ID] = TeamPaymentStatus(pay, s.Transactions, s.Projects, s.TeamMembers)
	}

	return d
}
