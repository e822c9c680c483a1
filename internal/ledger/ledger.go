// Package ledger derives every monetary field in the system from the
// transaction log. All functions are pure and total: they take already
// loaded slices, never touch the database, and never fail — a transaction
// that cannot be attributed is skipped, it does not error.
package ledger

import (
	"sort"
	"strings"

	"github.com/venaeki0-svg/vena/models"
)

// depositPrefixes mark legacy pocket transactions that add to the pocket.
// New transactions carry an explicit PocketEffect instead.
var depositPrefixes = []string{
	"Setor ke",
	models.CategoryProjectDownPayment,
	models.CategoryProjectSettlement,
}

// ProjectPayment sums the income booked against a project and classifies it
// against the fixed total cost.
func ProjectPayment(p models.Project, txns []models.Transaction) (int64, models.PaymentStatus) {
	var paid int64
	for _, t := range txns {
		if t.ProjectID != nil && *t.ProjectID == p.ID && t.Type == models.TransactionIncome {
			paid += t.Amount
		}
	}
	switch {
	case paid == 0:
		return 0, models.PaymentUnpaid
	case paid >= p.TotalCost:
		return paid, models.PaymentPaid
	default:
		return paid, models.PaymentPartial
	}
}

// CardBalance folds income minus expense over the transactions referencing a
// card. A card nothing references balances at exactly zero.
func CardBalance(c models.Card, txns []models.Transaction) int64 {
	var balance int64
	for _, t := range txns {
		if t.CardID == nil || *t.CardID != c.ID {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			balance += t.Amount
		case models.TransactionExpense:
			balance -= t.Amount
		}
	}
	return balance
}

// PocketAmount derives a pocket's current amount. The reward pool is a
// cross-entity aggregate: it ignores its own transaction references and sums
// every freelancer's reward balance instead.
func PocketAmount(p models.FinancialPocket, txns []models.Transaction, rewardBalances map[uint]int64) int64 {
	if p.Type == models.PocketRewardPool {
		var total int64
		for _, b := range rewardBalances {
			total += b
		}
		return total
	}

	var amount int64
	for _, t := range txns {
		if t.PocketID == nil || *t.PocketID != p.ID {
			continue
		}
		if pocketCredits(t) {
			amount += t.Amount
		} else {
			amount -= t.Amount
		}
	}
	return amount
}

func pocketCredits(t models.Transaction) bool {
	switch t.PocketEffect {
	case models.PocketCredit:
		return true
	case models.PocketDebit:
		return false
	}
	// Legacy rows: the old dashboard encoded the direction in the
	// description prefix.
	for _, prefix := range depositPrefixes {
		if strings.HasPrefix(t.Description, prefix) {
			return true
		}
	}
	return false
}

// RewardLedger builds the signed reward ledger from reward transactions,
// newest first. Attribution prefers the explicit teamMemberId and falls back
// to the "untuk {name}" / "oleh {name}" description patterns historical rows
// used; rows that match no roster member are dropped.
func RewardLedger(txns []models.Transaction, roster []models.TeamMember) []models.RewardLedgerEntry {
	var entries []models.RewardLedgerEntry
	for _, t := range txns {
		if t.Category != models.CategoryFreelancerReward && t.Category != models.CategoryRewardWithdrawal {
			continue
		}
		memberID, ok := attributeReward(t, roster)
		if !ok {
			continue
		}
		amount := t.Amount
		if t.Category == models.CategoryRewardWithdrawal {
			amount = -amount
		}
		entries = append(entries, models.RewardLedgerEntry{
			TeamMemberID:  memberID,
			TransactionID: t.ID,
			Date:          t.Date,
			Description:   t.Description,
			Amount:        amount,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

func attributeReward(t models.Transaction, roster []models.TeamMember) (uint, bool) {
	if t.TeamMemberID != nil {
		for _, m := range roster {
			if m.ID == *t.TeamMemberID {
				return m.ID, true
			}
		}
		return 0, false
	}

	if t.Category == models.CategoryFreelancerReward {
		// "Hadiah untuk Bambang Sudiro (Proyek: ...)" — the legacy format
		// only guarantees the first word of the name after "untuk".
		fragment := firstWordAfter(t.Description, "untuk ")
		if fragment == "" {
			return 0, false
		}
		for _, m := range roster {
			if strings.Contains(m.Name, fragment) {
				return m.ID, true
			}
		}
		return 0, false
	}

	// Withdrawals spell the full name: "Penarikan saldo hadiah oleh {name}".
	idx := strings.LastIndex(t.Description, "oleh ")
	if idx < 0 {
		return 0, false
	}
	name := strings.TrimSpace(t.Description[idx+len("oleh "):])
	for _, m := range roster {
		if m.Name == name {
			return m.ID, true
		}
	}
	return 0, false
}

func firstWordAfter(s, marker string) string {
	idx := strings.Index(s, marker)
	if idx < 0 {
		return ""
	}
	rest := s[idx+len(marker):]
	end := len(rest)
	for i, r := range rest {
		if r == ' ' || r == '(' {
			end = i
			break
		}
	}
	return rest[:end]
}

// RewardBalance sums the signed ledger entries of one freelancer.
func RewardBalance(memberID uint, entries []models.RewardLedgerEntry) int64 {
	var balance int64
	for _, e := range entries {
		if e.TeamMemberID == memberID {
			balance += e.Amount
		}
	}
	return balance
}

// TeamPaymentStatus reports whether an assignment's fee has been paid out.
// A fee transaction carrying the assignment's id settles it directly; legacy
// rows are matched by the "Gaji Freelancer {member} - Proyek {project}"
// description convention.
func TeamPaymentStatus(pay models.TeamProjectPayment, txns []models.Transaction, projects []models.Project, roster []models.TeamMember) models.TeamPayStatus {
	var project *models.Project
	for i := range projects {
		if projects[i].ID == pay.ProjectID {
			project = &projects[i]
			break
		}
	}
	var member *models.TeamMember
	for i := range roster {
		if roster[i].ID == pay.TeamMemberID {
			member = &roster[i]
			break
		}
	}

	for _, t := range txns {
		if t.Category != models.CategoryFreelancerFee {
			continue
		}
		if t.TeamProjectPaymentID != nil {
			if *t.TeamProjectPaymentID == pay.ID {
				return models.TeamPayPaid
			}
			continue
		}
		if project == nil || member == nil {
			continue
		}
		memberName, projectName, ok := splitFeeDescription(t.Description)
		if !ok {
			continue
		}
		if memberName == member.Name && strings.Contains(project.ProjectName, projectName) {
			return models.TeamPayPaid
		}
	}
	return models.TeamPayUnpaid
}

// splitFeeDescription parses "Gaji Freelancer {member} - Proyek {project}".
func splitFeeDescription(desc string) (member, project string, ok bool) {
	parts := strings.SplitN(desc, " - ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	member = strings.TrimPrefix(parts[0], models.CategoryFreelancerFee+" ")
	project = strings.TrimPrefix(parts[1], "Proyek ")
	if member == parts[0] {
		return "", "", false
	}
	return member, project, true
}
