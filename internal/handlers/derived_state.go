package handlers

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/venaeki0-svg/vena/internal/ledger"
	"github.com/venaeki0-svg/vena/models"
)

// recomputeDerivedState reloads the full financial snapshot inside the given
// transaction, re-derives every balance from the transaction log and writes
// the results back. Every handler that touches the log calls this before
// committing, so stored balances never drift from the log.
func recomputeDerivedState(tx *gorm.DB) error {
	var snap ledger.Snapshot
	if err := tx.Find(&snap.Projects).Error; err != nil {
		return err
	}
	if err := tx.Find(&snap.Cards).Error; err != nil {
		return err
	}
	if err := tx.Find(&snap.Pockets).Error; err != nil {
		return err
	}
	if err := tx.Find(&snap.TeamMembers).Error; err != nil {
		return err
	}
	if err := tx.Find(&snap.TeamProjectPayments).Error; err != nil {
		return err
	}
	if err := tx.Find(&snap.Transactions).Error; err != nil {
		return err
	}

	d := ledger.Recompute(snap)

	for _, p := range snap.Projects {
		state := d.ProjectPayments[p.ID]
		if p.AmountPaid == state.AmountPaid && p.PaymentStatus == state.PaymentStatus {
			continue
		}
		updates := map[string]interface{}{
			"amount_paid":    state.AmountPaid,
			"payment_status": state.PaymentStatus,
		}
		if err := tx.Model(&models.Project{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
			return err
		}
	}

	for _, card := range snap.Cards {
		balance := d.CardBalances[card.ID]
		if card.Balance == balance {
			continue
		}
		if err := tx.Model(&models.Card{}).Where("id = ?", card.ID).Update("balance", balance).Error; err != nil {
			return err
		}
	}

	for _, pocket := range snap.Pockets {
		amount := d.PocketAmounts[pocket.ID]
		if pocket.Amount == amount {
			continue
		}
		if err := tx.Model(&models.FinancialPocket{}).Where("id = ?", pocket.ID).Update("amount", amount).Error; err != nil {
			return err
		}
	}

	for _, m := range snap.TeamMembers {
		balance := d.RewardBalances[m.ID]
		if m.RewardBalance == balance {
			continue
		}
		if err := tx.Model(&models.TeamMember{}).Where("id = ?", m.ID).Update("reward_balance", balance).Error; err != nil {
			return err
		}
	}

	for _, pay := range snap.TeamProjectPayments {
		status := d.TeamPaymentStatuses[pay.ID]
		if pay.Status == status {
			continue
		}
		if err := tx.Model(&models.TeamProjectPayment{}).Where("id = ?", pay.ID).Update("status", status).Error; err != nil {
			return err
		}
	}

	// The reward ledger is a projection of the log: rebuild it wholesale.
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.RewardLedgerEntry{}).Error; err != nil {
		return err
	}
	if len(d.RewardEntries) > 0 {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&d.RewardEntries).Error; err != nil {
			return err
		}
	}

	return nil
}
