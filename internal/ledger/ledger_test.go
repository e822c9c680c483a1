package ledger

import (
	"reflect"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/models"
)

func day(offset int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func uintPtr(v uint) *uint { return &v }

func income(id uint, amount int64, projectID, cardID *uint) models.Transaction {
	return models.Transaction{
		Model:     gorm.Model{ID: id},
		Date:      day(int(id)),
		Amount:    amount,
		Type:      models.TransactionIncome,
		ProjectID: projectID,
		CardID:    cardID,
	}
}

func expense(id uint, amount int64, cardID *uint) models.Transaction {
	return models.Transaction{
		Model:  gorm.Model{ID: id},
		Date:   day(int(id)),
		Amount: amount,
		Type:   models.TransactionExpense,
		CardID: cardID,
	}
}

func TestProjectPayment(t *testing.T) {
	project := models.Project{Model: gorm.Model{ID: 1}, TotalCost: 20500000}

	tests := []struct {
		name       string
		txns       []models.Transaction
		wantPaid   int64
		wantStatus models.PaymentStatus
	}{
		{
			name:       "no transactions",
			txns:       nil,
			wantPaid:   0,
			wantStatus: models.PaymentUnpaid,
		},
		{
			name:       "down payment only",
			txns:       []models.Transaction{income(1, 10000000, uintPtr(1), nil)},
			wantPaid:   10000000,
			wantStatus: models.PaymentPartial,
		},
		{
			name: "settled after second payment",
			txns: []models.Transaction{
				income(1, 10000000, uintPtr(1), nil),
				income(2, 10500000, uintPtr(1), nil),
			},
			wantPaid:   20500000,
			wantStatus: models.PaymentPaid,
		},
		{
			name: "overpayment is still paid",
			txns: []models.Transaction{
				income(1, 25000000, uintPtr(1), nil),
			},
			wantPaid:   25000000,
			wantStatus: models.PaymentPaid,
		},
		{
			name: "expenses and other projects ignored",
			txns: []models.Transaction{
				income(1, 3000000, uintPtr(2), nil),
				expense(2, 1000000, nil),
			},
			wantPaid:   0,
			wantStatus: models.PaymentUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, status := ProjectPayment(project, tt.txns)
			if paid != tt.wantPaid || status != tt.wantStatus {
				t.Errorf("ProjectPayment() = (%d, %s), want (%d, %s)", paid, status, tt.wantPaid, tt.wantStatus)
			}
		})
	}
}

func TestProjectPaymentIgnoresDanglingReference(t *testing.T) {
	// A transaction pointing at a project id that is not in the collection
	// must simply not count toward any project.
	project := models.Project{Model: gorm.Model{ID: 7}, TotalCost: 1000}
	txns := []models.Transaction{income(1, 500, uintPtr(999), nil)}

	paid, status := ProjectPayment(project, txns)
	if paid != 0 || status != models.PaymentUnpaid {
		t.Fatalf("got (%d, %s), want (0, %s)", paid, status, models.PaymentUnpaid)
	}
}

func TestCardBalance(t *testing.T) {
	card := models.Card{Model: gorm.Model{ID: 1}}

	tests := []struct {
		name string
		txns []models.Transaction
		want int64
	}{
		{"no transactions", nil, 0},
		{
			"income minus expenses",
			[]models.Transaction{
				income(1, 50000000, nil, uintPtr(1)),
				expense(2, 15000000, uintPtr(1)),
				expense(3, 5000000, uintPtr(1)),
			},
			30000000,
		},
		{
			"may go negative",
			[]models.Transaction{expense(1, 2000000, uintPtr(1))},
			-2000000,
		},
		{
			"other cards ignored",
			[]models.Transaction{income(1, 9000000, nil, uintPtr(2))},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardBalance(card, tt.txns); got != tt.want {
				t.Errorf("CardBalance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPocketAmount(t *testing.T) {
	pocket := models.FinancialPocket{Model: gorm.Model{ID: 3}, Type: models.PocketSaving}

	withPocket := func(t models.Transaction, effect models.PocketEffect, desc string) models.Transaction {
		t.PocketID = uintPtr(3)
		t.PocketEffect = effect
		t.Description = desc
		return t
	}

	tests := []struct {
		name string
		txns []models.Transaction
		want int64
	}{
		{
			name: "explicit effect fields",
			txns: []models.Transaction{
				withPocket(expense(1, 15000000, nil), models.PocketCredit, "Alokasi dana darurat"),
				withPocket(expense(2, 4000000, nil), models.PocketDebit, "Belanja operasional"),
			},
			want: 11000000,
		},
		{
			name: "legacy description prefixes",
			txns: []models.Transaction{
				withPocket(expense(1, 15000000, nil), "", "Setor ke Dana Darurat"),
				withPocket(income(2, 6000000, nil, nil), "", "DP Proyek Prewedding Budi"),
				withPocket(expense(3, 750000, nil), "", "Pembelian ATK Kantor"),
			},
			want: 20250000,
		},
		{
			name: "unrelated pockets ignored",
			txns: []models.Transaction{
				{Model: gorm.Model{ID: 1}, Amount: 100, Type: models.TransactionExpense, PocketID: uintPtr(9), PocketEffect: models.PocketCredit},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PocketAmount(pocket, tt.txns, nil); got != tt.want {
				t.Errorf("PocketAmount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRewardPoolPocketSumsBalances(t *testing.T) {
	pool := models.FinancialPocket{Model: gorm.Model{ID: 5}, Type: models.PocketRewardPool}
	balances := map[uint]int64{1: 250000, 2: 150000, 3: -50000}

	if got := PocketAmount(pool, nil, balances); got != 350000 {
		t.Fatalf("reward pool amount = %d, want 350000", got)
	}
}

func rewardTxn(id uint, category, desc string, amount int64, memberID *uint) models.Transaction {
	return models.Transaction{
		Model:        gorm.Model{ID: id},
		Date:         day(int(id)),
		Description:  desc,
		Amount:       amount,
		Type:         models.TransactionExpense,
		Category:     category,
		TeamMemberID: memberID,
	}
}

func TestRewardLedger(t *testing.T) {
	roster := []models.TeamMember{
		{Model: gorm.Model{ID: 1}, Name: "Bambang Sudiro"},
		{Model: gorm.Model{ID: 2}, Name: "Siti Aminah"},
	}

	txns := []models.Transaction{
		rewardTxn(1, models.CategoryFreelancerReward, "Hadiah untuk Bambang Sudiro (Proyek: Lamaran Citra)", 200000, nil),
		rewardTxn(2, models.CategoryFreelancerReward, "Hadiah untuk Siti Aminah (Proyek: Prewedding Budi & Rekan)", 250000, nil),
		rewardTxn(3, models.CategoryRewardWithdrawal, "Penarikan saldo hadiah oleh Bambang Sudiro", 150000, nil),
		// Explicit attribution wins even with an unhelpful description.
		rewardTxn(4, models.CategoryFreelancerReward, "Bonus akhir tahun", 100000, uintPtr(2)),
		// No member match: silently dropped.
		rewardTxn(5, models.CategoryFreelancerReward, "Hadiah untuk Joko Anwar", 500000, nil),
		// Not a reward category at all.
		expense(6, 75000, nil),
	}

	entries := RewardLedger(txns, roster)
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	// Newest first.
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Fatalf("entries not sorted date-descending at %d", i)
		}
	}

	if got := RewardBalance(1, entries); got != 50000 {
		t.Errorf("Bambang balance = %d, want 50000", got)
	}
	if got := RewardBalance(2, entries); got != 350000 {
		t.Errorf("Siti balance = %d, want 350000", got)
	}
}

func TestRewardSignLaw(t *testing.T) {
	roster := []models.TeamMember{{Model: gorm.Model{ID: 1}, Name: "Dewi Anjani"}}

	credit := rewardTxn(1, models.CategoryFreelancerReward, "Hadiah untuk Dewi Anjani (Proyek: X)", 200000, nil)
	before := RewardBalance(1, RewardLedger([]models.Transaction{credit}, roster))
	if before != 200000 {
		t.Fatalf("credit of 200000 yields balance %d", before)
	}

	withdrawal := rewardTxn(2, models.CategoryRewardWithdrawal, "Penarikan saldo hadiah oleh Dewi Anjani", 120000, nil)
	after := RewardBalance(1, RewardLedger([]models.Transaction{credit, withdrawal}, roster))
	if after != before-120000 {
		t.Fatalf("withdrawal of 120000 yields balance %d, want %d", after, before-120000)
	}
}

func TestTeamPaymentStatus(t *testing.T) {
	projects := []models.Project{{Model: gorm.Model{ID: 1}, ProjectName: "Pernikahan Andi & Siska"}}
	roster := []models.TeamMember{{Model: gorm.Model{ID: 1}, Name: "Bambang Sudiro"}}
	pay := models.TeamProjectPayment{Model: gorm.Model{ID: 10}, ProjectID: 1, TeamMemberID: 1, Fee: 1500000}

	feeTxn := func(desc string, payID *uint) models.Transaction {
		return models.Transaction{
			Model:                gorm.Model{ID: 1},
			Description:          desc,
			Amount:               1500000,
			Type:                 models.TransactionExpense,
			Category:             models.CategoryFreelancerFee,
			TeamProjectPaymentID: payID,
		}
	}

	tests := []struct {
		name string
		txns []models.Transaction
		want models.TeamPayStatus
	}{
		{"no fee transaction", nil, models.TeamPayUnpaid},
		{
			"explicit assignment id",
			[]models.Transaction{feeTxn("Pembayaran fee", uintPtr(10))},
			models.TeamPayPaid,
		},
		{
			"explicit id for another assignment",
			[]models.Transaction{feeTxn("Pembayaran fee", uintPtr(11))},
			models.TeamPayUnpaid,
		},
		{
			"legacy description match",
			[]models.Transaction{feeTxn("Gaji Freelancer Bambang Sudiro - Proyek Pernikahan Andi & Siska", nil)},
			models.TeamPayPaid,
		},
		{
			"legacy description for someone else",
			[]models.Transaction{feeTxn("Gaji Freelancer Siti Aminah - Proyek Pernikahan Andi & Siska", nil)},
			models.TeamPayUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TeamPaymentStatus(pay, tt.txns, projects, roster); got != tt.want {
				t.Errorf("TeamPaymentStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	snap := Snapshot{
		Projects: []models.Project{{Model: gorm.Model{ID: 1}, ProjectName: "Lamaran Citra", TotalCost: 12000000}},
		Cards:    []models.Card{{Model: gorm.Model{ID: 1}}},
		Pockets: []models.FinancialPocket{
			{Model: gorm.Model{ID: 1}, Type: models.PocketSaving},
			{Model: gorm.Model{ID: 2}, Type: models.PocketRewardPool},
		},
		TeamMembers: []models.TeamMember{{Model: gorm.Model{ID: 1}, Name: "Bambang Sudiro"}},
		TeamProjectPayments: []models.TeamProjectPayment{
			{Model: gorm.Model{ID: 1}, ProjectID: 1, TeamMemberID: 1, Fee: 1500000},
		},
		Transactions: []models.Transaction{
			income(1, 12000000, uintPtr(1), uintPtr(1)),
			rewardTxn(2, models.CategoryFreelancerReward, "Hadiah untuk Bambang Sudiro (Proyek: Lamaran Citra)", 150000, nil),
		},
	}

	first := Recompute(snap)
	second := Recompute(snap)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("re-deriving the same snapshot produced different results")
	}

	if got := first.ProjectPayments[1]; got.AmountPaid != 12000000 || got.PaymentStatus != models.PaymentPaid {
		t.Errorf("project payment = %+v", got)
	}
	if first.CardBalances[1] != 12000000 {
		t.Errorf("card balance = %d", first.CardBalances[1])
	}
	// Reward pool equals the sum of all freelancer balances.
	if first.PocketAmounts[2] != first.RewardBalances[1] {
		t.Errorf("reward pool %d != total reward balances %d", first.PocketAmounts[2], first.RewardBalances[1])
	}
}

func TestRewardPoolInvariantOverArbitraryLog(t *testing.T) {
	// The pool must equal the sum of member balances whatever the log holds.
	roster := []models.TeamMember{
		{Model: gorm.Model{ID: 1}, Name: "Bambang Sudiro"},
		{Model: gorm.Model{ID: 2}, Name: "Siti Aminah"},
		{Model: gorm.Model{ID: 3}, Name: "Rahmat Hidayat"},
	}
	txns := []models.Transaction{
		rewardTxn(1, models.CategoryFreelancerReward, "Hadiah untuk Bambang Sudiro (Proyek: A)", 200000, nil),
		rewardTxn(2, models.CategoryFreelancerReward, "Hadiah untuk Rahmat Hidayat (Proyek: A)", 250000, nil),
		rewardTxn(3, models.CategoryRewardWithdrawal, "Penarikan saldo hadiah oleh Bambang Sudiro", 150000, nil),
		rewardTxn(4, models.CategoryFreelancerReward, "Hadiah untuk Siapa Ini", 999999, nil), // dropped
	}

	entries := RewardLedger(txns, roster)
	balances := map[uint]int64{}
	var total int64
	for _, m := range roster {
		balances[m.ID] = RewardBalance(m.ID, entries)
		total += balances[m.ID]
	}

	pool := models.FinancialPocket{Model: gorm.Model{ID: 9}, Type: models.PocketRewardPool}
	if got := PocketAmount(pool, txns, balances); got != total {
		t.Fatalf("pool = %d, want %d", got, total)
	}
	if total != 300000 {
		t.Fatalf("total balances = %d, want 300000", total)
	}
}
