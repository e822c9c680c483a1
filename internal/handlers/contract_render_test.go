package handlers

import (
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/models"
)

func TestRenderContractText(t *testing.T) {
	template := "Kontrak {{nomor_kontrak}} antara {{nama_perusahaan}} dan {{nama_klien_1}} senilai {{total_biaya}} ({{total_biaya_teks}})."

	project := models.Project{
		Model:       gorm.Model{ID: 1},
		ProjectName: "Pernikahan Andi & Siska",
		TotalCost:   25000000,
		Date:        time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC),
	}
	contract := models.Contract{
		ContractNumber: "VP/2025/09/00042",
		ClientName1:    "Andi Pratama",
		SigningDate:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Project:        &project,
	}
	profile := models.Profile{CompanyName: "Vena Pictures", AuthorizedSigner: "Nina Vena"}

	got := renderContractText(template, buildContractReplacements(&contract, &profile))

	for _, want := range []string{
		"VP/2025/09/00042",
		"Vena Pictures",
		"Andi Pratama",
		"Rp 25000000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered text missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "{{") {
		t.Errorf("rendered text still contains placeholders:\n%s", got)
	}
}

func TestRenderContractFallsBackToClientName(t *testing.T) {
	contract := models.Contract{
		ContractNumber: "VP/2025/01/1",
		Client:         &models.Client{Name: "Citra Ayu"},
	}
	repl := buildContractReplacements(&contract, &models.Profile{})
	if repl["{{nama_klien_1}}"] != "Citra Ayu" {
		t.Errorf("expected client name fallback, got %q", repl["{{nama_klien_1}}"])
	}
}

func TestAmountToWords(t *testing.T) {
	got := amountToWords(5)
	if !strings.Contains(got, "five") || !strings.HasSuffix(got, " rupiah") {
		t.Errorf("amountToWords(5) = %q", got)
	}

	neg := amountToWords(-5)
	if !strings.HasPrefix(neg, "minus ") {
		t.Errorf("amountToWords(-5) = %q", neg)
	}
}
