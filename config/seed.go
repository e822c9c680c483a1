package config

import (
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/venaeki0-svg/vena/models"
)

// SeedDefaults creates the single company profile and the first admin login
// when the database is empty. Safe to call on every startup.
func SeedDefaults() {
	seedProfile()
	seedAdmin()
}

func seedProfile() {
	var cnt int64
	DB.Model(&models.Profile{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	profile := models.Profile{
		CompanyName:       "Vena Pictures",
		IncomeCategories:  models.StringList{"DP Proyek", "Pelunasan Proyek", "Penjualan Cetak", "Lainnya"},
		ExpenseCategories: models.StringList{"Gaji Freelancer", "Hadiah Freelancer", "Penarikan Hadiah Freelancer", "Sewa Alat", "Transportasi", "Konsumsi", "Cetak Album", "Operasional Kantor", "Transfer Internal"},
		ProjectTypes:      models.StringList{"Pernikahan", "Pre-wedding", "Lamaran", "Acara Korporat", "Ulang Tahun"},
		EventTypes:        models.StringList{"Meeting Klien", "Survey Lokasi", "Libur", "Workshop", "Lainnya"},
		AssetCategories:   models.StringList{"Kamera", "Lensa", "Drone", "Lighting", "Komputer", "Lainnya"},
		SOPCategories:     models.StringList{"Pra-Produksi", "Produksi", "Pasca-Produksi", "Umum"},
		ProjectStatusConfig: models.ProjectStatusConfigs{
			{ID: "status_1", Name: "Persiapan", Color: "#6366f1", SubStatuses: []models.SubStatusConfig{
				{Name: "Briefing Internal", Note: "Rapat internal untuk membahas konsep."},
				{Name: "Survey Lokasi", Note: "Kunjungan ke lokasi acara."},
			}},
			{ID: "status_2", Name: "Dikonfirmasi", Color: "#3b82f6", SubStatuses: []models.SubStatusConfig{
				{Name: "DP Diterima", Note: "Uang muka sudah masuk."},
				{Name: "Kontrak Ditandatangani", Note: "Kontrak kerja sudah disetujui kedua pihak."},
			}},
			{ID: "status_3", Name: "Editing", Color: "#8b5cf6", SubStatuses: []models.SubStatusConfig{
				{Name: "Seleksi Foto", Note: "Memilih foto terbaik."},
				{Name: "Editing Foto", Note: "Proses color grading dan retouch."},
				{Name: "Editing Video", Note: "Penyuntingan video utama."},
			}},
			{ID: "status_4", Name: "Cetak", Color: "#f97316", SubStatuses: []models.SubStatusConfig{
				{Name: "Approval Desain Album", Note: "Menunggu persetujuan desain dari klien."},
				{Name: "Proses Cetak", Note: "Album sedang dicetak."},
			}},
			{ID: "status_5", Name: "Dikirim", Color: "#06b6d4"},
			{ID: "status_6", Name: "Selesai", Color: "#10b981"},
			{ID: "status_7", Name: "Dibatalkan", Color: "#ef4444"},
		},
	}
	if err := DB.Create(&profile).Error; err != nil {
		slog.Error("failed to seed profile", "error", err)
	}
}

func seedAdmin() {
	var cnt int64
	DB.Model(&models.User{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		slog.Warn("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash admin password", "error", err)
		return
	}
	admin := models.User{
		Email:    email,
		Password: string(hash),
		FullName: "Administrator",
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		slog.Error("failed to seed admin user", "error", err)
	}
}
