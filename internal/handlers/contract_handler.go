package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListContractsHandler fetches contracts with client and project, paginated
// unless all=true.
func ListContractsHandler(c *gin.Context) {
	var contracts []models.Contract
	query := config.DB.Preload("Client").Preload("Project").Order("signing_date DESC")

	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	if c.Query("all") == "true" {
		if err := query.Find(&contracts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contracts"})
			return
		}
		if contracts == nil {
			contracts = make([]models.Contract, 0)
		}
		c.JSON(http.StatusOK, contracts)
		return
	}

	var totalRows int64
	query.Model(&models.Contract{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&contracts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contracts"})
		return
	}
	if contracts == nil {
		contracts = make([]models.Contract, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, contracts, totalRows))
}

// CreateContractHandler creates a contract. The contract number is generated
// when the client does not supply one.
func CreateContractHandler(c *gin.Context) {
	var contract models.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if contract.ProjectID == 0 || contract.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId and clientId are required"})
		return
	}
	if contract.ContractNumber == "" {
		contract.ContractNumber = fmt.Sprintf("VP/%s/%d", time.Now().Format("2006/01"), time.Now().UnixNano()%100000)
	}
	if contract.SigningDate.IsZero() {
		contract.SigningDate = time.Now()
	}

	if err := config.DB.Create(&contract).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// GetContractHandler fetches one contract.
func GetContractHandler(c *gin.Context) {
	var contract models.Contract
	if err := config.DB.Preload("Client").Preload("Project").First(&contract, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}
	c.JSON(http.StatusOK, contract)
}

// UpdateContractHandler updates the agreed terms.
func UpdateContractHandler(c *gin.Context) {
	var contract models.Contract
	if err := config.DB.First(&contract, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	var input models.Contract
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = contract.ID
	input.CreatedAt = contract.CreatedAt
	if input.ContractNumber == "" {
		input.ContractNumber = contract.ContractNumber
	}

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contract"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteContractHandler removes a contract.
func DeleteContractHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Contract{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contract"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Contract deleted successfully"})
	}
}

// RenderContractHandler fills the profile's contract template with the
// contract's data and returns the rendered text.
func RenderContractHandler(c *gin.Context) {
	var contract models.Contract
	if err := config.DB.Preload("Client").Preload("Project").First(&contract, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	var profile models.Profile
	if err := config.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Company profile not configured"})
		return
	}
	if profile.ContractTemplate == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Contract template is empty"})
		return
	}

	rendered := renderContractText(profile.ContractTemplate, buildContractReplacements(&contract, &profile))
	c.JSON(http.StatusOK, gin.H{
		"contractNumber": contract.ContractNumber,
		"renderedText":   rendered,
	})
}

func renderContractText(template string, repl map[string]string) string {
	out := template
	for key, val := range repl {
		out = strings.ReplaceAll(out, key, val)
	}
	return out
}

func buildContractReplacements(contract *models.Contract, profile *models.Profile) map[string]string {
	var projectName, projectLocation string
	var totalCost, amountPaid int64
	var projectDate time.Time
	if contract.Project != nil {
		projectName = contract.Project.ProjectName
		projectLocation = contract.Project.Location
		totalCost = contract.Project.TotalCost
		amountPaid = contract.Project.AmountPaid
		projectDate = contract.Project.Date
	}
	remaining := totalCost - amountPaid

	clientName := contract.ClientName1
	if clientName == "" && contract.Client != nil {
		clientName = contract.Client.Name
	}

	formatDate := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02-01-2006")
	}
	formatDatePtr := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return formatDate(*t)
	}

	return map[string]string{
		"{{nomor_kontrak}}":      contract.ContractNumber,
		"{{tanggal_ttd}}":        formatDate(contract.SigningDate),
		"{{lokasi_ttd}}":         contract.SigningLocation,
		"{{nama_perusahaan}}":    profile.CompanyName,
		"{{penandatangan}}":      profile.AuthorizedSigner,
		"{{alamat_perusahaan}}":  profile.Address,
		"{{nama_klien_1}}":       clientName,
		"{{alamat_klien_1}}":     contract.ClientAddress1,
		"{{telepon_klien_1}}":    contract.ClientPhone1,
		"{{nama_klien_2}}":       contract.ClientName2,
		"{{alamat_klien_2}}":     contract.ClientAddress2,
		"{{telepon_klien_2}}":    contract.ClientPhone2,
		"{{nama_proyek}}":        projectName,
		"{{tanggal_acara}}":      formatDate(projectDate),
		"{{lokasi_acara}}":       projectLocation,
		"{{total_biaya}}":        fmt.Sprintf("Rp %d", totalCost),
		"{{total_biaya_teks}}":   amountToWords(totalCost),
		"{{jumlah_dp}}":          fmt.Sprintf("Rp %d", amountPaid),
		"{{sisa_pembayaran}}":    fmt.Sprintf("Rp %d", remaining),
		"{{durasi_pemotretan}}":  contract.ShootingDuration,
		"{{jumlah_foto}}":        contract.GuaranteedPhotos,
		"{{detail_album}}":       contract.AlbumDetails,
		"{{format_file}}":        contract.DigitalFilesFormat,
		"{{item_lain}}":          contract.OtherItems,
		"{{jumlah_personil}}":    contract.PersonnelCount,
		"{{waktu_pengerjaan}}":   contract.DeliveryTimeframe,
		"{{tanggal_dp}}":         formatDatePtr(contract.DPDate),
		"{{tanggal_pelunasan}}":  formatDatePtr(contract.FinalPaymentDate),
		"{{kebijakan_batal}}":    contract.CancellationPolicy,
		"{{yurisdiksi}}":         contract.Jurisdiction,
		"{{syarat_ketentuan}}":   profile.TermsAndConditions,
	}
}

// amountToWords spells a rupiah amount in words.
func amountToWords(amount int64) string {
	if amount < 0 {
		return "minus " + amountToWords(-amount)
	}
	return num2words.Convert(int(amount)) + " rupiah"
}
