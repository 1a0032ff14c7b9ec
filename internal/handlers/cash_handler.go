package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPetServices01/petshop-manager/internal/config"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/httpresp"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/timezone"
)

type CashHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewCashHandler(db *gorm.DB, cfg *config.Config) *CashHandler {
	return &CashHandler{db: db, config: cfg}
}

// --------- Requests ---------

type CreateCashEntryRequest struct {
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Type          string  `json:"type" binding:"required,oneof=entrada saida"`
	PaymentMethod string  `json:"payment_method"`
	EntryDate     string  `json:"entry_date"`
}

// --------- Handlers ---------

func (h *CashHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where("entry_date = ?", date)
	}

	var entries []models.CashEntry
	if err := q.Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cash_entries", "Erro ao listar lançamentos.")
		return
	}

	httpresp.List(c, entries)
}

// Create registra um lançamento manual (sangria, compra de insumo,
// venda avulsa). Lançamentos de serviço entram pela conclusão do
// agendamento.
func (h *CashHandler) Create(c *gin.Context) {
	var req CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entryDate := req.EntryDate
	if entryDate == "" {
		entryDate = timezone.Today(h.config.Timezone)
	} else if _, err := time.Parse("2006-01-02", entryDate); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	entry := models.CashEntry{
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		PaymentMethod: req.PaymentMethod,
		EntryDate:     entryDate,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_cash_entry", "Erro ao criar lançamento.")
		return
	}

	httpresp.Created(c, entry)
}

type CashSummary struct {
	Date     string  `json:"date"`
	Income   float64 `json:"entradas"`
	Outcome  float64 `json:"saidas"`
	Balance  float64 `json:"saldo"`
	Quantity int64   `json:"quantidade"`
}

func (h *CashHandler) Summary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Today(h.config.Timezone)
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	summary := CashSummary{Date: date}

	h.db.Model(&models.CashEntry{}).
		Where("entry_date = ? AND type = ?", date, models.CashEntryIn).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Income)

	h.db.Model(&models.CashEntry{}).
		Where("entry_date = ? AND type = ?", date, models.CashEntryOut).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Outcome)

	h.db.Model(&models.CashEntry{}).
		Where("entry_date = ?", date).
		Count(&summary.Quantity)

	summary.Balance = summary.Income - summary.Outcome

	httpresp.OK(c, summary)
}
