package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	"github.com/VidaPetServices01/petshop-manager/internal/cache"
	"github.com/VidaPetServices01/petshop-manager/internal/config"
	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/appointment"
	"github.com/VidaPetServices01/petshop-manager/internal/dto"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/httpresp"
	"github.com/VidaPetServices01/petshop-manager/internal/middleware"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/timezone"
	ucAppointment "github.com/VidaPetServices01/petshop-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	config   *config.Config
	createUC *ucAppointment.CreateAppointment
	statusUC *ucAppointment.UpdateStatus
	cache    *cache.StatsCache
	audit    *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucAppointment.CreateAppointment,
	statusUC *ucAppointment.UpdateStatus,
	statsCache *cache.StatsCache,
	dispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		config:   cfg,
		createUC: createUC,
		statusUC: statusUC,
		cache:    statsCache,
		audit:    dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	PetID         uint   `json:"pet_id" binding:"required"`
	ServiceTypeID uint   `json:"service_type_id" binding:"required"`
	Date          string `json:"appointment_date" binding:"required"`
	Time          string `json:"appointment_time" binding:"required"`

	Price          float64 `json:"price"`
	Transport      bool    `json:"transport"`
	TransportPrice float64 `json:"transport_price"`
	Notes          string  `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date           *string  `json:"appointment_date,omitempty"`
	Time           *string  `json:"appointment_time,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Transport      *bool    `json:"transport,omitempty"`
	TransportPrice *float64 `json:"transport_price,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		PetID:          req.PetID,
		ServiceTypeID:  req.ServiceTypeID,
		Date:           req.Date,
		Time:           req.Time,
		Price:          req.Price,
		Transport:      req.Transport,
		TransportPrice: req.TransportPrice,
		Notes:          req.Notes,
	}, actorID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Pet").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Pet").
		Preload("ServiceType").
		First(&ap, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Param("date")
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Pet").
		Where("appointment_date = ?", dateStr).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			ClientName:      ap.Client.Name,
			PetName:         ap.Pet.Name,
			ServiceName:     ap.ServiceName,
			Price:           ap.Price,
		})
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID := c.Param("clientId")

	var aps []models.Appointment
	if err := h.db.
		Preload("Pet").
		Where("client_id = ?", clientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByPet(c *gin.Context) {
	petID := c.Param("petId")

	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Where("pet_id = ?", petID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Search(c *gin.Context) {
	query := c.Query("q")

	q := h.db.Preload("Client").Preload("Pet")
	if query != "" {
		like := "%" + query + "%"
		q = q.
			Joins("LEFT JOIN clients ON clients.id = appointments.client_id").
			Joins("LEFT JOIN pets ON pets.id = appointments.pet_id").
			Where(
				"LOWER(clients.name) LIKE LOWER(?) OR LOWER(pets.name) LIKE LOWER(?) OR LOWER(appointments.service_name) LIKE LOWER(?)",
				like, like, like,
			)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_search_appointments", "Erro na busca de agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	if domain.Status(ap.Status) == domain.StatusCompleted ||
		domain.Status(ap.Status) == domain.StatusCancelled {
		httperr.BadRequest(c, "invalid_state", "Agendamento encerrado não pode ser alterado.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		ap.AppointmentDate = *req.Date
	}
	if req.Time != nil {
		normalized, err := ucAppointment.NormalizeTime(*req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Hora inválida.")
			return
		}
		ap.AppointmentTime = normalized
	}
	if req.Price != nil {
		ap.Price = *req.Price
	}
	if req.Transport != nil {
		ap.Transport = *req.Transport
	}
	if req.TransportPrice != nil {
		ap.TransportPrice = *req.TransportPrice
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}

	// remarcação passa de novo pelo guard de slot, fora o próprio id
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where(
				"appointment_date = ? AND appointment_time = ? AND id <> ?",
				ap.AppointmentDate, ap.AppointmentTime, ap.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Save(&ap).Error
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.Message(c, "Agendamento excluído.")
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), uint(id), req.Status, actorID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATS
// ======================================================

type AppointmentStats struct {
	Total    int64            `json:"total"`
	Today    int64            `json:"today"`
	ByStatus map[string]int64 `json:"by_status"`
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats AppointmentStats
	if h.cache.Get(ctx, "stats:appointments", &stats) {
		httpresp.OK(c, stats)
		return
	}

	stats.ByStatus = map[string]int64{}

	h.db.Model(&models.Appointment{}).Count(&stats.Total)
	h.db.Model(&models.Appointment{}).
		Where("appointment_date = ?", timezone.Today(h.config.Timezone)).
		Count(&stats.Today)

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows)

	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}

	h.cache.Set(ctx, "stats:appointments", stats)

	httpresp.OK(c, stats)
}

// --------- Error mapping ---------

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.BadRequest(c, "time_conflict", "Já existe um agendamento neste horário.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
	case httperr.IsBusiness(err, "pet_not_found"):
		httperr.BadRequest(c, "pet_not_found", "Pet não encontrado.")
	case httperr.IsBusiness(err, "pet_not_owned_by_client"):
		httperr.BadRequest(c, "pet_not_owned_by_client", "Pet não pertence ao cliente informado.")
	case httperr.IsBusiness(err, "service_type_not_found"):
		httperr.BadRequest(c, "service_type_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "service_type_inactive"):
		httperr.BadRequest(c, "service_type_inactive", "Serviço desativado.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsUniqueViolation(err):
		// corrida perdida para o índice único do slot
		httperr.BadRequest(c, "time_conflict", "Já existe um agendamento neste horário.")
	default:
		httperr.Internal(c, "failed_to_save_appointment", "Erro ao salvar agendamento.")
	}
}
