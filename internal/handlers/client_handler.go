package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	"github.com/VidaPetServices01/petshop-manager/internal/cache"
	"github.com/VidaPetServices01/petshop-manager/internal/config"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/httpresp"
	"github.com/VidaPetServices01/petshop-manager/internal/middleware"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/timezone"
	ucClient "github.com/VidaPetServices01/petshop-manager/internal/usecase/client"
	"github.com/VidaPetServices01/petshop-manager/internal/validators"
)

type ClientHandler struct {
	db       *gorm.DB
	config   *config.Config
	createUC *ucClient.CreateClient
	updateUC *ucClient.UpdateClient
	checker  ucClient.DuplicateChecker
	cache    *cache.StatsCache
	audit    *audit.Dispatcher
}

func NewClientHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	checker ucClient.DuplicateChecker,
	statsCache *cache.StatsCache,
	dispatcher *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{
		db:       db,
		config:   cfg,
		createUC: createUC,
		updateUC: updateUC,
		checker:  checker,
		cache:    statsCache,
		audit:    dispatcher,
	}
}

// --------- Requests ---------

type ClientPetRequest struct {
	Name         string  `json:"name" binding:"required"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Observations string  `json:"observations"`
}

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	CPF     string `json:"cpf" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	CEP     string `json:"cep"`

	Pets []ClientPetRequest `json:"pets"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	CPF     *string `json:"cpf,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	CEP     *string `json:"cep,omitempty"`
}

type CheckDuplicateFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=name cpf phone"`
	Value string `json:"value"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Preload("Pets").
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.Preload("Pets").First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsCPFValid(req.CPF) {
		httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
		return
	}

	in := ucClient.CreateClientInput{
		Name:    req.Name,
		CPF:     req.CPF,
		Phone:   req.Phone,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		CEP:     req.CEP,
	}
	for _, p := range req.Pets {
		in.Pets = append(in.Pets, ucClient.PetInput{
			Name:         p.Name,
			Species:      p.Species,
			Breed:        p.Breed,
			Age:          p.Age,
			Weight:       p.Weight,
			Observations: p.Observations,
		})
	}

	created, err := h.createUC.Execute(c.Request.Context(), in, actorID)
	if err != nil {
		writeClientError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.CPF != nil && !validators.IsCPFValid(*req.CPF) {
		httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), &client, ucClient.UpdateClientInput{
		Name:    req.Name,
		CPF:     req.CPF,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		CEP:     req.CEP,
	}, actorID)
	if err != nil {
		writeClientError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// Delete remove o cliente; pets e agendamentos caem em cascata
// pelas foreign keys.
func (h *ClientHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Message(c, "Cliente excluído.")
}

// ======================================================
// SEARCH / DUPLICATE CHECK
// ======================================================

func (h *ClientHandler) Search(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	q := h.db.Preload("Pets")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR cpf_norm LIKE ? OR phone_norm LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_search_clients", "Erro na busca de clientes.")
		return
	}

	httpresp.List(c, clients)
}

// CheckDuplicateField atende a validação on-blur do front:
// um campo por vez, mesmas regras de normalização do cadastro.
func (h *ClientHandler) CheckDuplicateField(c *gin.Context) {
	var req CheckDuplicateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	found, err := h.checker.FindByField(c.Request.Context(), req.Field, req.Value)
	if err != nil {
		httperr.Internal(c, "failed_to_check_duplicate", "Erro na verificação de duplicado.")
		return
	}

	if found == nil {
		httpresp.OK(c, gin.H{"duplicate": false})
		return
	}

	httpresp.OK(c, gin.H{"duplicate": true, "client": found})
}

// ======================================================
// STATS
// ======================================================

type ClientStats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	WithPets  int64 `json:"with_pets"`
	ThisMonth int64 `json:"this_month"`
}

func (h *ClientHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats ClientStats
	if h.cache.Get(ctx, "stats:clients", &stats) {
		httpresp.OK(c, stats)
		return
	}

	// limites como instantes no fuso da loja; comparação de
	// timestamptz independe do fuso da sessão do banco
	dayStart := timezone.DayStart(h.config.Timezone)
	monthStart := timezone.MonthStart(h.config.Timezone)

	h.db.Model(&models.Client{}).Count(&stats.Total)
	h.db.Model(&models.Client{}).
		Where("created_at >= ?", dayStart).
		Count(&stats.Today)
	h.db.Model(&models.Client{}).
		Where("created_at >= ?", monthStart).
		Count(&stats.ThisMonth)
	h.db.Model(&models.Client{}).
		Where("EXISTS (SELECT 1 FROM pets WHERE pets.client_id = clients.id)").
		Count(&stats.WithPets)

	h.cache.Set(ctx, "stats:clients", stats)

	httpresp.OK(c, stats)
}

// --------- Error mapping ---------

func writeClientError(c *gin.Context, err error) {
	if de, ok := ucClient.AsDuplicate(err); ok {
		httperr.WriteWith(c, http.StatusBadRequest, "duplicate_client",
			"Já existe um cliente com este "+duplicateFieldLabel(de.Match.Field)+".",
			de.Match)
		return
	}

	// corrida perdida para o índice único: mesmo contrato do pré-check
	if httperr.IsUniqueViolation(err) {
		httperr.BadRequest(c, "duplicate_client", "Já existe um cliente com estes dados.")
		return
	}

	httperr.Internal(c, "failed_to_save_client", "Erro ao salvar cliente.")
}

func duplicateFieldLabel(field string) string {
	switch field {
	case "cpf":
		return "CPF"
	case "phone":
		return "telefone"
	default:
		return "nome"
	}
}
