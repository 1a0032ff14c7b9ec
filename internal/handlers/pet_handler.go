package handlers

import (
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	"github.com/VidaPetServices01/petshop-manager/internal/cache"
	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/httpresp"
	"github.com/VidaPetServices01/petshop-manager/internal/middleware"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/storage"
	ucClient "github.com/VidaPetServices01/petshop-manager/internal/usecase/client"
)

const maxPhotoUploadBytes = 8 << 20

type PetHandler struct {
	db      *gorm.DB
	cache   *cache.StatsCache
	photos  *storage.PhotoStorage
	checker ucClient.PetNameChecker
	audit   *audit.Dispatcher
}

func NewPetHandler(
	db *gorm.DB,
	statsCache *cache.StatsCache,
	photos *storage.PhotoStorage,
	checker ucClient.PetNameChecker,
	dispatcher *audit.Dispatcher,
) *PetHandler {
	return &PetHandler{
		db:      db,
		cache:   statsCache,
		photos:  photos,
		checker: checker,
		audit:   dispatcher,
	}
}

// --------- Requests ---------

type CreatePetRequest struct {
	ClientID     uint    `json:"client_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Observations string  `json:"observations"`
}

type UpdatePetRequest struct {
	Name         *string  `json:"name,omitempty"`
	Species      *string  `json:"species,omitempty"`
	Breed        *string  `json:"breed,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
	Observations *string  `json:"observations,omitempty"`
}

// ======================================================
// CRUD
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.
		Preload("Client").
		Order("created_at DESC").
		Find(&pets).Error; err != nil {

		httperr.Internal(c, "failed_to_list_pets", "Erro ao listar pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.Preload("Client").First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	pet := models.Pet{
		ClientID:     req.ClientID,
		Name:         req.Name,
		Species:      strings.ToLower(req.Species),
		Breed:        req.Breed,
		Age:          req.Age,
		Weight:       req.Weight,
		Observations: req.Observations,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Erro ao criar pet.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "pet_created",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	httpresp.Created(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = strings.ToLower(*req.Species)
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Weight != nil {
		pet.Weight = *req.Weight
	}
	if req.Observations != nil {
		pet.Observations = *req.Observations
	}

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Erro ao atualizar pet.")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	if err := h.db.Delete(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Erro ao excluir pet.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "pet_deleted",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	httpresp.Message(c, "Pet excluído.")
}

// ======================================================
// QUERIES
// ======================================================

func (h *PetHandler) ListByClient(c *gin.Context) {
	clientID := c.Param("clientId")

	var pets []models.Pet
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&pets).Error; err != nil {

		httperr.Internal(c, "failed_to_list_pets", "Erro ao listar pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Search(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	q := h.db.Preload("Client")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(species) LIKE ? OR LOWER(breed) LIKE ?",
			like, like, like,
		)
	}

	var pets []models.Pet
	if err := q.Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_search_pets", "Erro na busca de pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Species(c *gin.Context) {
	var species []string
	if err := h.db.Model(&models.Pet{}).
		Distinct("species").
		Where("species <> ''").
		Order("species ASC").
		Pluck("species", &species).Error; err != nil {

		httperr.Internal(c, "failed_to_list_species", "Erro ao listar espécies.")
		return
	}

	httpresp.OK(c, species)
}

func (h *PetHandler) Breeds(c *gin.Context) {
	q := h.db.Model(&models.Pet{}).
		Distinct("breed").
		Where("breed <> ''")

	if species := strings.ToLower(strings.TrimSpace(c.Query("species"))); species != "" {
		q = q.Where("species = ?", species)
	}

	var breeds []string
	if err := q.Order("breed ASC").Pluck("breed", &breeds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_breeds", "Erro ao listar raças.")
		return
	}

	httpresp.OK(c, breeds)
}

// CheckDuplicateName avisa sobre provável pet repetido do mesmo
// tutor (comparação sem caixa). Só aviso: nunca bloqueia o cadastro.
func (h *PetHandler) CheckDuplicateName(c *gin.Context) {
	clientIDStr := c.Query("client_id")
	name := strings.TrimSpace(c.Query("name"))

	clientID, err := strconv.ParseUint(clientIDStr, 10, 32)
	if err != nil || clientID == 0 || name == "" {
		httperr.BadRequest(c, "invalid_request", "client_id e name são obrigatórios.")
		return
	}

	pet, err := h.checker.FindPetByName(c.Request.Context(), uint(clientID), name)
	if err != nil {
		httperr.Internal(c, "failed_to_check_duplicate", "Erro na verificação de nome.")
		return
	}

	if pet == nil {
		httpresp.OK(c, gin.H{"duplicate": false})
		return
	}

	httpresp.OK(c, gin.H{"duplicate": true, "pet": pet})
}

// ======================================================
// STATS
// ======================================================

type PetStats struct {
	Total     int64            `json:"total"`
	BySpecies map[string]int64 `json:"by_species"`
}

func (h *PetHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats PetStats
	if h.cache.Get(ctx, "stats:pets", &stats) {
		httpresp.OK(c, stats)
		return
	}

	stats.BySpecies = map[string]int64{}

	h.db.Model(&models.Pet{}).Count(&stats.Total)

	type row struct {
		Species string
		Count   int64
	}
	var rows []row
	h.db.Model(&models.Pet{}).
		Select("species, COUNT(*) as count").
		Where("species <> ''").
		Group("species").
		Scan(&rows)

	for _, r := range rows {
		stats.BySpecies[r.Species] = r.Count
	}

	h.cache.Set(ctx, "stats:pets", stats)

	httpresp.OK(c, stats)
}

// ======================================================
// PHOTO (webp → S3)
// ======================================================

func (h *PetHandler) UploadPhoto(c *gin.Context) {
	if !h.photos.Enabled() {
		httperr.Write(c, 503, "photo_storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	id := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoUploadBytes+1))
	if err != nil || len(raw) > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima do limite de 8MB.")
		return
	}

	url, err := h.photos.UploadPetPhoto(c.Request.Context(), pet.ID, raw)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar foto.")
		return
	}

	pet.PhotoURL = url
	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Erro ao salvar foto.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}
