package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPetServices01/petshop-manager/internal/httperr"
	"github.com/VidaPetServices01/petshop-manager/internal/httpresp"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
)

type ServiceTypeHandler struct {
	db *gorm.DB
}

func NewServiceTypeHandler(db *gorm.DB) *ServiceTypeHandler {
	return &ServiceTypeHandler{db: db}
}

// --------- Requests ---------

type CreateServiceTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required,min=0"`
}

type UpdateServiceTypeRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceTypeHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")

	if activeStr := strings.TrimSpace(c.Query("active")); activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	var types []models.ServiceType
	if err := q.Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_service_types", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, types)
}

func (h *ServiceTypeHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var st models.ServiceType
	if err := h.db.First(&st, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_type_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service_type", "Erro ao buscar serviço.")
		return
	}

	httpresp.OK(c, st)
}

func (h *ServiceTypeHandler) GetByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var st models.ServiceType
	if err := h.db.
		Where("LOWER(name) = LOWER(?)", name).
		First(&st).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_type_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service_type", "Erro ao buscar serviço.")
		return
	}

	httpresp.OK(c, st)
}

func (h *ServiceTypeHandler) Search(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	q := h.db.Order("name ASC")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var types []models.ServiceType
	if err := q.Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_search_service_types", "Erro na busca de serviços.")
		return
	}

	httpresp.List(c, types)
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.ServiceType{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "service_type_already_exists", "Já existe um serviço com este nome.")
		return
	}

	st := models.ServiceType{
		Name:        name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Active:      true,
	}

	if err := h.db.Create(&st).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "service_type_already_exists", "Já existe um serviço com este nome.")
			return
		}
		httperr.Internal(c, "failed_to_create_service_type", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, st)
}

func (h *ServiceTypeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var st models.ServiceType
	if err := h.db.First(&st, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_type_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service_type", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var count int64
		h.db.Model(&models.ServiceType{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", name, st.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "service_type_already_exists", "Já existe um serviço com este nome.")
			return
		}
		st.Name = name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}
	if req.BasePrice != nil {
		st.BasePrice = *req.BasePrice
	}
	if req.Active != nil {
		st.Active = *req.Active
	}

	if err := h.db.Save(&st).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service_type", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, st)
}

func (h *ServiceTypeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var st models.ServiceType
	if err := h.db.First(&st, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_type_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service_type", "Erro ao buscar serviço.")
		return
	}

	if err := h.db.Delete(&st).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service_type", "Erro ao excluir serviço.")
		return
	}

	httpresp.Message(c, "Serviço excluído.")
}
