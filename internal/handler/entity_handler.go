package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
	"fleet-field-api/internal/service"
)

type EntityHandler struct {
	entityService service.EntityService
}

func NewEntityHandler(entityService service.EntityService) *EntityHandler {
	return &EntityHandler{
		entityService: entityService,
	}
}

// ListEntities godoc
// @Summary      엔티티 목록 조회
// @Description  커스텀 필드 값을 가질 수 있는 장비/정비/사이트 목록을 조회합니다
// @Tags         entities
// @Produce      json
// @Param        entityType query string false "Entity Type" Enums(equipment, maintenance, site)
// @Success      200 {object} response.SuccessResponse{data=[]dto.EntityResponse} "엔티티 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 엔티티 타입"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /entities [get]
func (h *EntityHandler) ListEntities(c *gin.Context) {
	entities, err := h.entityService.ListEntities(c.Request.Context(), c.Query("entityType"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entities)
}

// UpsertEntity godoc
// @Summary      엔티티 등록/수정
// @Description  엔티티를 등록하거나 kind, name을 갱신합니다. 기존 엔티티의 타입은 변경할 수 없습니다
// @Tags         entities
// @Accept       json
// @Produce      json
// @Param        entityId path string true "Entity ID"
// @Param        request body dto.UpsertEntityRequest true "엔티티 등록 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.EntityResponse} "엔티티 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /entities/{entityId} [put]
func (h *EntityHandler) UpsertEntity(c *gin.Context) {
	var req dto.UpsertEntityRequest
	if !bindJSON(c, &req) {
		return
	}

	entity, err := h.entityService.UpsertEntity(c.Request.Context(), c.Param("entityId"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entity)
}

// DeleteEntity godoc
// @Summary      엔티티 삭제
// @Description  엔티티와 해당 엔티티의 모든 커스텀 필드 값을 삭제합니다
// @Tags         entities
// @Produce      json
// @Param        entityId path string true "Entity ID"
// @Success      200 {object} response.SuccessResponse "엔티티 삭제 성공"
// @Failure      404 {object} response.ErrorResponse "엔티티를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /entities/{entityId} [delete]
func (h *EntityHandler) DeleteEntity(c *gin.Context) {
	if err := h.entityService.DeleteEntity(c.Request.Context(), c.Param("entityId")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Entity deleted successfully"})
}
