package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
	"fleet-field-api/internal/service"
	"fleet-field-api/internal/util"
)

type ProjectionHandler struct {
	projection service.Projection
}

func NewProjectionHandler(projection service.Projection) *ProjectionHandler {
	return &ProjectionHandler{
		projection: projection,
	}
}

// GetProjection godoc
// @Summary      커스텀 컬럼 프로젝션 조회
// @Description  엔티티 행마다 적용 가능한 커스텀 필드 값을 채운 표 데이터를 반환합니다
// @Tags         projections
// @Produce      json
// @Param        entityType path string true "Entity Type" Enums(equipment, maintenance, site)
// @Param        ids query string false "쉼표로 구분한 Entity ID 목록 (생략 시 전체)"
// @Param        viewId query string false "Saved View ID (UUID)"
// @Param        sortBy query string false "정렬할 Field ID 또는 컬럼 ID (custom_<fieldId>)"
// @Param        order query string false "정렬 방향" Enums(asc, desc)
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectionResponse} "프로젝션 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Saved View를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projections/{entityType} [get]
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	query := &dto.ProjectionQuery{
		EntityIDs: util.QueryList(c, "ids"),
		Order:     c.Query("order"),
	}

	if raw := strings.TrimSpace(c.Query("viewId")); raw != "" {
		viewID, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid view ID")
			return
		}
		query.ViewID = &viewID
	}

	if raw := strings.TrimSpace(c.Query("sortBy")); raw != "" {
		sortBy, err := uuid.Parse(strings.TrimPrefix(raw, service.ColumnPrefix))
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sort column")
			return
		}
		query.SortBy = &sortBy
	}

	result, err := h.projection.Project(c.Request.Context(), c.Param("entityType"), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
