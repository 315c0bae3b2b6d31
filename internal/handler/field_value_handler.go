package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
	"fleet-field-api/internal/service"
)

type FieldValueHandler struct {
	valueStore      service.ValueStore
	editCoordinator service.EditCoordinator
}

func NewFieldValueHandler(valueStore service.ValueStore, editCoordinator service.EditCoordinator) *FieldValueHandler {
	return &FieldValueHandler{
		valueStore:      valueStore,
		editCoordinator: editCoordinator,
	}
}

// GetFieldValues godoc
// @Summary      필드별 값 목록 조회
// @Description  특정 커스텀 필드에 저장된 모든 엔티티의 값을 조회합니다
// @Tags         field-values
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldValueResponse} "필드 값 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Field ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId}/values [get]
func (h *FieldValueHandler) GetFieldValues(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	values, err := h.valueStore.GetValuesForField(c.Request.Context(), fieldID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, values)
}

// GetEntityValues godoc
// @Summary      엔티티별 값 목록 조회
// @Description  장비/정비/사이트 한 건에 저장된 모든 커스텀 필드 값을 조회합니다
// @Tags         field-values
// @Produce      json
// @Param        entityId path string true "Entity ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldValueResponse} "엔티티 값 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /entities/{entityId}/field-values [get]
func (h *FieldValueHandler) GetEntityValues(c *gin.Context) {
	values, err := h.valueStore.GetValuesForEntity(c.Request.Context(), c.Param("entityId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, values)
}

// SetFieldValue godoc
// @Summary      필드 값 저장
// @Description  (fieldId, entityId) 셀 값을 생성하거나 갱신합니다
// @Tags         field-values
// @Accept       json
// @Produce      json
// @Param        request body dto.SetFieldValueRequest true "필드 값 저장 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldValueResponse} "필드 값 저장 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "필드 또는 엔티티를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /field-values [post]
func (h *FieldValueHandler) SetFieldValue(c *gin.Context) {
	var req dto.SetFieldValueRequest
	if !bindJSON(c, &req) {
		return
	}

	value, err := h.valueStore.SetValue(c.Request.Context(), req.FieldID, req.EntityID, req.ScalarType, req.Value)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, value)
}

// DeleteFieldValue godoc
// @Summary      필드 값 삭제
// @Description  (fieldId, entityId) 셀 값을 삭제합니다. 값이 없어도 성공합니다
// @Tags         field-values
// @Accept       json
// @Produce      json
// @Param        fieldId query string false "Field ID (UUID), body 대신 사용 가능"
// @Param        entityId query string false "Entity ID, body 대신 사용 가능"
// @Param        request body dto.DeleteFieldValueRequest false "필드 값 삭제 요청"
// @Success      200 {object} response.SuccessResponse "필드 값 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /field-values [delete]
func (h *FieldValueHandler) DeleteFieldValue(c *gin.Context) {
	var req dto.DeleteFieldValueRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req) {
			return
		}
	} else if err := c.ShouldBindQuery(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	fieldID, err := uuid.Parse(strings.TrimSpace(req.FieldID))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid field ID")
		return
	}
	if strings.TrimSpace(req.EntityID) == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "entityId is required")
		return
	}

	if err := h.valueStore.DeleteValue(c.Request.Context(), fieldID, req.EntityID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Field value deleted successfully"})
}

// SubmitCellEdit godoc
// @Summary      셀 인라인 편집
// @Description  원시 입력을 필드 타입에 맞게 변환해 저장합니다. 빈 값과 select의 "none"은 삭제로 처리됩니다
// @Tags         field-values
// @Accept       json
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Param        entityId path string true "Entity ID"
// @Param        request body dto.CellEditRequest true "셀 편집 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CellEditResponse} "셀 편집 성공"
// @Failure      400 {object} response.ErrorResponse "변환할 수 없는 값"
// @Failure      404 {object} response.ErrorResponse "필드 또는 엔티티를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId}/cells/{entityId} [put]
func (h *FieldValueHandler) SubmitCellEdit(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	var req dto.CellEditRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.editCoordinator.SubmitCellEdit(c.Request.Context(), fieldID, c.Param("entityId"), req.Value)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
