package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
	"fleet-field-api/internal/service"
)

type CustomFieldHandler struct {
	fieldRegistry service.FieldRegistry
}

func NewCustomFieldHandler(fieldRegistry service.FieldRegistry) *CustomFieldHandler {
	return &CustomFieldHandler{
		fieldRegistry: fieldRegistry,
	}
}

// ListCustomFields godoc
// @Summary      커스텀 필드 목록 조회
// @Description  엔티티 타입별 커스텀 필드 정의를 displayOrder 순으로 조회합니다
// @Tags         custom-fields
// @Produce      json
// @Param        entityType query string false "Entity Type" Enums(equipment, maintenance, site)
// @Success      200 {object} response.SuccessResponse{data=[]dto.CustomFieldResponse} "커스텀 필드 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 엔티티 타입"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields [get]
func (h *CustomFieldHandler) ListCustomFields(c *gin.Context) {
	fields, err := h.fieldRegistry.ListFields(c.Request.Context(), c.Query("entityType"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, fields)
}

// GetCustomField godoc
// @Summary      커스텀 필드 조회
// @Description  커스텀 필드 정의와 옵션을 조회합니다
// @Tags         custom-fields
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CustomFieldResponse} "커스텀 필드 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Field ID"
// @Failure      404 {object} response.ErrorResponse "커스텀 필드를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId} [get]
func (h *CustomFieldHandler) GetCustomField(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	field, err := h.fieldRegistry.GetField(c.Request.Context(), fieldID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, field)
}

// CreateCustomField godoc
// @Summary      커스텀 필드 생성
// @Description  새로운 커스텀 필드를 생성합니다. select 타입은 옵션을 함께 생성할 수 있습니다
// @Tags         custom-fields
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCustomFieldRequest true "커스텀 필드 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CustomFieldResponse} "커스텀 필드 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields [post]
func (h *CustomFieldHandler) CreateCustomField(c *gin.Context) {
	var req dto.CreateCustomFieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, err := h.fieldRegistry.CreateField(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, field)
}

// UpdateCustomField godoc
// @Summary      커스텀 필드 수정
// @Description  이름, 순서, 적용 장비 타입, 메타데이터를 부분 수정합니다
// @Tags         custom-fields
// @Accept       json
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Param        request body dto.UpdateCustomFieldRequest true "커스텀 필드 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CustomFieldResponse} "커스텀 필드 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "커스텀 필드를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId} [patch]
func (h *CustomFieldHandler) UpdateCustomField(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	var req dto.UpdateCustomFieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, err := h.fieldRegistry.UpdateField(c.Request.Context(), fieldID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, field)
}

// DeleteCustomField godoc
// @Summary      커스텀 필드 삭제
// @Description  커스텀 필드와 해당 필드의 옵션, 값을 함께 삭제합니다
// @Tags         custom-fields
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse "커스텀 필드 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Field ID"
// @Failure      404 {object} response.ErrorResponse "커스텀 필드를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId} [delete]
func (h *CustomFieldHandler) DeleteCustomField(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	if err := h.fieldRegistry.DeleteField(c.Request.Context(), fieldID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Custom field deleted successfully"})
}
