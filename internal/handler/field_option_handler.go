package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
	"fleet-field-api/internal/service"
)

type FieldOptionHandler struct {
	optionCatalog service.OptionCatalog
}

func NewFieldOptionHandler(optionCatalog service.OptionCatalog) *FieldOptionHandler {
	return &FieldOptionHandler{
		optionCatalog: optionCatalog,
	}
}

// GetFieldOptions godoc
// @Summary      필드 옵션 목록 조회
// @Description  select 필드의 옵션 목록을 displayOrder 순으로 조회합니다
// @Tags         field-options
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldOptionResponse} "필드 옵션 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Field ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId}/options [get]
func (h *FieldOptionHandler) GetFieldOptions(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	options, err := h.optionCatalog.ListOptions(c.Request.Context(), fieldID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, options)
}

// CreateFieldOption godoc
// @Summary      필드 옵션 생성
// @Description  select 필드에 새로운 옵션을 추가합니다. value 생략 시 label에서 생성됩니다
// @Tags         field-options
// @Accept       json
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Param        request body dto.CreateFieldOptionRequest true "필드 옵션 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldOptionResponse} "필드 옵션 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "커스텀 필드를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-fields/{fieldId}/options [post]
func (h *FieldOptionHandler) CreateFieldOption(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "fieldId", "field ID")
	if !ok {
		return
	}

	var req dto.CreateFieldOptionRequest
	if !bindJSON(c, &req) {
		return
	}

	option, err := h.optionCatalog.CreateOption(c.Request.Context(), fieldID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, option)
}

// UpdateFieldOption godoc
// @Summary      필드 옵션 수정
// @Description  필드 옵션의 label, value, displayOrder를 수정합니다
// @Tags         field-options
// @Accept       json
// @Produce      json
// @Param        optionId path string true "Option ID (UUID)"
// @Param        request body dto.UpdateFieldOptionRequest true "필드 옵션 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldOptionResponse} "필드 옵션 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "필드 옵션을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-field-options/{optionId} [patch]
func (h *FieldOptionHandler) UpdateFieldOption(c *gin.Context) {
	optionID, ok := parseUUIDParam(c, "optionId", "option ID")
	if !ok {
		return
	}

	var req dto.UpdateFieldOptionRequest
	if !bindJSON(c, &req) {
		return
	}

	option, err := h.optionCatalog.UpdateOption(c.Request.Context(), optionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, option)
}

// DeleteFieldOption godoc
// @Summary      필드 옵션 삭제
// @Description  필드 옵션을 삭제합니다. 이미 저장된 값은 변경되지 않습니다
// @Tags         field-options
// @Produce      json
// @Param        optionId path string true "Option ID (UUID)"
// @Success      200 {object} response.SuccessResponse "필드 옵션 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Option ID"
// @Failure      404 {object} response.ErrorResponse "필드 옵션을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /custom-field-options/{optionId} [delete]
func (h *FieldOptionHandler) DeleteFieldOption(c *gin.Context) {
	optionID, ok := parseUUIDParam(c, "optionId", "option ID")
	if !ok {
		return
	}

	if err := h.optionCatalog.DeleteOption(c.Request.Context(), optionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Field option deleted successfully"})
}
