package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
	"fleet-field-api/internal/service"
	"fleet-field-api/internal/util"
)

type SavedViewHandler struct {
	viewService service.SavedViewService
}

func NewSavedViewHandler(viewService service.SavedViewService) *SavedViewHandler {
	return &SavedViewHandler{
		viewService: viewService,
	}
}

// ListSavedViews godoc
// @Summary      저장된 뷰 목록 조회
// @Tags         saved-views
// @Produce      json
// @Param        entityType query string false "Entity Type" Enums(equipment, maintenance, site)
// @Success      200 {object} response.SuccessResponse{data=[]dto.SavedViewResponse} "뷰 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 엔티티 타입"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /saved-views [get]
func (h *SavedViewHandler) ListSavedViews(c *gin.Context) {
	views, err := h.viewService.ListViews(c.Request.Context(), c.Query("entityType"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, views)
}

// GetSavedView godoc
// @Summary      저장된 뷰 조회
// @Tags         saved-views
// @Produce      json
// @Param        viewId path string true "View ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SavedViewResponse} "뷰 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 View ID"
// @Failure      404 {object} response.ErrorResponse "뷰를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /saved-views/{viewId} [get]
func (h *SavedViewHandler) GetSavedView(c *gin.Context) {
	viewID, ok := parseUUIDParam(c, "viewId", "view ID")
	if !ok {
		return
	}

	view, err := h.viewService.GetView(c.Request.Context(), viewID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, view)
}

// CreateSavedView godoc
// @Summary      뷰 저장
// @Description  표의 필터, 정렬, 표시 컬럼 구성을 저장합니다
// @Tags         saved-views
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSavedViewRequest true "뷰 저장 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.SavedViewResponse} "뷰 저장 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /saved-views [post]
func (h *SavedViewHandler) CreateSavedView(c *gin.Context) {
	var req dto.CreateSavedViewRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.viewService.CreateView(c.Request.Context(), &req, util.UserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, view)
}

// UpdateSavedView godoc
// @Summary      저장된 뷰 수정
// @Tags         saved-views
// @Accept       json
// @Produce      json
// @Param        viewId path string true "View ID (UUID)"
// @Param        request body dto.UpdateSavedViewRequest true "뷰 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.SavedViewResponse} "뷰 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "뷰를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /saved-views/{viewId} [patch]
func (h *SavedViewHandler) UpdateSavedView(c *gin.Context) {
	viewID, ok := parseUUIDParam(c, "viewId", "view ID")
	if !ok {
		return
	}

	var req dto.UpdateSavedViewRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.viewService.UpdateView(c.Request.Context(), viewID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, view)
}

// DeleteSavedView godoc
// @Summary      저장된 뷰 삭제
// @Tags         saved-views
// @Produce      json
// @Param        viewId path string true "View ID (UUID)"
// @Success      200 {object} response.SuccessResponse "뷰 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 View ID"
// @Failure      404 {object} response.ErrorResponse "뷰를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /saved-views/{viewId} [delete]
func (h *SavedViewHandler) DeleteSavedView(c *gin.Context) {
	viewID, ok := parseUUIDParam(c, "viewId", "view ID")
	if !ok {
		return
	}

	if err := h.viewService.DeleteView(c.Request.Context(), viewID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Saved view deleted successfully"})
}
