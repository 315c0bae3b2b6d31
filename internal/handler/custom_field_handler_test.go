package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
)

func newCustomFieldRouter(m *MockFieldRegistry) *gin.Engine {
	h := NewCustomFieldHandler(m)
	router := setupTestRouter()
	router.GET("/api/custom-fields", h.ListCustomFields)
	router.POST("/api/custom-fields", h.CreateCustomField)
	router.GET("/api/custom-fields/:fieldId", h.GetCustomField)
	router.PATCH("/api/custom-fields/:fieldId", h.UpdateCustomField)
	router.DELETE("/api/custom-fields/:fieldId", h.DeleteCustomField)
	return router
}

func TestCustomFieldHandler_ListCustomFields(t *testing.T) {
	var gotType string
	mock := &MockFieldRegistry{
		ListFieldsFunc: func(ctx context.Context, entityType string) ([]*dto.CustomFieldResponse, error) {
			gotType = entityType
			return []*dto.CustomFieldResponse{
				{FieldID: uuid.New(), Name: "Serial", ScalarType: "text", EntityType: "equipment"},
			}, nil
		},
	}

	w := performRequest(newCustomFieldRouter(mock), http.MethodGet, "/api/custom-fields?entityType=equipment", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "equipment", gotType)
	var fields []dto.CustomFieldResponse
	decodeData(t, w, &fields)
	require.Len(t, fields, 1)
	assert.Equal(t, "Serial", fields[0].Name)
}

func TestCustomFieldHandler_CreateCustomField(t *testing.T) {
	fieldID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		mockService    func(*MockFieldRegistry)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "성공: select 필드 생성",
			body: map[string]interface{}{
				"name":       "Fuel",
				"scalarType": "select",
				"entityType": "equipment",
				"options":    []map[string]string{{"label": "Diesel"}},
			},
			mockService: func(m *MockFieldRegistry) {
				m.CreateFieldFunc = func(ctx context.Context, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
					if len(req.Options) != 1 || req.Options[0].Label != "Diesel" {
						return nil, response.NewValidationError("options not bound", "")
					}
					return &dto.CustomFieldResponse{FieldID: fieldID, Name: req.Name, ScalarType: req.ScalarType, EntityType: req.EntityType}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: 잘못된 JSON",
			body:           "{not json",
			mockService:    func(m *MockFieldRegistry) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name:           "실패: name 누락",
			body:           map[string]interface{}{"scalarType": "text", "entityType": "equipment"},
			mockService:    func(m *MockFieldRegistry) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name: "실패: 서비스 검증 오류",
			body: map[string]interface{}{"name": "X", "scalarType": "date", "entityType": "equipment"},
			mockService: func(m *MockFieldRegistry) {
				m.CreateFieldFunc = func(ctx context.Context, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
					return nil, response.NewValidationError("Invalid scalar type: date", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockFieldRegistry{}
			tt.mockService(mock)

			w := performRequest(newCustomFieldRouter(mock), http.MethodPost, "/api/custom-fields", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w))
				return
			}
			var field dto.CustomFieldResponse
			decodeData(t, w, &field)
			assert.Equal(t, fieldID, field.FieldID)
			assert.Equal(t, "Fuel", field.Name)
		})
	}
}

func TestCustomFieldHandler_GetCustomField(t *testing.T) {
	fieldID := uuid.New()

	tests := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
	}{
		{name: "성공", path: "/api/custom-fields/" + fieldID.String(), expectedStatus: http.StatusOK},
		{name: "실패: 잘못된 UUID", path: "/api/custom-fields/not-a-uuid", expectedStatus: http.StatusBadRequest},
		{
			name:           "실패: 존재하지 않는 필드",
			path:           "/api/custom-fields/" + fieldID.String(),
			err:            response.NewNotFoundError("Custom field not found", ""),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockFieldRegistry{
				GetFieldFunc: func(ctx context.Context, id uuid.UUID) (*dto.CustomFieldResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &dto.CustomFieldResponse{FieldID: id}, nil
				},
			}

			w := performRequest(newCustomFieldRouter(mock), http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCustomFieldHandler_UpdateCustomField(t *testing.T) {
	fieldID := uuid.New()
	var gotReq *dto.UpdateCustomFieldRequest
	mock := &MockFieldRegistry{
		UpdateFieldFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
			gotReq = req
			return &dto.CustomFieldResponse{FieldID: id, Name: *req.Name, DisplayOrder: *req.DisplayOrder}, nil
		},
	}

	w := performRequest(newCustomFieldRouter(mock), http.MethodPatch, "/api/custom-fields/"+fieldID.String(),
		map[string]interface{}{"name": "Renamed", "displayOrder": 3})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotReq)
	assert.Nil(t, gotReq.ScalarType)
	var field dto.CustomFieldResponse
	decodeData(t, w, &field)
	assert.Equal(t, "Renamed", field.Name)
	assert.Equal(t, 3, field.DisplayOrder)
}

func TestCustomFieldHandler_DeleteCustomField(t *testing.T) {
	fieldID := uuid.New()
	var deleted uuid.UUID
	mock := &MockFieldRegistry{
		DeleteFieldFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}

	w := performRequest(newCustomFieldRouter(mock), http.MethodDelete, "/api/custom-fields/"+fieldID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fieldID, deleted)
	var body map[string]string
	decodeData(t, w, &body)
	assert.Equal(t, "Custom field deleted successfully", body["message"])

	mock.DeleteFieldFunc = func(ctx context.Context, id uuid.UUID) error {
		return response.NewNotFoundError("Custom field not found", "")
	}
	w = performRequest(newCustomFieldRouter(mock), http.MethodDelete, "/api/custom-fields/"+fieldID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCodeNotFound, errorCode(t, w))
}
