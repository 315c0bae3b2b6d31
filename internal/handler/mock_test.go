package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
)

// MockFieldRegistry is a mock implementation of FieldRegistry
type MockFieldRegistry struct {
	ListFieldsFunc  func(ctx context.Context, entityType string) ([]*dto.CustomFieldResponse, error)
	GetFieldFunc    func(ctx context.Context, fieldID uuid.UUID) (*dto.CustomFieldResponse, error)
	CreateFieldFunc func(ctx context.Context, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error)
	UpdateFieldFunc func(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error)
	DeleteFieldFunc func(ctx context.Context, fieldID uuid.UUID) error
}

func (m *MockFieldRegistry) ListFields(ctx context.Context, entityType string) ([]*dto.CustomFieldResponse, error) {
	if m.ListFieldsFunc != nil {
		return m.ListFieldsFunc(ctx, entityType)
	}
	return nil, nil
}

func (m *MockFieldRegistry) GetField(ctx context.Context, fieldID uuid.UUID) (*dto.CustomFieldResponse, error) {
	if m.GetFieldFunc != nil {
		return m.GetFieldFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *MockFieldRegistry) CreateField(ctx context.Context, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	if m.CreateFieldFunc != nil {
		return m.CreateFieldFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockFieldRegistry) UpdateField(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	if m.UpdateFieldFunc != nil {
		return m.UpdateFieldFunc(ctx, fieldID, req)
	}
	return nil, nil
}

func (m *MockFieldRegistry) DeleteField(ctx context.Context, fieldID uuid.UUID) error {
	if m.DeleteFieldFunc != nil {
		return m.DeleteFieldFunc(ctx, fieldID)
	}
	return nil
}

// MockOptionCatalog is a mock implementation of OptionCatalog
type MockOptionCatalog struct {
	ListOptionsFunc  func(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldOptionResponse, error)
	CreateOptionFunc func(ctx context.Context, fieldID uuid.UUID, req *dto.CreateFieldOptionRequest) (*dto.FieldOptionResponse, error)
	UpdateOptionFunc func(ctx context.Context, optionID uuid.UUID, req *dto.UpdateFieldOptionRequest) (*dto.FieldOptionResponse, error)
	DeleteOptionFunc func(ctx context.Context, optionID uuid.UUID) error
}

func (m *MockOptionCatalog) ListOptions(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldOptionResponse, error) {
	if m.ListOptionsFunc != nil {
		return m.ListOptionsFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *MockOptionCatalog) CreateOption(ctx context.Context, fieldID uuid.UUID, req *dto.CreateFieldOptionRequest) (*dto.FieldOptionResponse, error) {
	if m.CreateOptionFunc != nil {
		return m.CreateOptionFunc(ctx, fieldID, req)
	}
	return nil, nil
}

func (m *MockOptionCatalog) UpdateOption(ctx context.Context, optionID uuid.UUID, req *dto.UpdateFieldOptionRequest) (*dto.FieldOptionResponse, error) {
	if m.UpdateOptionFunc != nil {
		return m.UpdateOptionFunc(ctx, optionID, req)
	}
	return nil, nil
}

func (m *MockOptionCatalog) DeleteOption(ctx context.Context, optionID uuid.UUID) error {
	if m.DeleteOptionFunc != nil {
		return m.DeleteOptionFunc(ctx, optionID)
	}
	return nil
}

// MockValueStore is a mock implementation of ValueStore
type MockValueStore struct {
	GetValuesForEntityFunc func(ctx context.Context, entityID string) ([]*dto.FieldValueResponse, error)
	GetValuesForFieldFunc  func(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldValueResponse, error)
	SetValueFunc           func(ctx context.Context, fieldID uuid.UUID, entityID string, scalarType string, raw interface{}) (*dto.FieldValueResponse, error)
	DeleteValueFunc        func(ctx context.Context, fieldID uuid.UUID, entityID string) error
}

func (m *MockValueStore) GetValuesForEntity(ctx context.Context, entityID string) ([]*dto.FieldValueResponse, error) {
	if m.GetValuesForEntityFunc != nil {
		return m.GetValuesForEntityFunc(ctx, entityID)
	}
	return nil, nil
}

func (m *MockValueStore) GetValuesForField(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldValueResponse, error) {
	if m.GetValuesForFieldFunc != nil {
		return m.GetValuesForFieldFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *MockValueStore) SetValue(ctx context.Context, fieldID uuid.UUID, entityID string, scalarType string, raw interface{}) (*dto.FieldValueResponse, error) {
	if m.SetValueFunc != nil {
		return m.SetValueFunc(ctx, fieldID, entityID, scalarType, raw)
	}
	return nil, nil
}

func (m *MockValueStore) DeleteValue(ctx context.Context, fieldID uuid.UUID, entityID string) error {
	if m.DeleteValueFunc != nil {
		return m.DeleteValueFunc(ctx, fieldID, entityID)
	}
	return nil
}

// MockEditCoordinator is a mock implementation of EditCoordinator
type MockEditCoordinator struct {
	SubmitCellEditFunc func(ctx context.Context, fieldID uuid.UUID, entityID string, raw interface{}) (*dto.CellEditResponse, error)
}

func (m *MockEditCoordinator) SubmitCellEdit(ctx context.Context, fieldID uuid.UUID, entityID string, raw interface{}) (*dto.CellEditResponse, error) {
	if m.SubmitCellEditFunc != nil {
		return m.SubmitCellEditFunc(ctx, fieldID, entityID, raw)
	}
	return nil, nil
}

// MockProjection is a mock implementation of Projection
type MockProjection struct {
	ProjectFunc func(ctx context.Context, entityType string, query *dto.ProjectionQuery) (*dto.ProjectionResponse, error)
}

func (m *MockProjection) Project(ctx context.Context, entityType string, query *dto.ProjectionQuery) (*dto.ProjectionResponse, error) {
	if m.ProjectFunc != nil {
		return m.ProjectFunc(ctx, entityType, query)
	}
	return &dto.ProjectionResponse{EntityType: entityType}, nil
}

// MockEntityService is a mock implementation of EntityService
type MockEntityService struct {
	UpsertEntityFunc func(ctx context.Context, entityID string, req *dto.UpsertEntityRequest) (*dto.EntityResponse, error)
	ListEntitiesFunc func(ctx context.Context, entityType string) ([]*dto.EntityResponse, error)
	DeleteEntityFunc func(ctx context.Context, entityID string) error
}

func (m *MockEntityService) UpsertEntity(ctx context.Context, entityID string, req *dto.UpsertEntityRequest) (*dto.EntityResponse, error) {
	if m.UpsertEntityFunc != nil {
		return m.UpsertEntityFunc(ctx, entityID, req)
	}
	return nil, nil
}

func (m *MockEntityService) ListEntities(ctx context.Context, entityType string) ([]*dto.EntityResponse, error) {
	if m.ListEntitiesFunc != nil {
		return m.ListEntitiesFunc(ctx, entityType)
	}
	return nil, nil
}

func (m *MockEntityService) DeleteEntity(ctx context.Context, entityID string) error {
	if m.DeleteEntityFunc != nil {
		return m.DeleteEntityFunc(ctx, entityID)
	}
	return nil
}

// MockSavedViewService is a mock implementation of SavedViewService
type MockSavedViewService struct {
	ListViewsFunc  func(ctx context.Context, entityType string) ([]*dto.SavedViewResponse, error)
	GetViewFunc    func(ctx context.Context, viewID uuid.UUID) (*dto.SavedViewResponse, error)
	CreateViewFunc func(ctx context.Context, req *dto.CreateSavedViewRequest, createdBy string) (*dto.SavedViewResponse, error)
	UpdateViewFunc func(ctx context.Context, viewID uuid.UUID, req *dto.UpdateSavedViewRequest) (*dto.SavedViewResponse, error)
	DeleteViewFunc func(ctx context.Context, viewID uuid.UUID) error
}

func (m *MockSavedViewService) ListViews(ctx context.Context, entityType string) ([]*dto.SavedViewResponse, error) {
	if m.ListViewsFunc != nil {
		return m.ListViewsFunc(ctx, entityType)
	}
	return nil, nil
}

func (m *MockSavedViewService) GetView(ctx context.Context, viewID uuid.UUID) (*dto.SavedViewResponse, error) {
	if m.GetViewFunc != nil {
		return m.GetViewFunc(ctx, viewID)
	}
	return nil, nil
}

func (m *MockSavedViewService) CreateView(ctx context.Context, req *dto.CreateSavedViewRequest, createdBy string) (*dto.SavedViewResponse, error) {
	if m.CreateViewFunc != nil {
		return m.CreateViewFunc(ctx, req, createdBy)
	}
	return nil, nil
}

func (m *MockSavedViewService) UpdateView(ctx context.Context, viewID uuid.UUID, req *dto.UpdateSavedViewRequest) (*dto.SavedViewResponse, error) {
	if m.UpdateViewFunc != nil {
		return m.UpdateViewFunc(ctx, viewID, req)
	}
	return nil, nil
}

func (m *MockSavedViewService) DeleteView(ctx context.Context, viewID uuid.UUID) error {
	if m.DeleteViewFunc != nil {
		return m.DeleteViewFunc(ctx, viewID)
	}
	return nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func performRequest(router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data member of a success envelope into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp response.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success envelope, got %s", w.Body.String())
	}
	dataBytes, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(dataBytes, out); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
}

// errorCode extracts error.code from an error envelope
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Success bool               `json:"success"`
		Error   response.ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Success {
		t.Fatalf("Expected error envelope, got %s", w.Body.String())
	}
	return resp.Error.Code
}
