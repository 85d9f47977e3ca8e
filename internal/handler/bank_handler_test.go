package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quickquid/quickquid-api/internal/models"
)

type mockBranchRegistrar struct {
	registerFn func(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error)
}

func (m *mockBranchRegistrar) RegisterBranch(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, bankName, branchName, bankAddress)
	}
	return nil, fmt.Errorf("not configured")
}

type mockBranchDirectory struct {
	listFn func(ctx context.Context) ([]models.BankBranch, error)
}

func (m *mockBranchDirectory) ListBranches(ctx context.Context) ([]models.BankBranch, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not configured")
}

func newBankTestRouter(registrar BranchRegistrar, directory BranchDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBankHandler(registrar, directory)
	r.POST("/bank", h.CreateBranch)
	r.GET("/bank/all", h.ListBranches)
	return r
}

func TestCreateBranch(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		registerFn     func(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error)
		expectedStatus int
	}{
		{
			name: "created",
			body: map[string]any{"bankName": "QuickQuid", "branchName": "Central", "bankAddress": "1 High St"},
			registerFn: func(_ context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error) {
				return &models.BankBranch{ID: 1, BankName: bankName, BranchName: branchName, BankAddress: bankAddress}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "created - address is optional",
			body:           map[string]any{"bankName": "QuickQuid", "branchName": "Central"},
			registerFn:     func(_ context.Context, _, _, _ string) (*models.BankBranch, error) { return &models.BankBranch{ID: 2}, nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing bank name",
			body:           map[string]any{"branchName": "Central"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "internal error - storage failure",
			body: map[string]any{"bankName": "QuickQuid", "branchName": "Central"},
			registerFn: func(_ context.Context, _, _, _ string) (*models.BankBranch, error) {
				return nil, fmt.Errorf("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBankTestRouter(&mockBranchRegistrar{registerFn: tt.registerFn}, &mockBranchDirectory{})
			w := doRequest(router, http.MethodPost, "/bank", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestListBranches(t *testing.T) {
	tests := []struct {
		name           string
		listFn         func(ctx context.Context) ([]models.BankBranch, error)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "ok",
			listFn: func(context.Context) ([]models.BankBranch, error) {
				return []models.BankBranch{{ID: 1, BankName: "QuickQuid", BranchName: "Central"}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "ok - no branches yields empty list",
			listFn:         func(context.Context) ([]models.BankBranch, error) { return nil, nil },
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "internal error - storage failure",
			listFn:         func(context.Context) ([]models.BankBranch, error) { return nil, fmt.Errorf("connection refused") },
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBankTestRouter(&mockBranchRegistrar{}, &mockBranchDirectory{listFn: tt.listFn})
			w := doRequest(router, http.MethodGet, "/bank/all", nil)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var got []models.BankBranch
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(got) != tt.expectedCount {
					t.Errorf("expected %d branches, got %d", tt.expectedCount, len(got))
				}
			}
		})
	}
}
