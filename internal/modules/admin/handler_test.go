package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/NickolasCage52/School-MVP/internal/database"
	"github.com/NickolasCage52/School-MVP/internal/domain"
	"github.com/NickolasCage52/School-MVP/internal/middleware"
	"github.com/NickolasCage52/School-MVP/internal/pkg/logger"
	"github.com/NickolasCage52/School-MVP/internal/repository"
)

const testToken = "test-admin-token"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Direction{}, &domain.Program{}, &domain.Package{}, &domain.Lead{}))

	handler := NewHandler(repository.NewLeadRepository(db), repository.NewCatalogRepository(db), logger.NewNop())

	router := gin.New()
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AdminTokenAuth(testToken))
	RegisterRoutes(adminGroup, handler)

	return router, db
}

func doRequest(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func insertLead(t *testing.T, db *gorm.DB, programID string, status domain.LeadStatus, createdAt time.Time) *domain.Lead {
	t.Helper()
	l := &domain.Lead{
		ID:          uuid.NewString(),
		ProgramID:   programID,
		ProgramName: "Intro",
		ClientName:  "Anna",
		Status:      status,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestAdminRequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	for _, token := range []string{"", "wrong-token"} {
		resp := doRequest(router, http.MethodGet, "/api/admin/leads", nil, token)
		require.Equal(t, http.StatusUnauthorized, resp.Code)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		require.Equal(t, "Unauthorized", payload["error"])
	}
}

func TestListLeadsFiltersAndPaginates(t *testing.T) {
	router, db := setupRouter(t)

	now := time.Now()
	insertLead(t, db, "p1", domain.LeadStatusNew, now.Add(-time.Hour))
	insertLead(t, db, "p1", domain.LeadStatusDone, now.Add(-2*time.Hour))
	insertLead(t, db, "p2", domain.LeadStatusNew, now)

	resp := doRequest(router, http.MethodGet, "/api/admin/leads?programId=p1", nil, testToken)
	require.Equal(t, http.StatusOK, resp.Code)

	var page LeadListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.EqualValues(t, 2, page.Total)
	require.Len(t, page.Leads, 2)
	require.Equal(t, repository.LeadPageSize, page.PageSize)
	// newest first
	require.True(t, page.Leads[0].CreatedAt.After(page.Leads[1].CreatedAt))

	resp = doRequest(router, http.MethodGet, "/api/admin/leads?status=Done", nil, testToken)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.EqualValues(t, 1, page.Total)
}

func TestListLeadsDateRange(t *testing.T) {
	router, db := setupRouter(t)

	old := insertLead(t, db, "p1", domain.LeadStatusNew, time.Now().Add(-48*time.Hour))
	recent := insertLead(t, db, "p1", domain.LeadStatusNew, time.Now())

	from := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
	resp := doRequest(router, http.MethodGet, "/api/admin/leads?from="+from, nil, testToken)
	require.Equal(t, http.StatusOK, resp.Code)

	var page LeadListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, recent.ID, page.Leads[0].ID)
	require.NotEqual(t, old.ID, page.Leads[0].ID)
}

func TestUpdateLeadStatus(t *testing.T) {
	router, db := setupRouter(t)
	l := insertLead(t, db, "p1", domain.LeadStatusNew, time.Now())

	resp := doRequest(router, http.MethodPatch, "/api/admin/leads/"+l.ID,
		map[string]any{"status": "In work"}, testToken)
	require.Equal(t, http.StatusOK, resp.Code)

	var updated domain.Lead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, domain.LeadStatusInWork, updated.Status)

	var stored domain.Lead
	require.NoError(t, db.First(&stored, "id = ?", l.ID).Error)
	require.Equal(t, domain.LeadStatusInWork, stored.Status)
}

func TestUpdateLeadStatusRejectsUnknownStatus(t *testing.T) {
	router, db := setupRouter(t)
	l := insertLead(t, db, "p1", domain.LeadStatusNew, time.Now())

	resp := doRequest(router, http.MethodPatch, "/api/admin/leads/"+l.ID,
		map[string]any{"status": "Archived"}, testToken)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var stored domain.Lead
	require.NoError(t, db.First(&stored, "id = ?", l.ID).Error)
	require.Equal(t, domain.LeadStatusNew, stored.Status)
}

func TestUpdateLeadStatusNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doRequest(router, http.MethodPatch, "/api/admin/leads/"+uuid.NewString(),
		map[string]any{"status": "Done"}, testToken)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestExportLeadsCSV(t *testing.T) {
	router, db := setupRouter(t)
	insertLead(t, db, "p1", domain.LeadStatusNew, time.Now())

	resp := doRequest(router, http.MethodGet, "/api/admin/leads/export", nil, testToken)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Header().Get("Content-Type"), "text/csv")

	body := resp.Body.String()
	require.True(t, strings.HasPrefix(body, "\uFEFF"), "export must start with a BOM")
	require.Contains(t, body, "id,createdAt,updatedAt,status,programId,programName")
	require.Contains(t, body, "Anna")
}

func TestListProgramsReturnsRefs(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Create(&domain.Program{ID: "p1", Title: "Intro", OrderNum: 1}).Error)
	require.NoError(t, db.Create(&domain.Program{ID: "p0", Title: "Basics", OrderNum: 0}).Error)

	resp := doRequest(router, http.MethodGet, "/api/admin/programs", nil, testToken)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Programs []ProgramRef `json:"programs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Programs, 2)
	require.Equal(t, "p0", payload.Programs[0].ID)
	require.Equal(t, "Intro", payload.Programs[1].Title)
}
