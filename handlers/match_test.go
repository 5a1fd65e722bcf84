package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estia/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatchService struct {
	viewed   [][2]string // propertyID, clientID
	excluded [][2]string // clientID, propertyID
}

func (f *fakeMatchService) MatchesForClient(clientID string) ([]models.PropertyMatch, error) {
	return nil, nil
}

func (f *fakeMatchService) BuyersForProperty(propertyID string) ([]models.BuyerMatch, error) {
	return nil, nil
}

func (f *fakeMatchService) MarkViewed(propertyID, clientID string) {
	f.viewed = append(f.viewed, [2]string{propertyID, clientID})
}

func (f *fakeMatchService) Exclude(clientID, propertyID string) {
	f.excluded = append(f.excluded, [2]string{clientID, propertyID})
}

func (f *fakeMatchService) InvalidateCatalog() {}

type fakeClientService struct {
	clients map[string]models.Client
}

func (f *fakeClientService) GetClientByID(clientID string) (*models.Client, error) {
	if c, ok := f.clients[clientID]; ok {
		return &c, nil
	}
	return nil, fmt.Errorf("client not found")
}

func (f *fakeClientService) CreateClient(client models.Client) (*models.Client, error) {
	return nil, nil
}
func (f *fakeClientService) GetClientsByAgent(agentID string) ([]models.Client, error) {
	return nil, nil
}
func (f *fakeClientService) UpdateClient(client models.Client) (*models.Client, error) {
	return nil, nil
}
func (f *fakeClientService) DeleteClient(clientID string) error { return nil }

type fakePropertyService struct {
	properties map[string]models.Property
}

func (f *fakePropertyService) GetPropertyByID(propertyID string) (*models.Property, error) {
	if p, ok := f.properties[propertyID]; ok {
		return &p, nil
	}
	return nil, fmt.Errorf("property not found")
}

func (f *fakePropertyService) CreateProperty(property models.Property) (*models.Property, error) {
	return nil, nil
}
func (f *fakePropertyService) GetPropertiesByAgent(agentID string) ([]models.Property, error) {
	return nil, nil
}
func (f *fakePropertyService) UpdateProperty(property models.Property) (*models.Property, error) {
	return nil, nil
}
func (f *fakePropertyService) DeleteProperty(propertyID string) error { return nil }
func (f *fakePropertyService) AddPhoto(ctx context.Context, propertyID string, file io.Reader) (*models.PropertyPhoto, error) {
	return nil, nil
}
func (f *fakePropertyService) RemovePhoto(ctx context.Context, propertyID, photoID string) error {
	return nil
}

func newVisibilityFixture() (*MatchHandler, *fakeMatchService) {
	matches := &fakeMatchService{}
	clients := &fakeClientService{clients: map[string]models.Client{
		"c1":      {ID: "c1", AgentID: "agent-1"},
		"foreign": {ID: "foreign", AgentID: "agent-2"},
	}}
	properties := &fakePropertyService{properties: map[string]models.Property{
		"p1":      {ID: "p1", AgentID: "agent-1"},
		"foreign": {ID: "foreign", AgentID: "agent-2"},
	}}
	return NewMatchHandler(matches, clients, properties), matches
}

func postJSON(t *testing.T, agentID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("agentID", agentID)
	return c, w
}

func TestMarkViewedHandler(t *testing.T) {
	h, matches := newVisibilityFixture()

	c, w := postJSON(t, "agent-1", `{"propertyId":"p1","clientId":"c1"}`)
	h.MarkViewedHandler(c)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, matches.viewed, 1)
	assert.Equal(t, [2]string{"p1", "c1"}, matches.viewed[0])
}

func TestMarkViewedHandlerRejectsForeignPair(t *testing.T) {
	h, matches := newVisibilityFixture()

	c, w := postJSON(t, "agent-1", `{"propertyId":"p1","clientId":"foreign"}`)
	h.MarkViewedHandler(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, matches.viewed)
}

func TestMarkViewedHandlerRejectsBadPayload(t *testing.T) {
	h, matches := newVisibilityFixture()

	c, w := postJSON(t, "agent-1", `{"propertyId":"p1"}`)
	h.MarkViewedHandler(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, matches.viewed)
}

func TestExcludeMatchHandler(t *testing.T) {
	h, matches := newVisibilityFixture()

	c, w := postJSON(t, "agent-1", `{"clientId":"c1","propertyId":"p1"}`)
	h.ExcludeMatchHandler(c)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, matches.excluded, 1)
	assert.Equal(t, [2]string{"c1", "p1"}, matches.excluded[0])
}

func TestExcludeMatchHandlerRejectsForeignPair(t *testing.T) {
	h, matches := newVisibilityFixture()

	// Exclusions are permanent, so a pair touching another agent's records
	// must never reach the tracker.
	c, w := postJSON(t, "agent-1", `{"clientId":"c1","propertyId":"foreign"}`)
	h.ExcludeMatchHandler(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, matches.excluded)

	c, w = postJSON(t, "agent-2", `{"clientId":"c1","propertyId":"p1"}`)
	h.ExcludeMatchHandler(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, matches.excluded)
}

func TestExcludeMatchHandlerUnknownPair(t *testing.T) {
	h, matches := newVisibilityFixture()

	c, w := postJSON(t, "agent-1", `{"clientId":"c1","propertyId":"missing"}`)
	h.ExcludeMatchHandler(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, matches.excluded)
}
