// internal/handlers/items_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hautevault/boutique-backend/internal/middleware"
	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/models/modelstesting"
	"github.com/hautevault/boutique-backend/internal/store"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type ItemsTestSuite struct {
	suite.Suite
	store     *store.Memory
	router    *gin.Engine
	published models.Item
	hidden    models.Item
}

func (suite *ItemsTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")

	suite.store = store.NewMemory()
	suite.published = modelstesting.FakeItem(func(i *models.Item) {
		i.PublishStatus = models.PublishStatePublished
	})
	suite.hidden = modelstesting.FakeItem()
	_, err := suite.store.UpsertItems(context.Background(), []models.Item{suite.published, suite.hidden})
	suite.Require().NoError(err)

	handler := NewItemHandler(suite.store)

	suite.router = gin.New()
	suite.router.GET("/items", middleware.OptionalAdmin(), handler.List)
	suite.router.GET("/item/:id", middleware.OptionalAdmin(), handler.Get)
	suite.router.PATCH("/item/:id", middleware.AdminRequired(), handler.Patch)
}

func (suite *ItemsTestSuite) request(method, path string, body []byte, admin bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		token, err := utils.SignAdminToken(1)
		suite.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ItemsTestSuite) TestListPublicSeesPublishedOnly() {
	w := suite.request("GET", "/items", nil, false)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Items []models.Item `json:"items"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Items, 1)
	assert.Equal(suite.T(), suite.published.ID, response.Items[0].ID)
}

func (suite *ItemsTestSuite) TestListAdminSeesEverything() {
	w := suite.request("GET", "/items", nil, true)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Items []models.Item `json:"items"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Items, 2)
}

func (suite *ItemsTestSuite) TestListInvalidTokenRejected() {
	req, _ := http.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ItemsTestSuite) TestGetUnpublishedHiddenFromPublic() {
	w := suite.request("GET", "/item/"+suite.hidden.ID.String(), nil, false)

	// Indistinguishable from a missing item.
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), utils.CodeNotFound, response["error"])
}

func (suite *ItemsTestSuite) TestGetUnpublishedVisibleToAdmin() {
	w := suite.request("GET", "/item/"+suite.hidden.ID.String(), nil, true)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ItemsTestSuite) TestGetBadID() {
	w := suite.request("GET", "/item/not-a-uuid", nil, false)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ItemsTestSuite) TestPatchRequiresAdmin() {
	body, _ := json.Marshal(map[string]interface{}{"score": 95})
	w := suite.request("PATCH", "/item/"+suite.hidden.ID.String(), body, false)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ItemsTestSuite) TestPatchUpdatesAllowListedFields() {
	body, _ := json.Marshal(map[string]interface{}{
		"titleBoutique": "Hermès Kelly 28",
		"publishStatus": "PUBLISHED",
	})
	w := suite.request("PATCH", "/item/"+suite.hidden.ID.String(), body, true)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Item models.Item `json:"item"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().NotNil(response.Item.TitleBoutique)
	assert.Equal(suite.T(), "Hermès Kelly 28", *response.Item.TitleBoutique)
	assert.Equal(suite.T(), models.PublishStatePublished, response.Item.PublishStatus)
}

func (suite *ItemsTestSuite) TestPatchRejectsInvalidPublishStatus() {
	body, _ := json.Marshal(map[string]interface{}{"publishStatus": "LIVE"})
	w := suite.request("PATCH", "/item/"+suite.hidden.ID.String(), body, true)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ItemsTestSuite) TestPatchUnknownItem() {
	body, _ := json.Marshal(map[string]interface{}{"score": 91})
	w := suite.request("PATCH", "/item/"+modelstesting.FakeItem().ID.String(), body, true)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestItemsSuite(t *testing.T) {
	suite.Run(t, new(ItemsTestSuite))
}
