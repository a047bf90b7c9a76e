package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ascend-community/backend/internal/mocks"
	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/nutrition"
	"github.com/ascend-community/backend/internal/service"
)

func planTestContext(t *testing.T, method, path string, body interface{}, userID uuid.UUID, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)
	c.Params = params
	return c, w
}

func TestGetPlanReturnsAggregate(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	planID := uuid.New()
	expected := &model.PlanData{
		PlanID:         planID,
		PlanName:       "Lean Bulk",
		WeeklyAverages: model.Nutrition{Calories: 2480, Protein: 182.5, Carbs: 248, Fat: 79.1},
	}
	mockPlans.On("GetPlan", mock.Anything, userID, planID).Return(expected, nil)

	c, w := planTestContext(t, http.MethodGet, "/plans/"+planID.String(), nil, userID,
		gin.Params{{Key: "id", Value: planID.String()}})
	handler.GetPlan(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.PlanData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, planID, got.PlanID)
	assert.Equal(t, 2480, got.WeeklyAverages.Calories)
	mockPlans.AssertExpectations(t)
}

func TestGetPlanNotFound(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	planID := uuid.New()
	mockPlans.On("GetPlan", mock.Anything, userID, planID).Return(nil, gorm.ErrRecordNotFound)

	c, w := planTestContext(t, http.MethodGet, "/plans/"+planID.String(), nil, userID,
		gin.Params{{Key: "id", Value: planID.String()}})
	handler.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlanInvalidID(t *testing.T) {
	handler := NewPlanHandler(new(mocks.MockPlanService))

	c, w := planTestContext(t, http.MethodGet, "/plans/not-a-uuid", nil, uuid.New(),
		gin.Params{{Key: "id", Value: "not-a-uuid"}})
	handler.GetPlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditMealForwardsIngredients(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	planID := uuid.New()
	lines := []model.IngredientLine{
		{Name: "Ei", Amount: 2, Unit: model.UnitPerPiece},
	}
	expected := &model.PlanData{PlanID: planID}
	mockPlans.On("EditMeal", mock.Anything, userID, planID, model.Wednesday, model.SlotLunch, lines).
		Return(expected, nil)

	body := map[string]interface{}{"ingredients": lines}
	c, w := planTestContext(t, http.MethodPut, "/plans/"+planID.String()+"/days/wednesday/meals/lunch", body, userID,
		gin.Params{
			{Key: "id", Value: planID.String()},
			{Key: "day", Value: "wednesday"},
			{Key: "slot", Value: "lunch"},
		})
	handler.EditMeal(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockPlans.AssertExpectations(t)
}

func TestEditMealUnknownCell(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	planID := uuid.New()
	mockPlans.On("EditMeal", mock.Anything, userID, planID, model.Weekday("funday"), model.SlotLunch, mock.Anything).
		Return(nil, service.ErrUnknownMealCell)

	body := map[string]interface{}{
		"ingredients": []model.IngredientLine{{Name: "Ei", Amount: 1, Unit: model.UnitPerPiece}},
	}
	c, w := planTestContext(t, http.MethodPut, "/plans/"+planID.String()+"/days/funday/meals/lunch", body, userID,
		gin.Params{
			{Key: "id", Value: planID.String()},
			{Key: "day", Value: "funday"},
			{Key: "slot", Value: "lunch"},
		})
	handler.EditMeal(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditMealMissingBody(t *testing.T) {
	handler := NewPlanHandler(new(mocks.MockPlanService))

	c, w := planTestContext(t, http.MethodPut, "/plans/"+uuid.NewString()+"/days/monday/meals/lunch", map[string]interface{}{}, uuid.New(),
		gin.Params{
			{Key: "id", Value: uuid.NewString()},
			{Key: "day", Value: "monday"},
			{Key: "slot", Value: "lunch"},
		})
	handler.EditMeal(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectPlan(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	planID := uuid.New()
	mockPlans.On("SelectActivePlan", mock.Anything, userID, planID).Return(nil)

	c, w := planTestContext(t, http.MethodPost, "/plans/"+planID.String()+"/select", nil, userID,
		gin.Params{{Key: "id", Value: planID.String()}})
	handler.SelectPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockPlans.AssertExpectations(t)
}

func TestGetActivePlanNone(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	mockPlans.On("ActivePlan", mock.Anything, userID).Return(uuid.Nil, service.ErrNoActivePlan)

	c, w := planTestContext(t, http.MethodGet, "/plans/active", nil, userID, nil)
	handler.GetActivePlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDayDeviations(t *testing.T) {
	mockPlans := new(mocks.MockPlanService)
	handler := NewPlanHandler(mockPlans)

	userID := uuid.New()
	planID := uuid.New()
	dev := nutrition.DayDeviation{
		Calories: nutrition.Deviation{Status: nutrition.StatusOverWarn, Percentage: 108},
		Protein:  nutrition.Deviation{Status: nutrition.StatusOK, Percentage: 101},
	}
	mockPlans.On("DayDeviations", mock.Anything, userID, planID, model.Friday).Return(dev, nil)

	c, w := planTestContext(t, http.MethodGet, "/plans/"+planID.String()+"/days/friday/deviations", nil, userID,
		gin.Params{
			{Key: "id", Value: planID.String()},
			{Key: "day", Value: "friday"},
		})
	handler.GetDayDeviations(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got nutrition.DayDeviation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, nutrition.StatusOverWarn, got.Calories.Status)
	assert.Equal(t, 108, got.Calories.Percentage)
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	handler := NewPlanHandler(new(mocks.MockPlanService))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/plans/active", nil)

	handler.GetActivePlan(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
