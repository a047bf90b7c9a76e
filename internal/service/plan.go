package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/nutrition"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrUnknownMealCell signals an edit addressed to a day or slot that
	// does not exist in a week plan.
	ErrUnknownMealCell = errors.New("unknown day or meal slot")
	// ErrNoActivePlan signals that the member has not selected a plan yet.
	ErrNoActivePlan = errors.New("no active plan selected")
)

const (
	activePlanCacheTTL = 24 * time.Hour
	archiveTimeout     = 30 * time.Second
)

func activePlanCacheKey(userID uuid.UUID) string {
	return "active_plan:" + userID.String()
}

// PlanService owns the customization overlay on top of plan templates: it
// materializes a member-sized PlanData aggregate, applies meal edits,
// re-derives all aggregates after every mutation, tracks which cells
// diverge from base, and auto-saves snapshots through the planSaver.
type PlanService struct {
	db       *gorm.DB
	resolver *nutrition.Resolver
	profiles ProfileSource
	saver    *planSaver
	archive  Archiver      // optional
	cache    *redis.Client // optional
}

// Ensure PlanService implements IPlanService
var _ IPlanService = (*PlanService)(nil)

// NewPlanService creates a new PlanService instance. archive and cache are
// optional; pass nil to disable snapshot archiving and pointer caching.
func NewPlanService(db *gorm.DB, facts nutrition.FactSource, profiles ProfileSource, archive Archiver, cache *redis.Client) *PlanService {
	s := &PlanService{
		db:       db,
		resolver: nutrition.NewResolver(facts),
		profiles: profiles,
		archive:  archive,
		cache:    cache,
	}
	s.saver = newPlanSaver(s.persistSnapshot, nil)
	return s
}

// WaitForSaves blocks until all pending auto-saves have been attempted.
// Shutdown and test hook.
func (s *PlanService) WaitForSaves() {
	s.saver.Wait()
}

// ListTemplates lists the plan templates available to members.
func (s *PlanService) ListTemplates(ctx context.Context) ([]model.PlanTemplate, error) {
	var templates []model.PlanTemplate
	if err := s.db.WithContext(ctx).Order("name").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetPlan returns the member's view of a plan: the persisted customized
// snapshot when one exists, otherwise a fresh aggregate built from the
// template. Aggregates are always recomputed from the ingredient lists on
// load, so stale persisted totals can never surface.
func (s *PlanService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error) {
	var custom model.CustomPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		First(&custom).Error
	if err == nil {
		plan := model.PlanData(custom.Data)
		s.repair(&plan)
		s.refresh(&plan)
		return &plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.buildFromTemplate(ctx, userID, planID)
}

// buildFromTemplate materializes an unmodified PlanData from the template
// and the member's nutrition profile.
func (s *PlanService) buildFromTemplate(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error) {
	var tpl model.PlanTemplate
	if err := s.db.WithContext(ctx).First(&tpl, "id = ?", planID).Error; err != nil {
		return nil, err
	}

	profile, err := s.profiles.NutritionProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load nutrition profile: %w", err)
	}

	factor, err := nutrition.ScaleFactor(tpl.BaseCalories, profile.TargetCalories)
	if err != nil {
		log.Printf("[plan] template %s: %v, using factor 1.0", tpl.ID, err)
	}

	plan := &model.PlanData{
		PlanID:      tpl.ID,
		PlanName:    tpl.Name,
		UserProfile: profile,
		ScalingInfo: model.ScalingInfo{
			BasePlanCalories: tpl.BaseCalories,
			ScaleFactor:      factor,
			TargetCalories:   profile.TargetCalories,
		},
		WeekPlan:      model.WeekPlan(tpl.Week).Clone(),
		ModifiedMeals: model.NewCustomizationRecord(),
	}
	s.repair(plan)
	s.refresh(plan)
	return plan, nil
}

// repair backfills missing days and slots instead of failing the load.
func (s *PlanService) repair(plan *model.PlanData) {
	plan.WeekPlan = plan.WeekPlan.Normalize()
	if plan.ModifiedMeals == nil {
		plan.ModifiedMeals = model.NewCustomizationRecord()
	}
}

// refresh re-derives meal nutrition, daily totals and weekly averages from
// the ingredient lists, never touching profile or scaling info.
func (s *PlanService) refresh(plan *model.PlanData) {
	plan.WeekPlan = nutrition.RecalculateWeek(s.resolver, plan.WeekPlan)
	plan.WeeklyAverages = nutrition.AggregateWeek(s.resolver, plan.WeekPlan)
}

// EditMeal replaces one meal's ingredient list and re-derives all
// aggregates. The cell is marked modified unless the new list matches the
// template's meal exactly, in which case its key is removed again. The
// updated snapshot is persisted asynchronously; a failed save is logged but
// never rolls back the in-memory edit.
func (s *PlanService) EditMeal(ctx context.Context, userID, planID uuid.UUID, day model.Weekday, slot model.MealSlot, ingredients []model.IngredientLine) (*model.PlanData, error) {
	if !model.ValidWeekday(day) || !model.ValidMealSlot(slot) {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownMealCell, day, slot)
	}

	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	lines := make([]model.IngredientLine, len(ingredients))
	copy(lines, ingredients)

	dayPlan := plan.WeekPlan[day]
	meal := dayPlan.Meals[slot]
	meal.Ingredients = lines
	dayPlan.Meals[slot] = meal
	plan.WeekPlan[day] = dayPlan

	s.refresh(plan)

	base, err := s.baseMeal(ctx, planID, day, slot)
	if err != nil {
		return nil, err
	}
	if model.IngredientLinesEqual(lines, base) {
		plan.ModifiedMeals.Unmark(day, slot)
	} else {
		plan.ModifiedMeals.Mark(day, slot)
	}

	s.saver.Enqueue(saveKey{UserID: userID, PlanID: planID}, plan.Clone())
	return plan, nil
}

// baseMeal returns the template's ingredient list for one cell.
func (s *PlanService) baseMeal(ctx context.Context, planID uuid.UUID, day model.Weekday, slot model.MealSlot) ([]model.IngredientLine, error) {
	var tpl model.PlanTemplate
	if err := s.db.WithContext(ctx).First(&tpl, "id = ?", planID).Error; err != nil {
		return nil, err
	}
	week := model.WeekPlan(tpl.Week).Normalize()
	return week[day].Meals[slot].Ingredients, nil
}

// persistSnapshot upserts the full snapshot keyed by (user, plan).
func (s *PlanService) persistSnapshot(ctx context.Context, key saveKey, snapshot *model.PlanData) error {
	row := model.CustomPlan{
		UserID: key.UserID,
		PlanID: key.PlanID,
		Data:   model.JSONBPlanData(*snapshot),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "plan_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

// ResetToBase discards all customization for the plan: pending auto-saves
// are flushed, the persisted snapshot is deleted, and a fresh base-plan
// aggregate is returned with an empty modified set.
func (s *PlanService) ResetToBase(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error) {
	s.saver.Flush(saveKey{UserID: userID, PlanID: planID})

	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Delete(&model.CustomPlan{}).Error; err != nil {
		return nil, err
	}
	return s.buildFromTemplate(ctx, userID, planID)
}

// SelectActivePlan persists the current (possibly customized) plan
// synchronously and only then moves the active-plan pointer, so a crash
// between the two steps can never leave the pointer at unsaved data.
func (s *PlanService) SelectActivePlan(ctx context.Context, userID, planID uuid.UUID) error {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return err
	}

	key := saveKey{UserID: userID, PlanID: planID}
	s.saver.Flush(key)
	if err := s.persistSnapshot(ctx, key, plan); err != nil {
		return fmt.Errorf("failed to persist plan snapshot: %w", err)
	}

	active := model.ActivePlan{UserID: userID, PlanID: planID}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan_id", "updated_at"}),
	}).Create(&active).Error; err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, activePlanCacheKey(userID), planID.String(), activePlanCacheTTL).Err(); err != nil {
			log.Printf("[plan] failed to cache active plan pointer: %v", err)
		}
	}

	if s.archive != nil {
		snapshot := plan.Clone()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
			defer cancel()
			if key, err := s.archive.ArchivePlan(ctx, userID, snapshot); err != nil {
				log.Printf("[plan] snapshot archive failed: %v", err)
			} else {
				log.Printf("[plan] archived snapshot to %s", key)
			}
		}()
	}
	return nil
}

// ActivePlan returns the plan the member currently follows.
func (s *PlanService) ActivePlan(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, activePlanCacheKey(userID)).Result(); err == nil {
			if id, err := uuid.Parse(val); err == nil {
				return id, nil
			}
		}
	}

	var active model.ActivePlan
	if err := s.db.WithContext(ctx).First(&active, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrNoActivePlan
		}
		return uuid.Nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, activePlanCacheKey(userID), active.PlanID.String(), activePlanCacheTTL).Err(); err != nil {
			log.Printf("[plan] failed to cache active plan pointer: %v", err)
		}
	}
	return active.PlanID, nil
}

// DayDeviations classifies one day's totals against the member's targets.
func (s *PlanService) DayDeviations(ctx context.Context, userID, planID uuid.UUID, day model.Weekday) (nutrition.DayDeviation, error) {
	if !model.ValidWeekday(day) {
		return nutrition.DayDeviation{}, fmt.Errorf("%w: %s", ErrUnknownMealCell, day)
	}
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nutrition.DayDeviation{}, err
	}
	return nutrition.ClassifyDay(plan.WeekPlan[day].DailyTotals, plan.UserProfile), nil
}
