package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// MealKey identifies one (day, meal slot) cell of a week plan.
type MealKey struct {
	Day  Weekday
	Slot MealSlot
}

func (k MealKey) String() string {
	return string(k.Day) + "/" + string(k.Slot)
}

// ParseMealKey parses a "day/slot" string produced by MealKey.String.
func ParseMealKey(s string) (MealKey, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return MealKey{}, fmt.Errorf("invalid meal key %q", s)
	}
	key := MealKey{Day: Weekday(parts[0]), Slot: MealSlot(parts[1])}
	if !ValidWeekday(key.Day) || !ValidMealSlot(key.Slot) {
		return MealKey{}, fmt.Errorf("invalid meal key %q", s)
	}
	return key, nil
}

// CustomizationRecord tracks which meal cells diverge from the base plan.
// A key is present while the cell's ingredient list differs from base and is
// removed when edits return the cell to its original values.
type CustomizationRecord map[MealKey]struct{}

// NewCustomizationRecord returns an empty record.
func NewCustomizationRecord() CustomizationRecord {
	return make(CustomizationRecord)
}

// Mark records the cell as modified from base.
func (r CustomizationRecord) Mark(day Weekday, slot MealSlot) {
	r[MealKey{Day: day, Slot: slot}] = struct{}{}
}

// Unmark removes the cell from the modified set.
func (r CustomizationRecord) Unmark(day Weekday, slot MealSlot) {
	delete(r, MealKey{Day: day, Slot: slot})
}

// IsModified reports whether the cell diverges from base.
func (r CustomizationRecord) IsModified(day Weekday, slot MealSlot) bool {
	_, ok := r[MealKey{Day: day, Slot: slot}]
	return ok
}

// Clear empties the record. Used on reset-to-base.
func (r CustomizationRecord) Clear() {
	for k := range r {
		delete(r, k)
	}
}

// Keys returns the modified cells as sorted "day/slot" strings.
func (r CustomizationRecord) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the record.
func (r CustomizationRecord) Clone() CustomizationRecord {
	out := make(CustomizationRecord, len(r))
	for k := range r {
		out[k] = struct{}{}
	}
	return out
}

// MarshalJSON encodes the record as a sorted list of "day/slot" strings.
func (r CustomizationRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Keys())
}

// UnmarshalJSON decodes a list of "day/slot" strings, ignoring none.
func (r *CustomizationRecord) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	rec := make(CustomizationRecord, len(keys))
	for _, s := range keys {
		key, err := ParseMealKey(s)
		if err != nil {
			return err
		}
		rec[key] = struct{}{}
	}
	*r = rec
	return nil
}
