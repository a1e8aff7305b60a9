package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func threeDays() *Itinerary {
	return New([]DayRecord{
		{Title: "A"},
		{Title: "A alt", IsAlternative: true},
		{Title: "B"},
	})
}

func TestNew_NormalizesNilLists(t *testing.T) {
	t.Parallel()

	it := New([]DayRecord{{Title: "x"}})
	assert.NotNil(t, it.Days[0].Activities)
	assert.NotNil(t, it.Days[0].Images)
	assert.NotNil(t, it.Days[0].Recommendations)

	out, err := json.Marshal(New(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"days":[]}`, string(out))
}

func TestAddDay(t *testing.T) {
	t.Parallel()

	it := New(nil)
	_, err := it.AddDay(true)
	assert.ErrorIs(t, err, ErrFirstDayAlternative)

	idx, err := it.AddDay(false)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = it.AddDay(true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{"Day 1", "Day 1-B"}, it.Labels())
}

func TestUpdateDay(t *testing.T) {
	t.Parallel()

	it := threeDays()
	require.NoError(t, it.UpdateDay(2, DayPatch{
		Title:               ptr("Kyoto"),
		AccommodationRating: ptr(9),
		Meals:               &Meals{Breakfast: "飯店內", Lunch: "拉麵", Dinner: "燒肉"},
	}))
	d, err := it.Day(2)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", d.Title)
	assert.Equal(t, 5, d.AccommodationRating)
	assert.Equal(t, "拉麵", d.Meals.Lunch)

	assert.ErrorIs(t, it.UpdateDay(0, DayPatch{IsAlternative: ptr(true)}), ErrFirstDayAlternative)
	assert.ErrorIs(t, it.UpdateDay(3, DayPatch{}), ErrDayIndex)

	require.NoError(t, it.UpdateDay(2, DayPatch{IsAlternative: ptr(true)}))
	assert.Equal(t, []string{"Day 1", "Day 1-B", "Day 1-C"}, it.Labels())
}

func TestRemoveDay(t *testing.T) {
	t.Parallel()

	it := threeDays()
	assert.ErrorIs(t, it.RemoveDay(0), ErrFirstDayAlternative)
	assert.ErrorIs(t, it.RemoveDay(-1), ErrDayIndex)

	require.NoError(t, it.RemoveDay(1))
	assert.Equal(t, []string{"Day 1", "Day 2"}, it.Labels())

	require.NoError(t, it.RemoveLastDay())
	require.NoError(t, it.RemoveLastDay())
	assert.ErrorIs(t, it.RemoveLastDay(), ErrNoDays)
}

func TestSwapDays(t *testing.T) {
	t.Parallel()

	it := threeDays()
	assert.ErrorIs(t, it.SwapDays(0, 2), ErrNotAdjacent)
	assert.ErrorIs(t, it.SwapDays(0, 1), ErrFirstDayAlternative)

	require.NoError(t, it.SwapDays(2, 1))
	assert.Equal(t, "B", it.Days[1].Title)
	assert.Equal(t, "A alt", it.Days[2].Title)
	assert.Equal(t, []string{"Day 1", "Day 2", "Day 2-B"}, it.Labels())
}

func TestMoveDay(t *testing.T) {
	t.Parallel()

	it := threeDays()
	moved, err := it.MoveDay("day-1", "day-0")
	assert.ErrorIs(t, err, ErrFirstDayAlternative)
	assert.False(t, moved)
	assert.Equal(t, "A", it.Days[0].Title)

	moved, err = it.MoveDay("day-2", "day-0")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "B", it.Days[0].Title)

	moved, err = it.MoveDay("day-9", "day-0")
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestActivities(t *testing.T) {
	t.Parallel()

	it := threeDays()
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, it.AddActivity(0))
		n := len(it.Days[0].Activities)
		require.NoError(t, it.UpdateActivity(0, n-1, FieldTitle, title))
	}
	assert.Equal(t, []string{"a", "b", "c"}, titles(it.Days[0].Activities))

	assert.ErrorIs(t, it.UpdateActivity(0, 0, "color", "red"), ErrUnknownField)
	assert.ErrorIs(t, it.UpdateActivity(0, 3, FieldTitle, "x"), ErrActivityIndex)
	assert.ErrorIs(t, it.AddActivity(5), ErrDayIndex)

	moved, err := it.MoveActivity(0, "activity-0-2", "activity-0-0")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"c", "a", "b"}, titles(it.Days[0].Activities))

	moved, err = it.MoveActivity(0, "activity-2-0", "activity-0-0")
	require.NoError(t, err)
	assert.False(t, moved)

	require.NoError(t, it.ReorderActivitiesByIndex(0, []int{1, 2, 0}))
	assert.Equal(t, []string{"a", "b", "c"}, titles(it.Days[0].Activities))
	assert.ErrorIs(t, it.ReorderActivitiesByIndex(0, []int{0, 0, 1}), ErrNotPermutation)

	require.NoError(t, it.RemoveActivity(0, 1))
	assert.Equal(t, []string{"a", "c"}, titles(it.Days[0].Activities))

	a, err := it.Activity(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "c", a.Title)
}

func TestReorderActivities_CopiesInput(t *testing.T) {
	t.Parallel()

	it := New([]DayRecord{{Activities: []ActivityRecord{{Title: "x"}, {Title: "y"}}}})
	next := []ActivityRecord{{Title: "y"}, {Title: "x"}}
	require.NoError(t, it.ReorderActivities(0, next))
	next[0].Title = "changed"
	assert.Equal(t, []string{"y", "x"}, titles(it.Days[0].Activities))
}

func TestReorderActivities_RejectsNonPermutations(t *testing.T) {
	t.Parallel()

	current := []ActivityRecord{{Title: "a"}, {Title: "b"}, {Title: "a"}}
	tests := []struct {
		name string
		next []ActivityRecord
	}{
		{"shorter", []ActivityRecord{{Title: "zzz"}}},
		{"empty", []ActivityRecord{}},
		{"longer", []ActivityRecord{{Title: "a"}, {Title: "b"}, {Title: "a"}, {Title: "b"}}},
		{"replaced record", []ActivityRecord{{Title: "a"}, {Title: "b"}, {Title: "c"}}},
		{"edited field", []ActivityRecord{{Title: "a"}, {Title: "b"}, {Title: "a", Image: "x.jpg"}}},
		{"duplicate swapped for missing", []ActivityRecord{{Title: "b"}, {Title: "b"}, {Title: "a"}}},
	}

	for _, tt := range tests {
		it := New([]DayRecord{{Activities: append([]ActivityRecord(nil), current...)}})
		assert.ErrorIs(t, it.ReorderActivities(0, tt.next), ErrNotPermutation, tt.name)
		assert.Equal(t, []string{"a", "b", "a"}, titles(it.Days[0].Activities), tt.name)
	}

	it := New([]DayRecord{{Activities: append([]ActivityRecord(nil), current...)}})
	require.NoError(t, it.ReorderActivities(0, []ActivityRecord{{Title: "a"}, {Title: "a"}, {Title: "b"}}))
	assert.Equal(t, []string{"a", "a", "b"}, titles(it.Days[0].Activities))
}

func TestDayImages(t *testing.T) {
	t.Parallel()

	it := threeDays()
	require.NoError(t, it.AddDayImage(0, "a.jpg"))
	require.NoError(t, it.AddDayImage(0, "b.jpg"))
	assert.Equal(t, "center", it.Days[0].Images[0].Position())

	require.NoError(t, it.SetDayImagePosition(0, 1, "center top"))
	assert.Equal(t, "50% 0%", it.Days[0].Images[1].Position())

	require.NoError(t, it.UpdateDayImage(0, 0, "a2.jpg"))
	assert.Equal(t, "a2.jpg", it.Days[0].Images[0].URL())

	moved, err := it.MoveDayImage(0, "image-0-1", "image-0-0")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "b.jpg", it.Days[0].Images[0].URL())

	assert.ErrorIs(t, it.RemoveDayImage(0, 2), ErrImageIndex)
	require.NoError(t, it.RemoveDayImage(0, 0))
	assert.Len(t, it.Days[0].Images, 1)
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	it := threeDays()
	require.NoError(t, it.AddRecommendation(2))
	require.NoError(t, it.UpdateRecommendation(2, 0, "抹茶冰淇淋"))
	assert.Equal(t, []string{"抹茶冰淇淋"}, it.Days[2].Recommendations)

	assert.ErrorIs(t, it.UpdateRecommendation(2, 1, "x"), ErrRecommendationIndex)
	require.NoError(t, it.RemoveRecommendation(2, 0))
	assert.Empty(t, it.Days[2].Recommendations)
}

func TestCanPromote(t *testing.T) {
	t.Parallel()

	assert.True(t, CanPromote(ActivityRecord{Title: "清水寺"}))
	assert.True(t, CanPromote(ActivityRecord{Title: "清水寺", AttractionID: "manual_1700000000000"}))
	assert.False(t, CanPromote(ActivityRecord{Title: "清水寺", AttractionID: "5b0c7a36-0d8e-4d3e-a4a5-2b9b36b1a111"}))
	assert.False(t, CanPromote(ActivityRecord{Title: "  "}))
}

func TestItinerary_JSONShape(t *testing.T) {
	t.Parallel()

	raw := `{"days":[{"title":"D1","isAlternative":false,"activities":[{"title":"a","description":"","attraction_id":"x"}],"images":["u.jpg"],"meals":{"breakfast":"","lunch":"","dinner":""},"accommodation":"","recommendations":[]}]}`
	var it Itinerary
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.Equal(t, "x", it.Days[0].Activities[0].AttractionID)
	assert.True(t, it.Days[0].Images[0].IsBare())

	out, err := json.Marshal(&it)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
