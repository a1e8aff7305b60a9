// Package itinerary is the day-list editing model behind the tour editor:
// day records, their activities, images and recommendations, derived day
// labels, drag reordering and image focal points. It performs no I/O; the
// itinerary service loads an Itinerary, applies one mutation and persists it.
package itinerary

// Itinerary owns the ordered day list of one tour. All edits go through its
// methods so the first-day invariant is checked in one place.
type Itinerary struct {
	Days []DayRecord `json:"days"`
}

func New(days []DayRecord) *Itinerary {
	it := &Itinerary{Days: days}
	it.normalize()
	return it
}

// normalize replaces nil slices with empty ones so JSON never carries null
// lists.
func (it *Itinerary) normalize() {
	if it.Days == nil {
		it.Days = []DayRecord{}
	}
	for i := range it.Days {
		d := &it.Days[i]
		if d.Activities == nil {
			d.Activities = []ActivityRecord{}
		}
		if d.Images == nil {
			d.Images = []DayImage{}
		}
		if d.Recommendations == nil {
			d.Recommendations = []string{}
		}
	}
}

func (it *Itinerary) Labels() []string { return DayLabels(it.Days) }

func (it *Itinerary) Stats() DayStats { return CountDays(it.Days) }

func (it *Itinerary) day(i int) (*DayRecord, error) {
	if i < 0 || i >= len(it.Days) {
		return nil, ErrDayIndex
	}
	return &it.Days[i], nil
}

func (it *Itinerary) Day(i int) (DayRecord, error) {
	d, err := it.day(i)
	if err != nil {
		return DayRecord{}, err
	}
	return *d, nil
}

// ---- days ----

// AddDay appends a blank day and returns its index.
func (it *Itinerary) AddDay(alternative bool) (int, error) {
	if alternative && len(it.Days) == 0 {
		return 0, ErrFirstDayAlternative
	}
	it.Days = append(it.Days, DayRecord{
		IsAlternative:   alternative,
		Activities:      []ActivityRecord{},
		Images:          []DayImage{},
		Recommendations: []string{},
	})
	return len(it.Days) - 1, nil
}

func (it *Itinerary) UpdateDay(i int, patch DayPatch) error {
	d, err := it.day(i)
	if err != nil {
		return err
	}
	if i == 0 && patch.IsAlternative != nil && *patch.IsAlternative {
		return ErrFirstDayAlternative
	}
	patch.apply(d)
	return nil
}

// RemoveDay removes any day. The editor only offers removing the last one
// (RemoveLastDay), but imports and tooling may trim from the middle.
func (it *Itinerary) RemoveDay(i int) error {
	if _, err := it.day(i); err != nil {
		return err
	}
	if i == 0 && len(it.Days) > 1 && it.Days[1].IsAlternative {
		return ErrFirstDayAlternative
	}
	it.Days = append(it.Days[:i], it.Days[i+1:]...)
	return nil
}

func (it *Itinerary) RemoveLastDay() error {
	if len(it.Days) == 0 {
		return ErrNoDays
	}
	it.Days = it.Days[:len(it.Days)-1]
	return nil
}

// SwapDays exchanges two neighbouring days.
func (it *Itinerary) SwapDays(a, b int) error {
	if _, err := it.day(a); err != nil {
		return err
	}
	if _, err := it.day(b); err != nil {
		return err
	}
	if a-b != 1 && b-a != 1 {
		return ErrNotAdjacent
	}
	lo := min(a, b)
	if lo == 0 && it.Days[1].IsAlternative {
		return ErrFirstDayAlternative
	}
	it.Days[a], it.Days[b] = it.Days[b], it.Days[a]
	return nil
}

// MoveDay applies a drag between day ids. Stale ids are ignored.
func (it *Itinerary) MoveDay(fromID, toID string) (bool, error) {
	next, moved := MoveByID(it.Days, func(i int, _ DayRecord) string { return DayID(i) }, fromID, toID)
	if !moved {
		return false, nil
	}
	if len(next) > 0 && next[0].IsAlternative {
		return false, ErrFirstDayAlternative
	}
	it.Days = next
	return true, nil
}

// ---- activities ----

// AddActivity appends a blank activity. The new index is the list length
// before the append.
func (it *Itinerary) AddActivity(dayIndex int) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	d.Activities = append(d.Activities, ActivityRecord{Icon: DefaultActivityIcon})
	return nil
}

func (it *Itinerary) Activity(dayIndex, actIndex int) (ActivityRecord, error) {
	d, err := it.day(dayIndex)
	if err != nil {
		return ActivityRecord{}, err
	}
	if actIndex < 0 || actIndex >= len(d.Activities) {
		return ActivityRecord{}, ErrActivityIndex
	}
	return d.Activities[actIndex], nil
}

// UpdateActivity sets one field. Values are not validated here.
func (it *Itinerary) UpdateActivity(dayIndex, actIndex int, field, value string) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	if actIndex < 0 || actIndex >= len(d.Activities) {
		return ErrActivityIndex
	}
	return d.Activities[actIndex].set(field, value)
}

func (it *Itinerary) RemoveActivity(dayIndex, actIndex int) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	if actIndex < 0 || actIndex >= len(d.Activities) {
		return ErrActivityIndex
	}
	d.Activities = append(d.Activities[:actIndex], d.Activities[actIndex+1:]...)
	return nil
}

// ReorderActivities replaces the day's list with a reordering of the same
// records. Lists that add, drop or alter records are rejected.
func (it *Itinerary) ReorderActivities(dayIndex int, activities []ActivityRecord) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	if !samePermutation(d.Activities, activities) {
		return ErrNotPermutation
	}
	next := make([]ActivityRecord, len(activities))
	copy(next, activities)
	d.Activities = next
	return nil
}

// samePermutation reports whether next holds exactly the records of cur,
// each matched once, in any order.
func samePermutation(cur, next []ActivityRecord) bool {
	if len(cur) != len(next) {
		return false
	}
	remaining := make(map[ActivityRecord]int, len(cur))
	for _, a := range cur {
		remaining[a]++
	}
	for _, a := range next {
		if remaining[a] == 0 {
			return false
		}
		remaining[a]--
	}
	return true
}

// ReorderActivitiesByIndex reorders by a permutation of current indices.
func (it *Itinerary) ReorderActivitiesByIndex(dayIndex int, order []int) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	if !IsPermutation(order, len(d.Activities)) {
		return ErrNotPermutation
	}
	next := make([]ActivityRecord, 0, len(order))
	for _, idx := range order {
		next = append(next, d.Activities[idx])
	}
	return it.ReorderActivities(dayIndex, next)
}

// MoveActivity applies a drag between activity ids of one day.
func (it *Itinerary) MoveActivity(dayIndex int, fromID, toID string) (bool, error) {
	d, err := it.day(dayIndex)
	if err != nil {
		return false, err
	}
	next, moved := MoveByID(d.Activities, func(i int, _ ActivityRecord) string {
		return ActivityID(dayIndex, i)
	}, fromID, toID)
	if !moved {
		return false, nil
	}
	return true, it.ReorderActivities(dayIndex, next)
}

// ---- day images ----

func (it *Itinerary) AddDayImage(dayIndex int, url string) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	d.Images = append(d.Images, PositionedImage(url, DefaultImagePosition))
	return nil
}

func (it *Itinerary) image(dayIndex, imageIndex int) (*DayImage, error) {
	d, err := it.day(dayIndex)
	if err != nil {
		return nil, err
	}
	if imageIndex < 0 || imageIndex >= len(d.Images) {
		return nil, ErrImageIndex
	}
	return &d.Images[imageIndex], nil
}

func (it *Itinerary) UpdateDayImage(dayIndex, imageIndex int, url string) error {
	img, err := it.image(dayIndex, imageIndex)
	if err != nil {
		return err
	}
	*img = img.WithURL(url)
	return nil
}

// SetDayImagePosition stores the normalized "X% Y%" form.
func (it *Itinerary) SetDayImagePosition(dayIndex, imageIndex int, position string) error {
	img, err := it.image(dayIndex, imageIndex)
	if err != nil {
		return err
	}
	*img = img.WithPosition(NormalizePosition(position))
	return nil
}

func (it *Itinerary) RemoveDayImage(dayIndex, imageIndex int) error {
	if _, err := it.image(dayIndex, imageIndex); err != nil {
		return err
	}
	d := &it.Days[dayIndex]
	d.Images = append(d.Images[:imageIndex], d.Images[imageIndex+1:]...)
	return nil
}

func (it *Itinerary) MoveDayImage(dayIndex int, fromID, toID string) (bool, error) {
	d, err := it.day(dayIndex)
	if err != nil {
		return false, err
	}
	next, moved := MoveByID(d.Images, func(i int, _ DayImage) string {
		return ImageID(dayIndex, i)
	}, fromID, toID)
	if moved {
		d.Images = next
	}
	return moved, nil
}

// ---- recommendations ----

func (it *Itinerary) AddRecommendation(dayIndex int) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	d.Recommendations = append(d.Recommendations, "")
	return nil
}

func (it *Itinerary) UpdateRecommendation(dayIndex, recIndex int, value string) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	if recIndex < 0 || recIndex >= len(d.Recommendations) {
		return ErrRecommendationIndex
	}
	d.Recommendations[recIndex] = value
	return nil
}

func (it *Itinerary) RemoveRecommendation(dayIndex, recIndex int) error {
	d, err := it.day(dayIndex)
	if err != nil {
		return err
	}
	if recIndex < 0 || recIndex >= len(d.Recommendations) {
		return ErrRecommendationIndex
	}
	d.Recommendations = append(d.Recommendations[:recIndex], d.Recommendations[recIndex+1:]...)
	return nil
}
