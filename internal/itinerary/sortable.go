package itinerary

import "fmt"

// Move returns a copy of items with the element at from removed and then
// inserted at to, the usual array-move used by drag-and-drop lists. Out of
// range indices or from == to return an unchanged copy and false.
func Move[T any](items []T, from, to int) ([]T, bool) {
	out := make([]T, len(items))
	copy(out, items)

	if from == to || from < 0 || to < 0 || from >= len(items) || to >= len(items) {
		return out, false
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out, true
}

// MoveByID resolves drag ids against the current list through idOf and
// applies Move. Ids that no longer exist (stale drag events) are a no-op.
func MoveByID[T any](items []T, idOf func(index int, item T) string, fromID, toID string) ([]T, bool) {
	if fromID == toID {
		return Move(items, 0, 0)
	}

	from, to := -1, -1
	for i, it := range items {
		switch idOf(i, it) {
		case fromID:
			from = i
		case toID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return Move(items, 0, 0)
	}
	return Move(items, from, to)
}

// Drag ids for the sortable lists. Activity and image ids embed the owning
// day so a drag from one day's list never matches another day.
func DayID(dayIndex int) string { return fmt.Sprintf("day-%d", dayIndex) }

func ActivityID(dayIndex, actIndex int) string {
	return fmt.Sprintf("activity-%d-%d", dayIndex, actIndex)
}

func ImageID(dayIndex, imageIndex int) string {
	return fmt.Sprintf("image-%d-%d", dayIndex, imageIndex)
}

// IsPermutation reports whether order lists every index in [0,n) once.
func IsPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
