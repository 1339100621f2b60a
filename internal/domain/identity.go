package domain

// Identifiable is implemented by every entity stored in an IdentityList.
type Identifiable interface {
	GetID() int
}

// ChangeListener is notified after a list mutation. It receives the affected
// entity, or the zero value of T when the change affected the list as a whole.
type ChangeListener[T Identifiable] func(changed T)

// ListenerID identifies a registered listener for later removal
type ListenerID int

type listenerEntry[T Identifiable] struct {
	id ListenerID
	fn ChangeListener[T]
}

// IdentityList is an ordered collection of entities keyed by ID.
// It is not safe for concurrent use; listeners must not mutate the list
// they are notified about.
type IdentityList[T Identifiable] struct {
	items     []T
	listeners []listenerEntry[T]
	nextLID   ListenerID
	highestID int
}

// NewIdentityList creates an empty list
func NewIdentityList[T Identifiable]() *IdentityList[T] {
	return &IdentityList[T]{}
}

// Set inserts item, or replaces the entity with the same ID at its position.
func (l *IdentityList[T]) Set(item T) {
	id := item.GetID()
	if idx := l.indexOf(id); idx >= 0 {
		l.items[idx] = item
	} else {
		l.items = append(l.items, item)
	}
	if id > l.highestID {
		l.highestID = id
	}
	l.notify(item)
}

// ByID returns the entity with the given ID
func (l *IdentityList[T]) ByID(id int) (T, bool) {
	if idx := l.indexOf(id); idx >= 0 {
		return l.items[idx], true
	}
	var zero T
	return zero, false
}

// Contains reports whether an entity with the given ID exists
func (l *IdentityList[T]) Contains(id int) bool {
	return l.indexOf(id) >= 0
}

// RemoveByID removes the entity with the given ID. Unknown IDs are ignored.
func (l *IdentityList[T]) RemoveByID(id int) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	var zero T
	l.notify(zero)
}

// ReplaceAll swaps the whole content of the list and notifies once.
func (l *IdentityList[T]) ReplaceAll(items []T) {
	l.items = make([]T, 0, len(items))
	for _, item := range items {
		if idx := l.indexOf(item.GetID()); idx >= 0 {
			l.items[idx] = item
			continue
		}
		l.items = append(l.items, item)
		if item.GetID() > l.highestID {
			l.highestID = item.GetID()
		}
	}
	var zero T
	l.notify(zero)
}

// All returns a copy of the items in list order
func (l *IdentityList[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Each calls fn for every item in list order
func (l *IdentityList[T]) Each(fn func(T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// Len returns the number of items
func (l *IdentityList[T]) Len() int {
	return len(l.items)
}

// NextID returns an ID that has never been used in this list.
func (l *IdentityList[T]) NextID() int {
	return l.highestID + 1
}

// AddListener registers fn; listeners run in registration order.
func (l *IdentityList[T]) AddListener(fn ChangeListener[T]) ListenerID {
	l.nextLID++
	l.listeners = append(l.listeners, listenerEntry[T]{id: l.nextLID, fn: fn})
	return l.nextLID
}

// RemoveListener unregisters a listener. Unknown IDs are ignored.
func (l *IdentityList[T]) RemoveListener(id ListenerID) {
	for i, entry := range l.listeners {
		if entry.id == id {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}

// NotifyBulkChange tells listeners that entities were changed in place.
func (l *IdentityList[T]) NotifyBulkChange() {
	var zero T
	l.notify(zero)
}

func (l *IdentityList[T]) notify(changed T) {
	for _, entry := range l.listeners {
		entry.fn(changed)
	}
}

func (l *IdentityList[T]) indexOf(id int) int {
	for i, item := range l.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// cloneWithoutListeners copies the list structure with cloneItem applied to
// every entity. The copy keeps the ID high-water mark.
func (l *IdentityList[T]) cloneWithoutListeners(cloneItem func(T) T) *IdentityList[T] {
	out := &IdentityList[T]{
		items:     make([]T, len(l.items)),
		highestID: l.highestID,
	}
	for i, item := range l.items {
		out.items[i] = cloneItem(item)
	}
	return out
}
