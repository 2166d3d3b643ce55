package list

const (
	// sentinelSlot is reserved for the list head.
	sentinelSlot uint32 = 0
	// noneSlot marks the end of the chain. The sentinel is never a successor,
	// so its index doubles as "no next node", and zeroed slots are unlinked.
	noneSlot uint32 = 0
)

type singlySlot[T any] struct {
	next  uint32
	value T
}

// singlySlotArena stores nodes in one growable table and addresses them by index.
// Indices stay valid while the table grows; pointers into it do not.
// Freed slots are recycled before the table grows.
type singlySlotArena[T any] struct {
	slots    []singlySlot[T]
	recycled []uint32
}

func newSinglySlotArena[T any](capPerBuf, initRecycleCap uint32) *singlySlotArena[T] {
	arena := &singlySlotArena[T]{
		slots:    make([]singlySlot[T], 1, capPerBuf+1),
		recycled: make([]uint32, 0, initRecycleCap),
	}
	return arena
}

// slotLen counts the sentinel and the recycled slots too.
func (arena *singlySlotArena[T]) slotLen() int {
	return len(arena.slots)
}

func (arena *singlySlotArena[T]) recLen() int {
	return len(arena.recycled)
}

func (arena *singlySlotArena[T]) get(idx uint32) *singlySlot[T] {
	return &arena.slots[idx]
}

func (arena *singlySlotArena[T]) allocate(v T, next uint32) uint32 {
	if rl := len(arena.recycled); rl > 0 {
		idx := arena.recycled[rl-1]
		arena.recycled = arena.recycled[:rl-1]
		slot := arena.get(idx)
		slot.value, slot.next = v, next
		return idx
	}
	arena.slots = append(arena.slots, singlySlot[T]{
		value: v,
		next:  next,
	})
	return uint32(len(arena.slots) - 1)
}

// recycle drops the slot's link and value and returns the value.
func (arena *singlySlotArena[T]) recycle(idx uint32) T {
	slot := arena.get(idx)
	v := slot.value
	slot.value, slot.next = *new(T), noneSlot
	arena.recycled = append(arena.recycled, idx)
	return v
}

// reset releases every slot but the sentinel. The backing capacity is kept.
func (arena *singlySlotArena[T]) reset() {
	clear(arena.slots)
	arena.slots = arena.slots[:1]
	arena.recycled = arena.recycled[:0]
}
