// Package allocation выбирает свободное место для нового бронирования.
// Чистая функция над набором занятых мест: детерминированна и не имеет
// побочных эффектов, атомарность обеспечивает вызывающая транзакция.
package allocation

// Allocate выбирает номер свободного места
//
// Если preferred задан, он должен быть в диапазоне [1..totalSlots]
// (иначе ErrInvalidSlot) и не занят (иначе ErrSlotTaken).
// Если preferred не задан, возвращается первое свободное место
// по возрастанию номеров; если свободных нет — ErrLotFull.
func Allocate(preferred *int, occupied map[int]struct{}, totalSlots int) (int, error) {
	if preferred != nil {
		p := *preferred
		if p < 1 || p > totalSlots {
			return 0, ErrInvalidSlot
		}
		if _, taken := occupied[p]; taken {
			return 0, ErrSlotTaken
		}
		return p, nil
	}

	for s := 1; s <= totalSlots; s++ {
		if _, taken := occupied[s]; !taken {
			return s, nil
		}
	}

	return 0, ErrLotFull
}

// OccupiedSet строит набор занятых мест из списка номеров
func OccupiedSet(slots []int) map[int]struct{} {
	set := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}
