// Package pricing считает плату за стоянку по фиксированному почасовому тарифу.
package pricing

import "time"

// HoursElapsed возвращает количество оплачиваемых часов между заездом и выездом
//
// Любая стоянка короче часа оплачивается как один полный час (минимум),
// дальше округление вниз: 90 минут -> 1 час, 121 минута -> 2 часа.
// Верхней границы нет.
func HoursElapsed(checkin, now time.Time) int {
	hours := int(now.Sub(checkin).Seconds() / 3600)
	if hours < 1 {
		return 1
	}
	return hours
}

// Tariff фиксированный почасовой тариф парковки
// Без скидок, без ограничений сверху, без налогов
type Tariff struct {
	PricePerHour float64
}

// Charge возвращает сумму к оплате за указанное число часов
func (t Tariff) Charge(hours int) float64 {
	return float64(hours) * t.PricePerHour
}
