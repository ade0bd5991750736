package model

import "time"

const (
	// BananaValue - особый номинал "банан" ($3M)
	BananaValue = 3_000_000
	// BananaBonusTrigger - сколько бананов за спин запускают бонус
	BananaBonusTrigger = 3
)

// ReelValues - значения пяти брендированных барабанов за один спин
type ReelValues struct {
	Zillow    int
	Realtor   int
	Homes     int
	Google    int
	SmartSign int
}

// Values возвращает значения барабанов в фиксированном порядке
func (r ReelValues) Values() [5]int {
	return [5]int{r.Zillow, r.Realtor, r.Homes, r.Google, r.SmartSign}
}

// Spin - один завершенный спин, принадлежит ровно одному игроку.
// Производные поля считаются до записи; после создания спин неизменяем,
// кроме единственной правки - множителя бонуса
type Spin struct {
	ID              int
	PlayerID        int
	Reels           ReelValues
	BananaCount     int
	BaseScore       int
	BonusMultiplier *float64
	TotalScore      int
	CreatedAt       time.Time
}

// BonusTriggered - выпало ли достаточно бананов для запуска бонуса
func (s *Spin) BonusTriggered() bool {
	return s.BananaCount >= BananaBonusTrigger
}

// SpinCreate - запрос на создание спина.
// Если Reels не заданы, значения барабанов разыгрываются генератором
type SpinCreate struct {
	PlayerID int
	Reels    *ReelValues
}
