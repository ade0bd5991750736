package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// GameConfig - игровая математика киоска
type GameConfig interface {
	// ReelValues - набор номиналов барабана; повторы допустимы и увеличивают
	// вероятность выпадения повторяющегося номинала
	ReelValues() []int
	// LeaderboardSize - максимальное число строк дневного лидерборда
	LeaderboardSize() int
}
