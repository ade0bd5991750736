package env

import (
	"errors"
	"os"

	"kiosk_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// Набор номиналов по умолчанию - 11 значений,
// банан ($3M) встречается дважды и выпадает вдвое чаще остальных
var defaultReelValues = []int{
	// Low tier
	200_000, 250_000, 300_000,
	// Medium tier
	375_000, 450_000, 550_000,
	// High tier
	750_000, 1_000_000,
	// Premium tier
	1_500_000, 3_000_000,
	// Special (банан - тоже $3M)
	3_000_000,
}

const defaultLeaderboardSize = 10

type gameYAML struct {
	Game struct {
		ReelValues      []int `yaml:"reel_values"`
		LeaderboardSize int   `yaml:"leaderboard_size"`
	} `yaml:"game"`
}

type gameConfig struct {
	reelValues      []int
	leaderboardSize int
}

// NewGameConfigFromYAML читает игровую математику из yaml-файла.
// Если файла нет, используются значения по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg := &gameConfig{
		reelValues:      defaultReelValues,
		leaderboardSize: defaultLeaderboardSize,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var parsed gameYAML
	err = yaml.Unmarshal(data, &parsed)
	if err != nil {
		return nil, err
	}

	if len(parsed.Game.ReelValues) > 0 {
		for _, v := range parsed.Game.ReelValues {
			if v <= 0 {
				return nil, errors.New("reel values must be positive")
			}
		}
		cfg.reelValues = parsed.Game.ReelValues
	}
	if parsed.Game.LeaderboardSize > 0 {
		cfg.leaderboardSize = parsed.Game.LeaderboardSize
	}

	return cfg, nil
}

func (cfg *gameConfig) ReelValues() []int {
	return cfg.reelValues
}

func (cfg *gameConfig) LeaderboardSize() int {
	return cfg.leaderboardSize
}
