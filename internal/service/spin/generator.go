package spin

import (
	"math/rand"

	"kiosk_backend/internal/model"
)

// Generator выбирает значение барабана равновероятно из набора номиналов.
// Банан ($3M) присутствует в наборе дважды, поэтому выпадает вдвое чаще
// любого другого номинала
type Generator struct {
	values []int
}

func NewGenerator(values []int) *Generator {
	return &Generator{values: values}
}

// Generate возвращает одно случайное значение барабана
func (g *Generator) Generate() int {
	return g.values[rand.Intn(len(g.values))]
}

// GenerateAll разыгрывает все пять барабанов.
// Розыгрыши независимы: повторы номиналов между барабанами ожидаемы
func (g *Generator) GenerateAll() model.ReelValues {
	return model.ReelValues{
		Zillow:    g.Generate(),
		Realtor:   g.Generate(),
		Homes:     g.Generate(),
		Google:    g.Generate(),
		SmartSign: g.Generate(),
	}
}
