package domain

// Equipment represents a rentable equipment item in the catalog.
// Каталог append-only: админ может добавлять новые позиции, существующие не изменяются.
// TotalStock учитывается, но не уменьшается бронированиями.
type Equipment struct {
	ID              string
	Name            string
	TotalStock      int
	PricePerSession float64
}

// Имена позиций, по которым калькулятор цены ищет стоимость аренды
const (
	EquipmentRacket = "Racket"
	EquipmentShoes  = "Shoes"
)
