package seed

// MenuItem is one line of the default menu. Category starts as the product
// name; Recategorize folds those into the menu sections.
type MenuItem struct {
	NameUz   string
	NameRu   string
	Price    int64
	Discount int64
}

var DefaultMenu = []MenuItem{
	{NameUz: "Hotdog 5 tasi 1 da", NameRu: "Хотдог 5 штук 1 шт", Price: 25000},
	{NameUz: "Hotdog 5 tasi 1 da (Big)", NameRu: "Хотдог 5 штук 1 шт (Большой)", Price: 35000},
	{NameUz: "Gamburger 5 tasi 1 da", NameRu: "Гамбургер 5 штук 1 шт", Price: 30000},
	{NameUz: "Chicken Burger 5 tasi 1 da", NameRu: "Чикен Бургер 5 штук 1 шт", Price: 32000},
	{NameUz: "Gamburger", NameRu: "Гамбургер", Price: 18000},
	{NameUz: "DablBurger", NameRu: "ДаблБургер", Price: 25000},
	{NameUz: "Chizburger", NameRu: "Чизбургер", Price: 20000},
	{NameUz: "DablChizburger", NameRu: "ДаблЧизбургер", Price: 28000},
	{NameUz: "ChickenDog 5 tasi 1 da", NameRu: "ЧикенДог 5 штук 1 шт", Price: 30000},
	{NameUz: "Hot-Dog", NameRu: "Хот-Дог", Price: 15000},
	{NameUz: "Hot-Dog (big)", NameRu: "Хот-Дог (большой)", Price: 22000},
	{NameUz: "Kartoshka Fri", NameRu: "Картошка Фри", Price: 12000},
	{NameUz: "Coca Cola 0.5", NameRu: "Кока Кола 0.5", Price: 8000},
	{NameUz: "ChickenBurger", NameRu: "ЧикенБургер", Price: 20000},
	{NameUz: "IceCoffee", NameRu: "АйсКофе", Price: 15000},
	{NameUz: "Klab Sendwich", NameRu: "Клаб Сэндвич", Price: 25000},
	{NameUz: "Klab Sendwich Fri bilan", NameRu: "Клаб Сэндвич с Фри", Price: 32000},
	{NameUz: "Fri va Cola", NameRu: "Фри и Кола", Price: 18000},
	{NameUz: "Naggets 4", NameRu: "Наггетсы 4", Price: 20000},
	{NameUz: "Naggets 8", NameRu: "Наггетсы 8", Price: 35000},
	{NameUz: "Strips", NameRu: "Стрипсы", Price: 22000},
	{NameUz: "Moxito Classic", NameRu: "Мохито Классик", Price: 18000},
	{NameUz: "Combo 2", NameRu: "Комбо 2", Price: 45000},
	{NameUz: "Chizburger set 4", NameRu: "Чизбургер сет 4", Price: 75000},
	{NameUz: "Gigant Hot-Dog", NameRu: "Гигант Хот-Дог", Price: 28000},
	{NameUz: "Ice-Tea", NameRu: "Айс-Ти", Price: 10000, Discount: 25},
}

// CategoryMapping maps legacy per-product categories to menu sections.
var CategoryMapping = []struct{ From, To string }{
	{"Hotdog 5 tasi 1 da", "Xot-Doglar"},
	{"Hotdog 5 tasi 1 da (Big)", "Xot-Doglar"},
	{"Gamburger 5 tasi 1 da", "Burgerlar"},
	{"Chicken Burger 5 tasi 1 da", "Burgerlar"},
	{"Gamburger", "Burgerlar"},
	{"DablBurger", "Burgerlar"},
	{"Chizburger", "Burgerlar"},
	{"DablChizburger", "Burgerlar"},
	{"ChickenDog 5 tasi 1 da", "Xot-Doglar"},
	{"Hot-Dog", "Xot-Doglar"},
	{"Hot-Dog (big)", "Xot-Doglar"},
	{"Kartoshka Fri", "Qo'shimchalar"},
	{"Coca Cola 0.5", "Ichimliklar"},
	{"ChickenBurger", "Burgerlar"},
	{"IceCoffee", "Ichimliklar"},
	{"Klab Sendwich", "Setlar"},
	{"Klab Sendwich Fri bilan", "Setlar"},
	{"Fri va Cola", "Setlar"},
	{"Naggets 4", "Qo'shimchalar"},
	{"Naggets 8", "Qo'shimchalar"},
	{"Strips", "Qo'shimchalar"},
	{"Moxito Classic", "Ichimliklar"},
	{"Combo 2", "Setlar"},
	{"Chizburger set 4", "Setlar"},
	{"Gigant Hot-Dog", "Xot-Doglar"},
	{"Ice-Tea", "Ichimliklar"},
}
