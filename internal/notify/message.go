package notify

import (
	"fmt"
	"strings"

	"github.com/safar/go-food-store/internal/models"
	"github.com/safar/go-food-store/internal/pricing"
)

const (
	noPhone        = "Ko'rsatilmagan"
	currencySuffix = " so'm"
	timeLayout     = "2006-01-02 15:04"
)

// BuildOrderMessage renders the chat announcement for a new order. Each line
// shows the discounted unit price and the line total; the header total is the
// one the customer submitted.
func BuildOrderMessage(order *models.Order, f *pricing.Formatter) string {
	phone := strings.TrimSpace(order.PhoneNumber)
	if phone == "" {
		phone = noPhone
	}

	var items strings.Builder
	for _, item := range order.Items {
		unit := pricing.DiscountedPrice(item.Price, item.Discount)
		line := pricing.LineTotal(item.Price, item.Discount, item.Quantity)
		fmt.Fprintf(&items, "• %s - %d x %s%s = %s%s\n",
			item.ProductNameUz, item.Quantity,
			f.Format(unit), currencySuffix,
			f.Format(line), currencySuffix)
	}

	return fmt.Sprintf(
		"🍔 YANGI BUYURTMA! 📞 Telefon: %s 💰 To'lov usuli: %s 📊 Jami summa: %s%s 🛒 Buyurtma mahsulotlari:\n%s📍 Manzil: %s ⏰ Vaqt: %s",
		phone,
		order.PaymentMethod,
		f.Format(order.TotalPrice), currencySuffix,
		items.String(),
		order.DeliveryAddress,
		order.CreatedAt.UTC().Format(timeLayout),
	)
}
