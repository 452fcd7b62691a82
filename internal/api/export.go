package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/go-food-store/internal/pricing"
	"github.com/safar/go-food-store/internal/store"
	"github.com/tealeg/xlsx"
)

const (
	msgExportProducts = "Failed to export products"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{
	"ID", "NameUz", "NameRu", "Category", "Price", "Discount", "DiscountedPrice", "Available", "Image", "CreatedAt", "UpdatedAt",
}

// ExportProducts streams the whole catalog as a spreadsheet.
func (h *Handler) ExportProducts(c *gin.Context) {
	products, err := store.ListProducts(c.Request.Context(), h.db)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgExportProducts, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		fail(c, http.StatusInternalServerError, msgExportProducts, err)
		return
	}

	header := sheet.AddRow()
	for _, name := range exportHeaders {
		header.AddCell().SetString(name)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.NameUz)
		row.AddCell().SetString(p.NameRu)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		if p.Discount.Valid {
			row.AddCell().SetFloat(p.Discount.Decimal.InexactFloat64())
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetFloat(pricing.DiscountedPrice(p.Price, p.Discount).InexactFloat64())
		if p.Available {
			row.AddCell().SetString("yes")
		} else {
			row.AddCell().SetString("no")
		}
		if p.Image != nil {
			row.AddCell().SetString(*p.Image)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(p.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format("2006-01-02 15:04:05"))
	}

	// Buffer so a write failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		fail(c, http.StatusInternalServerError, msgExportProducts, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
