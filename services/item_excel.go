package services

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var itemSheetHeaders = []string{
	"ID", "Name", "Price", "Inventory", "Description", "Category", "CreatedAt", "UpdatedAt",
}

type ImportResult struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// ExportExcel writes every item to a single "Items" sheet.
func (s *ItemService) ExportExcel(ctx context.Context, w io.Writer) error {
	const op = "item.ExportExcel"
	items, err := s.GetAllItems(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Items")
	if err != nil {
		return apperr.Wrap(op, apperr.Internal, "Failed to create Excel sheet", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range itemSheetHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, it := range items {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(it.ID))
		row.AddCell().SetString(it.Name)
		if it.Price.Valid {
			row.AddCell().SetString(it.Price.Decimal.StringFixed(2))
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetInt(it.Inventory)
		row.AddCell().SetString(it.Description)
		if it.Category != nil {
			row.AddCell().SetString(it.Category.Name)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(it.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(it.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return apperr.Wrap(op, apperr.Internal, "Failed to write Excel file", err)
	}
	return nil
}

// ImportExcel reads rows laid out like ExportExcel's. Rows with a known ID
// update that item, other rows create one. Unreadable rows are skipped.
func (s *ItemService) ImportExcel(ctx context.Context, r io.ReaderAt, size int64) (ImportResult, error) {
	const op = "item.ImportExcel"
	var res ImportResult

	xlFile, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return res, apperr.Wrap(op, apperr.InvalidArgument, "Failed to parse Excel file", err)
	}
	if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
		return res, apperr.E(op, apperr.InvalidArgument, "Excel file is empty or missing header row")
	}

	sheet := xlFile.Sheets[0]
	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]
		if row == nil || len(row.Cells) < 2 {
			res.Skipped++
			continue
		}
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		in, ok := parseItemRow(get)
		if !ok || in.validate(op) != nil {
			res.Skipped++
			continue
		}

		id, _ := strconv.Atoi(get(0))
		updated, err := s.upsertItem(ctx, uint(id), in)
		switch {
		case err != nil:
			res.Skipped++
		case updated:
			res.Updated++
		default:
			res.Created++
		}
	}
	return res, nil
}

func parseItemRow(get func(int) string) (ItemInput, bool) {
	in := ItemInput{
		Name:         get(1),
		Description:  get(4),
		CategoryName: get(5),
	}
	if p := get(2); p != "" {
		price, err := decimal.NewFromString(p)
		if err != nil {
			return in, false
		}
		in.Price = &price
	}
	if inv := get(3); inv != "" {
		n, err := strconv.ParseFloat(inv, 64)
		if err != nil {
			return in, false
		}
		in.Inventory = int(n)
	}
	return in, true
}

func (s *ItemService) upsertItem(ctx context.Context, id uint, in ItemInput) (bool, error) {
	const op = "item.ImportExcel"
	updated := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if id != 0 && tx.First(&item, id).Error == nil {
			updated = true
		} else {
			item = models.Item{}
		}
		if err := in.apply(tx, op, &item); err != nil {
			return err
		}
		if err := tx.Omit("Category").Save(&item).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return nil
	})
	return updated, err
}
