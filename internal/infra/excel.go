package infra

// excel.go — xlsx backup workbooks via excelize.
//
// A workbook carries the whole book of record: one sheet per sales channel
// (one row per invoice line, payments serialized on the first row of each
// invoice), a traders sheet, one transactions sheet per trader, and the
// general transactions sheet. Sheet names are the Arabic labels the owner
// knows from the app, so a restored workbook reads the same as an exported
// one.

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fady121/alfady/internal/model"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	SheetStoreSales  = "مبيعات المحل"
	SheetOnlineSales = "مبيعات اون لاين"
	SheetTraders     = "التجار"
	SheetGeneral     = "المعاملات العامة"

	labelGold   = "ذهب"
	labelSilver = "فضة"
)

const workbookDateLayout = "2006-01-02"

// BackupData is everything a workbook round-trips.
type BackupData struct {
	Invoices     []model.Invoice
	Traders      []model.Trader
	TraderTxs    []model.TraderTransaction
	Transactions []model.Transaction
}

var salesHeader = []interface{}{
	"invoiceId", "date", "customer", "phone", "address", "shipping", "notes",
	"saleType", "category", "karat", "weight", "pricePerGram", "description",
	"workmanshipType", "workmanshipValue", "discountPercentage", "cashBackPerGram",
	"payments",
}

var traderHeader = []interface{}{"traderId", "name", "phone", "category"}

var traderTxHeader = []interface{}{
	"id", "traderId", "date", "description",
	"workWeight", "scrapWeight", "workmanshipFee", "silverPricePerGram", "cashPayment",
}

var generalHeader = []interface{}{"id", "type", "date", "description", "amount", "paymentMethod"}

// BuildWorkbook renders a backup workbook. The caller owns closing the file.
func BuildWorkbook(data BackupData) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSalesSheet(f, SheetStoreSales, data.Invoices, model.ChannelStore); err != nil {
		return nil, err
	}
	if err := writeSalesSheet(f, SheetOnlineSales, data.Invoices, model.ChannelOnline); err != nil {
		return nil, err
	}
	if err := writeTradersSheet(f, data.Traders); err != nil {
		return nil, err
	}
	for _, trader := range data.Traders {
		if err := writeTraderTxSheet(f, trader, data.TraderTxs); err != nil {
			return nil, err
		}
	}
	if err := writeGeneralSheet(f, data.Transactions); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize starts with.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSalesSheet(f *excelize.File, sheet string, invoices []model.Invoice, channel model.SaleChannel) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, salesHeader); err != nil {
		return err
	}

	row := 2
	for _, inv := range invoices {
		if inv.Channel != channel {
			continue
		}
		payments, err := json.Marshal(inv.Payments)
		if err != nil {
			return err
		}
		for i, item := range inv.Items {
			karat := ""
			if item.Karat != nil {
				karat = strconv.Itoa(*item.Karat)
			}
			paymentsCell := ""
			if i == 0 {
				paymentsCell = string(payments)
			}
			err := setRow(f, sheet, row, []interface{}{
				inv.ID.String(), inv.Date.Format(workbookDateLayout), inv.CustomerName,
				inv.CustomerPhone, inv.CustomerAddress, inv.Shipping, inv.Notes,
				string(item.SaleType), string(item.Category), karat,
				item.Weight, item.PricePerGram, item.Description,
				string(item.WorkmanshipType), item.WorkmanshipValue,
				item.DiscountPercentage, item.CashBackPerGram,
				paymentsCell,
			})
			if err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeTradersSheet(f *excelize.File, traders []model.Trader) error {
	if _, err := f.NewSheet(SheetTraders); err != nil {
		return err
	}
	if err := setRow(f, SheetTraders, 1, traderHeader); err != nil {
		return err
	}
	for i, t := range traders {
		err := setRow(f, SheetTraders, i+2, []interface{}{
			t.ID.String(), t.Name, t.Phone, string(t.Category),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTraderTxSheet(f *excelize.File, trader model.Trader, all []model.TraderTransaction) error {
	sheet := TraderSheetName(trader)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, traderTxHeader); err != nil {
		return err
	}
	row := 2
	for _, tx := range all {
		if tx.TraderID != trader.ID {
			continue
		}
		err := setRow(f, sheet, row, []interface{}{
			tx.ID.String(), tx.TraderID.String(), tx.Date.Format(workbookDateLayout), tx.Description,
			tx.WorkWeight, tx.ScrapWeight, tx.WorkmanshipFee, tx.SilverPricePerGram, tx.CashPayment,
		})
		if err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeGeneralSheet(f *excelize.File, txs []model.Transaction) error {
	if _, err := f.NewSheet(SheetGeneral); err != nil {
		return err
	}
	if err := setRow(f, SheetGeneral, 1, generalHeader); err != nil {
		return err
	}
	for i, t := range txs {
		err := setRow(f, SheetGeneral, i+2, []interface{}{
			t.ID.String(), string(t.Type), t.Date.Format(workbookDateLayout),
			t.Description, t.Amount, string(t.PaymentMethod),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// sheetNameSanitizer strips the characters xlsx forbids in sheet names.
var sheetNameSanitizer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

// TraderSheetName labels a trader's sheet "{ذهب|فضة} - {name}". Forbidden
// characters become underscores and the result honors the 31-character sheet
// name limit. Names too long to fit keep an id fragment so two traders
// sharing a prefix never collapse into one sheet. Import resolves sheets
// through this same function, so whatever it produces round-trips.
func TraderSheetName(t model.Trader) string {
	label := labelGold
	if t.Category == model.CategorySilver {
		label = labelSilver
	}
	name := sheetNameSanitizer.Replace(fmt.Sprintf("%s - %s", label, t.Name))
	runes := []rune(name)
	if len(runes) <= 31 {
		return name
	}
	suffix := t.ID.String()[:8]
	return string(runes[:31-len(suffix)-1]) + "-" + suffix
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// ── Import ───────────────────────────────────────────────────────────────────

// ParseWorkbook reads a backup workbook back into records. IDs are preserved
// so re-importing the same file is detectable upstream; rows referencing a
// trader missing from the traders sheet are kept (the log shows the
// deleted-trader placeholder for them).
func ParseWorkbook(r io.Reader) (*BackupData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: open workbook: %w", err)
	}
	defer f.Close()

	var data BackupData

	for sheet, channel := range map[string]model.SaleChannel{
		SheetStoreSales:  model.ChannelStore,
		SheetOnlineSales: model.ChannelOnline,
	} {
		invoices, err := parseSalesSheet(f, sheet, channel)
		if err != nil {
			return nil, err
		}
		data.Invoices = append(data.Invoices, invoices...)
	}

	if data.Traders, err = parseTradersSheet(f); err != nil {
		return nil, err
	}
	for _, trader := range data.Traders {
		txs, err := parseTraderTxSheet(f, trader)
		if err != nil {
			return nil, err
		}
		data.TraderTxs = append(data.TraderTxs, txs...)
	}
	if data.Transactions, err = parseGeneralSheet(f); err != nil {
		return nil, err
	}
	return &data, nil
}

func parseSalesSheet(f *excelize.File, sheet string, channel model.SaleChannel) ([]model.Invoice, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		// A hand-edited workbook may be missing a whole sheet.
		return nil, nil
	}

	byID := make(map[uuid.UUID]*model.Invoice)
	var order []uuid.UUID

	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		id, err := uuid.Parse(cell(row, 0))
		if err != nil {
			return nil, fmt.Errorf("excel: %s row %d: bad invoice id: %w", sheet, i+1, err)
		}
		inv, seen := byID[id]
		if !seen {
			date, err := time.Parse(workbookDateLayout, cell(row, 1))
			if err != nil {
				return nil, fmt.Errorf("excel: %s row %d: bad date: %w", sheet, i+1, err)
			}
			inv = &model.Invoice{
				ID:              id,
				Date:            date,
				Channel:         channel,
				CustomerName:    cell(row, 2),
				CustomerPhone:   cell(row, 3),
				CustomerAddress: cell(row, 4),
				Shipping:        cellFloat(row, 5),
				Notes:           cell(row, 6),
			}
			byID[id] = inv
			order = append(order, id)
		}

		item := model.InvoiceItem{
			InvoiceID:          id,
			SaleType:           model.SaleType(cell(row, 7)),
			Category:           model.MetalCategory(cell(row, 8)),
			Weight:             cellFloat(row, 10),
			PricePerGram:       cellFloat(row, 11),
			Description:        cell(row, 12),
			WorkmanshipType:    model.WorkmanshipType(cell(row, 13)),
			WorkmanshipValue:   cellFloat(row, 14),
			DiscountPercentage: cellFloat(row, 15),
			CashBackPerGram:    cellFloat(row, 16),
		}
		if k := cell(row, 9); k != "" {
			karat, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("excel: %s row %d: bad karat %q", sheet, i+1, k)
			}
			item.Karat = &karat
		}
		inv.Items = append(inv.Items, item)

		if raw := cell(row, 17); raw != "" {
			var payments []model.Payment
			if err := json.Unmarshal([]byte(raw), &payments); err != nil {
				return nil, fmt.Errorf("excel: %s row %d: bad payments: %w", sheet, i+1, err)
			}
			for j := range payments {
				payments[j].InvoiceID = id
			}
			inv.Payments = append(inv.Payments, payments...)
		}
	}

	invoices := make([]model.Invoice, 0, len(order))
	for _, id := range order {
		invoices = append(invoices, *byID[id])
	}
	return invoices, nil
}

func parseTradersSheet(f *excelize.File) ([]model.Trader, error) {
	rows, err := f.GetRows(SheetTraders)
	if err != nil {
		return nil, nil
	}
	var traders []model.Trader
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		id, err := uuid.Parse(cell(row, 0))
		if err != nil {
			return nil, fmt.Errorf("excel: traders row %d: bad id: %w", i+1, err)
		}
		traders = append(traders, model.Trader{
			ID:       id,
			Name:     cell(row, 1),
			Phone:    cell(row, 2),
			Category: model.MetalCategory(cell(row, 3)),
		})
	}
	return traders, nil
}

func parseTraderTxSheet(f *excelize.File, trader model.Trader) ([]model.TraderTransaction, error) {
	rows, err := f.GetRows(TraderSheetName(trader))
	if err != nil {
		return nil, nil
	}
	var txs []model.TraderTransaction
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		id, err := uuid.Parse(cell(row, 0))
		if err != nil {
			return nil, fmt.Errorf("excel: trader sheet row %d: bad id: %w", i+1, err)
		}
		date, err := time.Parse(workbookDateLayout, cell(row, 2))
		if err != nil {
			return nil, fmt.Errorf("excel: trader sheet row %d: bad date: %w", i+1, err)
		}
		txs = append(txs, model.TraderTransaction{
			ID:                 id,
			TraderID:           trader.ID,
			Date:               date,
			Description:        cell(row, 3),
			WorkWeight:         cellFloat(row, 4),
			ScrapWeight:        cellFloat(row, 5),
			WorkmanshipFee:     cellFloat(row, 6),
			SilverPricePerGram: cellFloat(row, 7),
			CashPayment:        cellFloat(row, 8),
		})
	}
	return txs, nil
}

func parseGeneralSheet(f *excelize.File) ([]model.Transaction, error) {
	rows, err := f.GetRows(SheetGeneral)
	if err != nil {
		return nil, nil
	}
	var txs []model.Transaction
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		id, err := uuid.Parse(cell(row, 0))
		if err != nil {
			return nil, fmt.Errorf("excel: general row %d: bad id: %w", i+1, err)
		}
		date, err := time.Parse(workbookDateLayout, cell(row, 2))
		if err != nil {
			return nil, fmt.Errorf("excel: general row %d: bad date: %w", i+1, err)
		}
		method := model.PaymentMethod(cell(row, 5))
		if method == "" {
			method = model.MethodCash
		}
		txs = append(txs, model.Transaction{
			ID:            id,
			Type:          model.TransactionType(cell(row, 1)),
			Date:          date,
			Description:   cell(row, 3),
			Amount:        cellFloat(row, 4),
			PaymentMethod: method,
		})
	}
	return txs, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellFloat(row []string, i int) float64 {
	v, err := strconv.ParseFloat(cell(row, i), 64)
	if err != nil {
		return 0
	}
	return v
}
