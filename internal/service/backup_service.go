package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/infra"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/repository"

	"github.com/xuri/excelize/v2"
)

type BackupService interface {
	// Export renders the requested window as a workbook, plus a filename for
	// the Content-Disposition header.
	Export(ctx context.Context, filter dto.ReportFilter) (*excelize.File, string, error)
	// Import restores records from an exported workbook. Records whose id
	// already exists are skipped, so re-importing the same file is a no-op.
	Import(ctx context.Context, r io.Reader) (*dto.ImportResponse, error)
	// WriteBackupFile writes a full all-time workbook to the backup
	// directory and returns its path. The backup worker calls this.
	WriteBackupFile(ctx context.Context) (string, error)
}

type backupService struct {
	invoiceRepo repository.InvoiceRepository
	traderRepo  repository.TraderRepository
	txRepo      repository.TransactionRepository
	storagePath string
}

func NewBackupService(
	invoiceRepo repository.InvoiceRepository,
	traderRepo repository.TraderRepository,
	txRepo repository.TransactionRepository,
	storagePath string,
) BackupService {
	return &backupService{
		invoiceRepo: invoiceRepo,
		traderRepo:  traderRepo,
		txRepo:      txRepo,
		storagePath: storagePath,
	}
}

func (s *backupService) Export(ctx context.Context, filter dto.ReportFilter) (*excelize.File, string, error) {
	w, err := windowFromRange(filter.Range, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, "", apierror.NewValidation(err.Error())
	}
	data, err := s.collect(ctx, w)
	if err != nil {
		return nil, "", err
	}
	f, err := infra.BuildWorkbook(*data)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("alfady_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, name, nil
}

func (s *backupService) Import(ctx context.Context, r io.Reader) (*dto.ImportResponse, error) {
	data, err := infra.ParseWorkbook(r)
	if err != nil {
		return nil, apierror.NewValidation(err.Error())
	}

	var resp dto.ImportResponse
	for i := range data.Invoices {
		inv := data.Invoices[i]
		if _, err := s.invoiceRepo.FindByID(ctx, inv.ID); err == nil {
			continue
		}
		if err := s.invoiceRepo.Create(ctx, s.invoiceRepo.DB(), &inv); err != nil {
			return nil, fmt.Errorf("import invoice %s: %w", inv.ID, err)
		}
		resp.Invoices++
	}
	for i := range data.Traders {
		t := data.Traders[i]
		if _, err := s.traderRepo.FindByID(ctx, t.ID); err == nil {
			continue
		}
		if err := s.traderRepo.Create(ctx, &t); err != nil {
			return nil, fmt.Errorf("import trader %s: %w", t.ID, err)
		}
		resp.Traders++
	}
	for i := range data.TraderTxs {
		tx := data.TraderTxs[i]
		if _, err := s.traderRepo.FindTransactionByID(ctx, tx.ID); err == nil {
			continue
		}
		if err := s.traderRepo.CreateTransaction(ctx, &tx); err != nil {
			return nil, fmt.Errorf("import trader transaction %s: %w", tx.ID, err)
		}
		resp.TraderTransactions++
	}
	for i := range data.Transactions {
		t := data.Transactions[i]
		if _, err := s.txRepo.FindByID(ctx, t.ID); err == nil {
			continue
		}
		if err := s.txRepo.Create(ctx, &t); err != nil {
			return nil, fmt.Errorf("import transaction %s: %w", t.ID, err)
		}
		resp.Transactions++
	}
	return &resp, nil
}

func (s *backupService) WriteBackupFile(ctx context.Context) (string, error) {
	data, err := s.collect(ctx, ledger.AllTime())
	if err != nil {
		return "", err
	}
	f, err := infra.BuildWorkbook(*data)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := os.MkdirAll(s.storagePath, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(s.storagePath, fmt.Sprintf("alfady_backup_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *backupService) collect(ctx context.Context, w ledger.Window) (*infra.BackupData, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	traders, err := s.traderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	traderTxs, err := s.traderRepo.ListAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	data := infra.BackupData{Traders: traders}
	for _, inv := range invoices {
		if w.Contains(inv.Date) {
			data.Invoices = append(data.Invoices, inv)
		}
	}
	for _, tx := range traderTxs {
		if w.Contains(tx.Date) {
			data.TraderTxs = append(data.TraderTxs, tx)
		}
	}
	for _, tx := range txs {
		if w.Contains(tx.Date) {
			data.Transactions = append(data.Transactions, tx)
		}
	}
	return &data, nil
}
