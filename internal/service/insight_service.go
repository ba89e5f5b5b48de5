package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/repository"
)

// TextGenerator is the slice of the Gemini client the insight service needs.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type InsightService interface {
	Insights(ctx context.Context) (*dto.InsightsResponse, error)
}

type insightService struct {
	invoiceRepo repository.InvoiceRepository
	traderRepo  repository.TraderRepository
	txRepo      repository.TransactionRepository
	generator   TextGenerator
}

func NewInsightService(
	invoiceRepo repository.InvoiceRepository,
	traderRepo repository.TraderRepository,
	txRepo repository.TransactionRepository,
	generator TextGenerator,
) InsightService {
	return &insightService{invoiceRepo: invoiceRepo, traderRepo: traderRepo, txRepo: txRepo, generator: generator}
}

// Insights summarizes the last month of activity and asks the model for a
// short owner-facing commentary. The model only ever sees aggregates, never
// customer names or phone numbers.
func (s *insightService) Insights(ctx context.Context) (*dto.InsightsResponse, error) {
	if s.generator == nil {
		return nil, apierror.New("insights are not configured")
	}

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

	now := time.Now()
	month, err := ledger.NewWindow(ledger.RangeMonth, now, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	sales := ledger.ComputeSalesSummary(invoices, month)
	purchases := ledger.ComputePurchasesSummary(traders, traderTxs, month)
	inventory := ledger.ComputeInventory(traders, traderTxs, invoices)
	trend := ledger.ComputeTrend(invoices, txs, traderTxs, now, trendDays)

	text, err := s.generator.Generate(ctx, insightPrompt(sales, purchases, inventory, trend))
	if err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}
	return &dto.InsightsResponse{
		Insights:    strings.TrimSpace(text),
		GeneratedAt: now.Format(time.RFC3339),
	}, nil
}

func insightPrompt(sales ledger.SalesSummary, purchases ledger.PurchasesSummary, inventory ledger.Inventory, trend []ledger.TrendPoint) string {
	var sb strings.Builder
	sb.WriteString("You are an assistant for a small gold and silver jewelry shop. ")
	sb.WriteString("Write 3-5 short bullet points of practical observations for the owner, in plain language.\n\n")
	fmt.Fprintf(&sb, "Last 30 days, store gold sales: %.1fg (21k equivalent) for %.0f\n", sales.Store.Gold21Eq, sales.Store.Cash())
	fmt.Fprintf(&sb, "Last 30 days, online gold sales: %.1fg (21k equivalent) for %.0f\n", sales.Online.Gold21Eq, sales.Online.Cash())
	fmt.Fprintf(&sb, "Last 30 days, gold bought back: %.1fg (21k equivalent) for %.0f\n", sales.BuyBack.Gold21Eq, sales.BuyBack.Cash())
	fmt.Fprintf(&sb, "Last 30 days, silver sales: %.1fg for %.0f\n", sales.Silver.Weight, sales.Silver.Cash)
	fmt.Fprintf(&sb, "Last 30 days, gold from traders: %.1fg, fees %.0f\n", purchases.Gold.WorkWeight, purchases.Gold.WorkmanshipFee)
	fmt.Fprintf(&sb, "Last 30 days, silver from traders: %.1fg, value %.0f\n", purchases.Silver.WorkWeight, purchases.Silver.RequiredCash)
	fmt.Fprintf(&sb, "Current stock: %.1fg gold (21k equivalent), %.1fg silver\n", inventory.GoldGrams, inventory.SilverGrams)

	sb.WriteString("Daily cash in and out (date, sales, outflow):\n")
	for _, p := range trend {
		if p.Sales != 0 || p.Outflow != 0 {
			fmt.Fprintf(&sb, "%s %.0f %.0f\n", p.Date, p.Sales, p.Outflow)
		}
	}
	return sb.String()
}
