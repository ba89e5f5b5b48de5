package ledger

import (
	"github.com/fady121/alfady/internal/model"
)

// Item rows are stored flat, but only three pricing shapes are legal:
// a sell, a 24k gold buy-back (cash-back on top of the base price), and every
// other buy-back (percentage discount off the base price). pricingFor picks
// the variant, so fields that do not belong to it can never leak into the
// arithmetic of another.

type pricing interface {
	total(weight float64) float64
}

type sellPricing struct {
	pricePerGram     float64
	workmanshipValue float64
	perGram          bool
}

func (p sellPricing) total(w float64) float64 {
	workmanship := p.workmanshipValue
	if p.perGram {
		workmanship = w * p.workmanshipValue
	}
	return w*p.pricePerGram + workmanship
}

type buyBack24Pricing struct {
	pricePerGram    float64
	cashBackPerGram float64
}

func (p buyBack24Pricing) total(w float64) float64 {
	return w * (p.pricePerGram + p.cashBackPerGram)
}

type buyBackDiscountPricing struct {
	pricePerGram       float64
	discountPercentage float64
}

func (p buyBackDiscountPricing) total(w float64) float64 {
	base := w * p.pricePerGram
	return base * (1 - p.discountPercentage/100)
}

func pricingFor(item model.InvoiceItem) pricing {
	if item.SaleType == model.SaleTypeSell {
		return sellPricing{
			pricePerGram:     num(item.PricePerGram),
			workmanshipValue: num(item.WorkmanshipValue),
			perGram:          item.WorkmanshipType != model.WorkmanshipPerPiece,
		}
	}
	if item.Category == model.CategoryGold && item.Karat != nil && *item.Karat == 24 {
		return buyBack24Pricing{
			pricePerGram:    num(item.PricePerGram),
			cashBackPerGram: num(item.CashBackPerGram),
		}
	}
	return buyBackDiscountPricing{
		pricePerGram:       num(item.PricePerGram),
		discountPercentage: num(item.DiscountPercentage),
	}
}

// ComputeItemTotal prices one invoice line. Non-positive weight yields 0;
// a line can never contribute a negative total.
func ComputeItemTotal(item model.InvoiceItem) float64 {
	w := num(item.Weight)
	if w <= 0 {
		return 0
	}
	return pricingFor(item).total(w)
}

// Gold21Equivalent converts a weight at the given karat to its 21-karat
// equivalent mass, the common scale for cross-karat aggregation.
func Gold21Equivalent(weight float64, karat int) float64 {
	return weight * float64(karat) / 21
}
