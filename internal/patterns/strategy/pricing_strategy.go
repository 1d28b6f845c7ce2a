package strategy

// PricingStrategy defines the interface for different pricing strategies
type PricingStrategy interface {
	CalculateTotal(ctx *PricingContext) float64
	GetName() string
}

// PricingContext holds context information for pricing calculations
type PricingContext struct {
	UnitPrice        float64
	Quantity         int
	MinPromoQuantity int
	PromoPrice       float64
}

// StandardPricingStrategy - flat per-number price
type StandardPricingStrategy struct{}

func (s *StandardPricingStrategy) CalculateTotal(ctx *PricingContext) float64 {
	return ctx.UnitPrice * float64(ctx.Quantity)
}

func (s *StandardPricingStrategy) GetName() string {
	return "Standard Pricing"
}

// PromoPricingStrategy - discounted per-number price above a quantity threshold
type PromoPricingStrategy struct{}

func (s *PromoPricingStrategy) CalculateTotal(ctx *PricingContext) float64 {
	if ctx.MinPromoQuantity > 0 && ctx.Quantity >= ctx.MinPromoQuantity && ctx.PromoPrice > 0 {
		return ctx.PromoPrice * float64(ctx.Quantity)
	}
	return ctx.UnitPrice * float64(ctx.Quantity)
}

func (s *PromoPricingStrategy) GetName() string {
	return "Promo Pricing"
}

// SelectStrategy picks the strategy matching the raffle configuration.
// The server recomputes the amount itself and never trusts a client total.
func SelectStrategy(hasPromo bool) PricingStrategy {
	if hasPromo {
		return &PromoPricingStrategy{}
	}
	return &StandardPricingStrategy{}
}
