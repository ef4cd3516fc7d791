package analytics

// NetAmount returns the artist's share of a sale: price minus the gallery
// commission. A nil/zero price yields 0, a nil commission means no
// commission is withheld. Never fails.
func NetAmount(price, commissionPct *float64) float64 {
	if price == nil || *price == 0 {
		return 0
	}
	commission := 0.0
	if commissionPct != nil {
		commission = *commissionPct
	}
	return *price * (1 - commission/100)
}

// editionNet resolves the commission to apply for one sold edition: the
// per-sale override wins, otherwise the distributor default.
func editionNet(price, override, distributorDefault *float64) float64 {
	if override != nil {
		return NetAmount(price, override)
	}
	return NetAmount(price, distributorDefault)
}
