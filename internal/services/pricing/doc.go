/*
Package pricing turns the business facts a merchant declares into a quote.

A quote is produced in two steps:
  - Matching: rules are tried in declaration order and the first one whose
    conditions all hold selects a pricing set and a documents set. "*" in a
    condition matches anything, and monthlyVolume conditions are written as
    ranges ("1000000-5000000") or open bounds ("5000000+").
  - Estimating: the declared volume is split 60/40 between card and wallet
    payments, the matching rates are applied and the monthly fee is added.

Usage:

	calc := pricing.NewCalculator(cfg)
	quote := calc.Calculate(models.Criteria{
	    "legalIdentity": "private_limited",
	    "monthlyVolume": "1000000",
	})
	fmt.Println(quote.EstimatedMonthlyCost.Formatted) // 22,200 BDT

Calculate never fails. When no rule matches the config's default sets are
used; missing rates and setup fees read "Contact us" and a missing monthly
fee reads "0".

Service wraps the calculator with the active config lookup (Redis, then the
newest stored version, then the bundled file), quote persistence and
metrics.

Errors:
  - ErrConfigUnavailable: no config could be loaded from any source
  - ErrInvalidConfig: an update failed validation
  - ErrQuoteNotFound: the quote ID is unknown or malformed
*/
package pricing
