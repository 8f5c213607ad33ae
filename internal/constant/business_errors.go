package constant

// Business error codes (2xxx)

// Organization / florist codes
const (
	CodeOrganizationNotFound = 2000 // organization missing or id wrong
	CodeOrganizationDisabled = 2001 // organization suspended
	CodeFloristNotFound      = 2002 // florist missing or id wrong
	CodeFloristDisabled      = 2003 // florist not accepting campaigns
)

// Campaign codes
const (
	CodeCampaignNotFound      = 2100 // campaign missing
	CodeCampaignStatusInvalid = 2101 // operation not allowed in current status
	CodeCampaignAlreadyClosed = 2102 // closeout already ran
	CodeCampaignNotClosed     = 2103 // payout commit requires a closed campaign
	CodeCampaignMarginInvalid = 2104 // margin percentages malformed
	CodeCampaignImmutable     = 2105 // margin config locked once orders exist
)

// Product / pricing codes
const (
	CodeProductNotFound       = 2200 // campaign product missing
	CodePricingInfeasible     = 2201 // fees plus profit consume 100% or more of retail
	CodePricingBelowMinimum   = 2202 // custom retail price below the break-even floor
	CodePricingAmountInvalid  = 2203 // price not a valid non-negative amount
	CodePricingPercentInvalid = 2204 // percent outside 0-100
)

// Order codes
const (
	CodeOrderNotFound      = 2300 // order missing
	CodeOrderAlreadyExist  = 2301 // duplicate order number
	CodeOrderStatusInvalid = 2302 // status does not permit the operation
	CodeOrderAmountInvalid = 2303 // subtotal malformed
	CodeOrderAlreadyPaid   = 2304 // payment webhook replayed for a paid order
)

// Payout codes
const (
	CodePayoutRunInProgress = 2400 // another payout run holds the campaign lock
	CodePayoutNoPaidOrders  = 2401 // nothing to distribute
	CodePayoutLedgerFailed  = 2402 // ledger rows could not be written
	CodePayoutPartyInvalid  = 2403 // party must be florist or organization
)
