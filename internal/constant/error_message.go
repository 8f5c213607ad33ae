package constant

// ErrorMessages maps registered codes to user-facing messages.
var ErrorMessages = map[int]string{
	// system
	CodeSuccess:            "success",
	CodeSystemError:        "system error",
	CodeDatabaseError:      "database error",
	CodeRedisError:         "cache error",
	CodeInternalError:      "internal error",
	CodeServiceUnavailable: "service unavailable",
	CodeTimeout:            "request timeout",
	CodeDuplicateRequest:   "duplicate request",

	// params
	CodeInvalidParams:     "invalid parameters",
	CodeMissingParams:     "missing required parameters",
	CodeParamsRangeError:  "parameter out of range",
	CodeParamsFormatError: "parameter format invalid",

	// auth
	CodeUnauthorized:   "unauthorized",
	CodeSignatureError: "signature verification failed",
	CodeAccessDenied:   "access denied",
	CodeStaleRequest:   "request timestamp expired",

	// organization / florist
	CodeOrganizationNotFound: "organization not found",
	CodeOrganizationDisabled: "organization disabled",
	CodeFloristNotFound:      "florist not found",
	CodeFloristDisabled:      "florist disabled",

	// campaign
	CodeCampaignNotFound:      "campaign not found",
	CodeCampaignStatusInvalid: "campaign status invalid",
	CodeCampaignAlreadyClosed: "campaign already closed",
	CodeCampaignNotClosed:     "campaign not closed",
	CodeCampaignMarginInvalid: "campaign margin config invalid",
	CodeCampaignImmutable:     "campaign margin config locked",

	// product / pricing
	CodeProductNotFound:       "campaign product not found",
	CodePricingInfeasible:     "fees and profit exceed 100% of retail price",
	CodePricingBelowMinimum:   "retail price below break-even minimum",
	CodePricingAmountInvalid:  "price amount invalid",
	CodePricingPercentInvalid: "percentage invalid",

	// order
	CodeOrderNotFound:      "order not found",
	CodeOrderAlreadyExist:  "order already exists",
	CodeOrderStatusInvalid: "order status invalid",
	CodeOrderAmountInvalid: "order amount invalid",
	CodeOrderAlreadyPaid:   "order already paid",

	// payout
	CodePayoutRunInProgress: "payout run already in progress",
	CodePayoutNoPaidOrders:  "no paid orders to distribute",
	CodePayoutLedgerFailed:  "payout ledger write failed",
	CodePayoutPartyInvalid:  "payout party invalid",
}
