package domain

// Link kinds decide which party a tracking link attributes traffic to.
const (
	LinkKindAffiliate = "affiliate"
	LinkKindReferral  = "referral"
)

// Commission rate kinds.
const (
	RateKindFixed   = "fixed"
	RateKindPercent = "percent"
)

// Conversion statuses.
const (
	ConversionPending  = "pending"
	ConversionApproved = "approved"
	ConversionDeclined = "declined"
)

// Payout statuses. pending and processing are live; paid and declined are terminal.
const (
	PayoutPending    = "pending"
	PayoutProcessing = "processing"
	PayoutPaid       = "paid"
	PayoutDeclined   = "declined"
)

// Creative asset types.
const (
	CreativeTypeBanner = "banner"
	CreativeTypeText   = "text"
	CreativeTypeVideo  = "video"
)

// Query-string parameter carrying the signed click token on redirects.
const ClickTokenParam = "aft"

// Cookie naming the visitor for click dedup windows.
const VisitorCookie = "aft_vid"
