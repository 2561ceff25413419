package models

// Tier is the visual severity of a badge
type Tier string

const (
	TierDefault Tier = "default"
	TierPrimary Tier = "primary"
	TierInfo    Tier = "info"
	TierSuccess Tier = "success"
	TierWarning Tier = "warning"
	TierError   Tier = "error"
)

// Badge is a label with severity tier rendered for a status or method code
type Badge struct {
	Label string
	Tier  Tier
}

// OrderStatusBadge returns badge for order status
func OrderStatusBadge(status string) Badge {
	switch status {
	case OrderStatusPending:
		return Badge{Label: status, Tier: TierWarning}
	case OrderStatusConfirmed:
		return Badge{Label: status, Tier: TierInfo}
	case OrderStatusCompleted, OrderStatusPaid, OrderStatusDelivered:
		return Badge{Label: status, Tier: TierSuccess}
	case OrderStatusShipped:
		return Badge{Label: status, Tier: TierPrimary}
	case OrderStatusCancelled:
		return Badge{Label: status, Tier: TierError}
	default:
		return Badge{Label: status, Tier: TierDefault}
	}
}

// PaymentStatusBadge returns badge for payment status
func PaymentStatusBadge(status string) Badge {
	switch status {
	case PaymentStatusPending:
		return Badge{Label: status, Tier: TierWarning}
	case PaymentStatusProcessing:
		return Badge{Label: status, Tier: TierInfo}
	case PaymentStatusCompleted:
		return Badge{Label: status, Tier: TierSuccess}
	case PaymentStatusFailed:
		return Badge{Label: status, Tier: TierError}
	case PaymentStatusRefunded:
		return Badge{Label: status, Tier: TierDefault}
	default:
		return Badge{Label: status, Tier: TierDefault}
	}
}

// PaymentMethodBadge returns badge for payment method,
// unknown methods are labelled with their code
func PaymentMethodBadge(method string) Badge {
	switch method {
	case PaymentMethodCard:
		return Badge{Label: "Card", Tier: TierDefault}
	case PaymentMethodBankTransfer:
		return Badge{Label: "Bank transfer", Tier: TierDefault}
	case PaymentMethodMobile:
		return Badge{Label: "Mobile", Tier: TierDefault}
	default:
		return Badge{Label: method, Tier: TierDefault}
	}
}
