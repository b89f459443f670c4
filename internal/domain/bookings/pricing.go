package bookings

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned when the quantity does not fit the billing
// type (zero days/hours/minutes, or a quantity on a per-session service).
var ErrInvalidQuantity = errors.New("invalid quantity for billing type")

// Quote computes the price for booking a service.
//
// per_day, per_hour and per_minute multiply the service rate by quantity
// (days, hours, minutes), which must be at least 1. per_session ignores
// quantity: one session at the variant price when a variant is chosen,
// otherwise at the base rate. A variant may only be used with a per_session
// service it belongs to.
func Quote(svc *Service, variant *ServiceVariant, quantity int) (decimal.Decimal, error) {
	if variant != nil {
		if svc.BillingType != BillingPerSession {
			return decimal.Zero, fmt.Errorf("%w: variants apply to per_session services only", ErrVariantNotFound)
		}
		if variant.ServiceID != svc.ID {
			return decimal.Zero, fmt.Errorf("%w: variant %s does not belong to service %s", ErrVariantNotFound, variant.ID, svc.ID)
		}
	}

	switch svc.BillingType {
	case BillingPerDay, BillingPerHour, BillingPerMinute:
		if quantity < 1 {
			return decimal.Zero, fmt.Errorf("%w: %s needs a quantity of at least 1", ErrInvalidQuantity, svc.BillingType)
		}
		return svc.Rate.Mul(decimal.NewFromInt(int64(quantity))), nil
	case BillingPerSession:
		if variant != nil {
			return variant.SessionPrice, nil
		}
		return svc.Rate, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownBillingType, svc.BillingType)
	}
}
