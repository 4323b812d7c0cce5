package delivery_estimate

import (
	"time"

	"parcel-service/internal/entities"
)

const (
	standardTransit = 5 * 24 * time.Hour
	expressTransit  = 2 * 24 * time.Hour
)

type DeliveryEstimateFactory struct{}

func New() *DeliveryEstimateFactory {
	return &DeliveryEstimateFactory{}
}

// EstimateDelivery ожидаемая дата доставки для посылки, принятой в baseTime.
func (d *DeliveryEstimateFactory) EstimateDelivery(serviceType entities.ServiceType, baseTime time.Time) time.Time {
	switch serviceType {
	case entities.ServiceExpress:
		return baseTime.Add(expressTransit)
	case entities.ServiceStandard:
		return baseTime.Add(standardTransit)
	default:
		return baseTime.Add(standardTransit)
	}
}
