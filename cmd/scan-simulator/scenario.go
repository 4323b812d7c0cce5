package main

import "math/rand/v2"

// scanEvent формат сообщения топика сканов, его читает worker-parcel-scanned.
type scanEvent struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	Description    string `json:"description"`
}

var hubs = []string{"Berlin hub", "Leipzig hub", "Hamburg hub", "Munich hub", "Cologne hub"}

// scenario путь посылки через hops сортировочных центров до вручения.
// С вероятностью failRate доставка заканчивается неудачей.
func scenario(trackingNumber string, hops int, failRate float64, rnd *rand.Rand) []scanEvent {
	events := make([]scanEvent, 0, hops+1)
	for range hops {
		events = append(events, scanEvent{
			TrackingNumber: trackingNumber,
			Status:         "InTransit",
			Location:       hubs[rnd.IntN(len(hubs))],
			Description:    "Scanned at sorting center",
		})
	}

	last := scanEvent{
		TrackingNumber: trackingNumber,
		Status:         "Delivered",
		Location:       "Recipient address",
		Description:    "Handed over to recipient",
	}
	if rnd.Float64() < failRate {
		last.Status = "Failed"
		last.Description = "Recipient not available"
	}
	return append(events, last)
}
