package parcel_scanned

// scannedEvent сообщение сканера на складе или у курьера.
type scannedEvent struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	Description    string `json:"description"`
}
