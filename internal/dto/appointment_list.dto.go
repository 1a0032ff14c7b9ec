package dto

type AppointmentListDTO struct {
	ID              uint    `json:"id"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	ClientName      string  `json:"client_name"`
	PetName         string  `json:"pet_name"`
	ServiceName     string  `json:"service_name"`
	Price           float64 `json:"price"`
}
