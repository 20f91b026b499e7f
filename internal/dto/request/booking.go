package request

// BookTicketRequest carries the customer info for a seat purchase.
type BookTicketRequest struct {
	Firstname string `json:"firstname" validate:"required,min=3,max=128"`
	Lastname  string `json:"lastname" validate:"required,min=3,max=128"`
}

// BookTicketDocument is the request envelope: attributes nested under data,
// matching the response envelope shape.
type BookTicketDocument struct {
	Data struct {
		Attributes BookTicketRequest `json:"attributes"`
	} `json:"data"`
}
