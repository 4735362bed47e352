package dto

type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type DocumentResponse struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Merchant   string         `json:"merchant"`
	Date       string         `json:"date"`
	Total      float64        `json:"total"`
	Items      []ItemResponse `json:"items"`
	UploadedAt string         `json:"uploaded_at"`
}
