package models

type Ticket struct {
	ID      int    `json:"id"`
	Owner   string `json:"owner"`
	Code    string `json:"code"`
	Used    bool   `json:"used"`
	EventID int    `json:"eventId"`
}
