package models

// SimPayment is a billing record for a station's cellular SIM card.
// Status is a free-form string; "pending" and "paid" are the values the
// clients know about.
type SimPayment struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	StationID   string  `json:"station_id" gorm:"not null"`
	StationName *string `json:"station_name"`
	SimNumber   string  `json:"sim_number" gorm:"not null"`
	Provider    string  `json:"provider" gorm:"not null"`
	Amount      float64 `json:"amount" gorm:"not null"`
	DueDate     Date    `json:"due_date" gorm:"not null"`
	Status      string  `json:"status" gorm:"not null"`
	PaidDate    *Date   `json:"paid_date"`
	Notes       *string `json:"notes"`
}
