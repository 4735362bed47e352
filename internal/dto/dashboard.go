package dto

type TransactionResponse struct {
	ID       string  `json:"id"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type CategorySpendingResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type DailySpendingResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type InsightResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ReminderResponse struct {
	ID       string  `json:"id"`
	Icon     string  `json:"icon"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	DueDate  string  `json:"due_date"`
}

type DashboardResponse struct {
	TotalSpending    float64                    `json:"total_spending"`
	TransactionCount int                        `json:"transaction_count"`
	Transactions     []TransactionResponse      `json:"transactions"`
	ByCategory       []CategorySpendingResponse `json:"by_category"`
	Daily            []DailySpendingResponse    `json:"daily"`
	Insights         []InsightResponse          `json:"insights"`
	Reminders        []ReminderResponse         `json:"reminders"`
}
