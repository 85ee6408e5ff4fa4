package model

// Category specifies how important customer is, lower value means higher importance
type Category int

const (
	// CategoryHigh means highest customer importance
	CategoryHigh Category = iota + 1
	// CategoryMedium means medium customer importance
	CategoryMedium
	// CategoryLow means lowest customer importance
	CategoryLow
)

// Customer is customer model entity, name identifies customer uniquely
type Customer struct {
	Name        string   `json:"name" msgpack:"name"`
	MailAddress string   `json:"mailAddress" msgpack:"mailAddress"`
	Category    Category `json:"category" msgpack:"category"`
}
