package models

// Item is one line of goods on a lorry receipt. Weight is unit-less here;
// the receipt's actual weight carries the metric-ton figure used for freight.
type Item struct {
	Description string `json:"description" bson:"description" db:"description"`
	Pcs         int    `json:"pcs" bson:"pcs" db:"pcs"`
	Weight      Amount `json:"weight" bson:"weight" db:"weight"`
}
