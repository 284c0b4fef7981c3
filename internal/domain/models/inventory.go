package models

// InventoryRecord is one persisted pantry entry. Records are append-only: the
// pair (Code, RecordedAt) identifies an entry and nothing is ever updated in
// place, so repeated purchases of the same product produce multiple records.
type InventoryRecord struct {
	Code           string `bson:"code" json:"code"`
	RecordedAt     string `bson:"recorded_at" json:"recorded_at"`
	ProductName    string `bson:"product_name" json:"product_name"`
	Quantity       int    `bson:"quantity" json:"quantity"`
	PurchaseDate   string `bson:"purchase_date" json:"purchase_date"`
	ExpirationDate string `bson:"expiration_date" json:"expiration_date"`
	ExtraInfo      string `bson:"extra_info" json:"extra_info"`
}
