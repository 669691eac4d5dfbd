package entity

// Airport is the document-store profile of an airport, keyed by its IATA
// code. The graph store carries a projection of the same record for
// traversal.
type Airport struct {
	ID      string `bson:"_id,omitempty" json:"-"`
	Code    string `bson:"code" json:"code" validate:"required,len=3"`
	Name    string `bson:"name" json:"name" validate:"required"`
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
	Runways int    `bson:"runways" json:"runways"`
}
