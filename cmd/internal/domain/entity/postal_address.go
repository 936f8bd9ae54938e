package entity

// PostalAddress is an address resolved from a postal code by the lookup service.
// It is not persisted.
type PostalAddress struct {
	ZipCode      string
	Street       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	IBGECode     string
	AreaCode     string
}
