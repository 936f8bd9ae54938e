package contract

type PostalAddressResponse struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibgeCode"`
	AreaCode     string `json:"areaCode"`
}
