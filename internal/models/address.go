package models

// AddressDetails is the normalized address produced by every resolver.
// FullAddress and FormattedDisplay are always set on a successful resolution,
// the remaining fields are best-effort and empty when unknown.
type AddressDetails struct {
	FullAddress      string `json:"full_address"`
	Road             string `json:"road,omitempty"`
	Neighbourhood    string `json:"neighbourhood,omitempty"`
	District         string `json:"district,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	Country          string `json:"country,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	Building         string `json:"building,omitempty"`
	FormattedDisplay string `json:"formatted_display"`
}

// Field names a labelled address field in a resolver response.
type Field string

const (
	FieldState         Field = "state"
	FieldCity          Field = "city"
	FieldDistrict      Field = "district"
	FieldNeighbourhood Field = "neighbourhood"
	FieldRoad          Field = "road"
	FieldBuilding      Field = "building"
	FieldPostcode      Field = "postcode"
	FieldFullAddress   Field = "full_address"
)

// Fields lists the labelled fields in the order they are requested from the model.
func Fields() []Field {
	return []Field{
		FieldState,
		FieldCity,
		FieldDistrict,
		FieldNeighbourhood,
		FieldRoad,
		FieldBuilding,
		FieldPostcode,
		FieldFullAddress,
	}
}

// Set assigns value to the given field. Unknown fields are ignored.
func (a *AddressDetails) Set(field Field, value string) {
	switch field {
	case FieldState:
		a.State = value
	case FieldCity:
		a.City = value
	case FieldDistrict:
		a.District = value
	case FieldNeighbourhood:
		a.Neighbourhood = value
	case FieldRoad:
		a.Road = value
	case FieldBuilding:
		a.Building = value
	case FieldPostcode:
		a.Postcode = value
	case FieldFullAddress:
		a.FullAddress = value
	}
}

// Get returns the value of the given field, or "" for unknown fields.
func (a AddressDetails) Get(field Field) string {
	switch field {
	case FieldState:
		return a.State
	case FieldCity:
		return a.City
	case FieldDistrict:
		return a.District
	case FieldNeighbourhood:
		return a.Neighbourhood
	case FieldRoad:
		return a.Road
	case FieldBuilding:
		return a.Building
	case FieldPostcode:
		return a.Postcode
	case FieldFullAddress:
		return a.FullAddress
	default:
		return ""
	}
}
