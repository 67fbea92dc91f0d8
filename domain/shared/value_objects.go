package shared

// Address is an immutable value object identified by its attributes.
// Fields are exported for serialization but must never be mutated after
// construction; derive a new Address instead.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// NewAddress creates an Address value object.
func NewAddress(city, street, zipcode string) Address {
	return Address{City: city, Street: street, Zipcode: zipcode}
}

// Equals compares two addresses by value.
func (a Address) Equals(other Address) bool {
	return a.City == other.City && a.Street == other.Street && a.Zipcode == other.Zipcode
}

// IsZero reports whether the address carries no data.
func (a Address) IsZero() bool {
	return a.City == "" && a.Street == "" && a.Zipcode == ""
}
