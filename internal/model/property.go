package model

// RentalProperty is one listing row: the property itself plus the
// aggregated owner names and the optional manager joined in.
type RentalProperty struct {
	PropertyID   int
	Street       string
	City         string
	PostalCode   string
	CostPerMonth float64
	PropertyType PropertyType
	OwnerNames   string
	// Manager name columns are NULL when no manager is assigned.
	ManagerFirstName *string
	ManagerLastName  *string
}

// ManagerName returns the manager's full name, or "N/A" when the
// property has no assigned manager.
func (p RentalProperty) ManagerName() string {
	if p.ManagerFirstName == nil || p.ManagerLastName == nil {
		return "N/A"
	}
	return *p.ManagerFirstName + " " + *p.ManagerLastName
}

// AverageRents holds the average monthly cost per property type for the
// home page market overview. Types with no listings average to zero.
type AverageRents struct {
	House     float64
	Apartment float64
	Room      float64
}
