package entity

// Airport is an airport name with its IATA code
type Airport struct {
	Name string
	Code string
}

// Catalog holds the reference data flights are sampled from
type Catalog struct {
	Airlines []string
	Airports []Airport
	Home     Airport
}

// FlightPlan is the route shared by every pass of one batch
type FlightPlan struct {
	Airline     string
	Origin      Airport
	Destination Airport
	Connection  *Airport
}

// ConnectionCode returns the layover airport code, or nil without a layover
func (f FlightPlan) ConnectionCode() *string {
	if f.Connection == nil {
		return nil
	}
	code := f.Connection.Code
	return &code
}
