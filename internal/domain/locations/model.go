// Package locations holds the Location entity and its service.
package locations

// Location is a venue where events take place.
type Location struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Desc string  `json:"desc"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type Input struct {
	Name string  `json:"name" validate:"required"`
	Desc string  `json:"desc"`
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type Patch struct {
	Name *string  `json:"name"`
	Desc *string  `json:"desc"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

func (p Patch) Apply(l Location) Location {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Desc != nil {
		l.Desc = *p.Desc
	}
	if p.Lat != nil {
		l.Lat = *p.Lat
	}
	if p.Lng != nil {
		l.Lng = *p.Lng
	}
	return l
}
