package entities

import "strings"

// Client is a customer record as listed by the gateway.
type Client struct {
	ID           int64  `json:"id_client"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// Address renders the postal address the way it is shown on order cards:
// "street number, neighborhood, city, state, country". Empty parts are skipped.
func (c Client) Address() string {
	return FormatAddress(c.Street, c.Number, c.Neighborhood, c.City, c.State, c.Country)
}

func FormatAddress(street, number, neighborhood, city, state, country string) string {
	head := strings.TrimSpace(strings.TrimSpace(street) + " " + strings.TrimSpace(number))
	parts := make([]string, 0, 5)
	for _, p := range []string{head, neighborhood, city, state, country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Coordinates is a geocoded point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
