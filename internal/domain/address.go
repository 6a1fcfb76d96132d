package domain

// Resolved address fields for one coordinate. An empty field means the
// geocoder did not know, which is an ordinary state, not an error.
// Raw keeps the decoded provider payloads for debug output.
type Address struct {
	Road     string
	Place    string
	District string
	Raw      map[string]any
}

// Unknown reports whether no field could be resolved.
func (a Address) Unknown() bool {
	return a.Road == "" && a.Place == "" && a.District == ""
}

// A sample together with its resolved address. Produced strictly in
// track order by the annotation pipeline.
type AnnotatedSample struct {
	Sample  Sample
	Address Address
}
